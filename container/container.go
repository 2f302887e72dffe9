// Package container frames bit streams into the files this module writes.
//
// Text containers are a bare bit stream (see package bitstream). Image
// containers put the plane's dimensions in front of it:
//
//	[width (2 BE)] [height (2 BE)] [bit stream...]
//
// Color images are stored as three image containers, one per channel.
package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/dargueta/lzwcodec"
	"github.com/dargueta/lzwcodec/utilities/bitstream"
	c "github.com/dargueta/lzwcodec/utilities/compression"
)

// DimensionsSize is the size of the width/height prefix of an image container.
const DimensionsSize = 4

// Dimensions is the prefix of an image container.
type Dimensions struct {
	Width  uint16
	Height uint16
}

// Payload is the decoded content of a container's bit stream.
type Payload struct {
	Codes     []c.Code
	CodeWidth uint8
}

// WriteText writes a text container. The return value is the number of bytes
// written, only valid if no error occurred.
func WriteText(output io.Writer, payload Payload) (int64, error) {
	return bitstream.Write(output, payload.Codes, payload.CodeWidth)
}

// WriteImage writes an image container for a plane of the given dimensions.
func WriteImage(output io.Writer, width, height int, payload Payload) (int64, error) {
	if width < 0 || height < 0 || width > lzwcodec.MaxDimension || height > lzwcodec.MaxDimension {
		return 0, lzwcodec.ErrDomain.WithMessage(
			fmt.Sprintf(
				"image dimensions %dx%d not in range [0, %d]",
				width,
				height,
				lzwcodec.MaxDimension))
	}

	var header [DimensionsSize]byte
	binary.BigEndian.PutUint16(header[0:2], uint16(width))
	binary.BigEndian.PutUint16(header[2:4], uint16(height))

	n, err := output.Write(header[:])
	if err != nil {
		return int64(n), fmt.Errorf("failed to write to output: %w", err)
	}

	streamSize, err := bitstream.Write(output, payload.Codes, payload.CodeWidth)
	return int64(n) + streamSize, err
}

// ReadText reads a text container until EOF.
func ReadText(input io.Reader) (Payload, error) {
	codes, width, err := bitstream.Read(input)
	if err != nil {
		return Payload{}, err
	}
	return Payload{Codes: codes, CodeWidth: width}, nil
}

// ReadImage reads an image container until EOF.
func ReadImage(input io.Reader) (Dimensions, Payload, error) {
	var header [DimensionsSize]byte
	_, err := io.ReadFull(input, header[:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Dimensions{}, Payload{}, lzwcodec.ErrMalformedStream.WithMessage(
				"image container is missing its dimensions")
		}
		return Dimensions{}, Payload{}, fmt.Errorf("error reading input: %w", err)
	}

	dimensions := Dimensions{
		Width:  binary.BigEndian.Uint16(header[0:2]),
		Height: binary.BigEndian.Uint16(header[2:4]),
	}
	payload, err := ReadText(input)
	return dimensions, payload, err
}

// TextBytes is a convenience function wrapping [WriteText]. It returns the
// container in a new byte slice.
func TextBytes(payload Payload) ([]byte, error) {
	return bitstream.WriteBytes(payload.Codes, payload.CodeWidth)
}

// ImageBytes is a convenience function wrapping [WriteImage].
func ImageBytes(width, height int, payload Payload) ([]byte, error) {
	buffer := bytes.Buffer{}
	buffer.Grow(DimensionsSize + int(bitstream.PackedSize(len(payload.Codes), payload.CodeWidth)))
	_, err := WriteImage(&buffer, width, height, payload)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
