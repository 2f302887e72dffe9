// Package bitstream packs fixed-width codes into bytes and back.
//
// A stream looks like this:
//
//	+---------+-------+----------------------------+-------------+
//	| padding | width | codes, `width` bits each   | zero bits   |
//	| 1 byte  | 1 byte| most significant bit first | (`padding`) |
//	+---------+-------+----------------------------+-------------+
//
// The padding byte gives the number of zero bits (0-7) appended after the last
// code to bring the stream to a byte boundary.
package bitstream

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dargueta/lzwcodec"
	c "github.com/dargueta/lzwcodec/utilities/compression"
	"github.com/icza/bitio"
)

// HeaderSize is the number of bytes preceding the packed codes.
const HeaderSize = 2

// PaddingFor returns the number of zero bits needed after `count` codes of
// `width` bits to reach a byte boundary.
func PaddingFor(count int, width uint8) uint8 {
	return uint8((8 - (count*int(width))%8) % 8)
}

// PackedSize returns the total size in bytes of a stream holding `count` codes
// of `width` bits, including the header.
func PackedSize(count int, width uint8) int64 {
	totalBits := int64(count)*int64(width) + int64(PaddingFor(count, width))
	return HeaderSize + totalBits/8
}

// Write serializes `codes` to the output with each code taking exactly `width`
// bits. The return value is the number of bytes written, only valid if no error
// occurred.
func Write(output io.Writer, codes []c.Code, width uint8) (int64, error) {
	if width < 1 || width > c.MaxCodeWidth {
		return 0, lzwcodec.ErrDomain.WithMessage(
			fmt.Sprintf("code width %d not in range [1, %d]", width, c.MaxCodeWidth))
	}

	limit := uint32(1) << width
	for i, code := range codes {
		if uint32(code) >= limit {
			return 0, lzwcodec.ErrDomain.WithMessage(
				fmt.Sprintf("code %d at index %d doesn't fit in %d bits", code, i, width))
		}
	}

	counter := &countingWriter{w: output}
	writer := bitio.NewWriter(counter)

	padding := PaddingFor(len(codes), width)
	writer.TryWriteByte(padding)
	writer.TryWriteByte(width)
	for _, code := range codes {
		writer.TryWriteBits(uint64(code), width)
	}
	if writer.TryError != nil {
		return counter.n, fmt.Errorf("failed to write to output: %w", writer.TryError)
	}

	// Close pads the final partial byte with zero bits. It doesn't close the
	// underlying writer.
	if err := writer.Close(); err != nil {
		return counter.n, fmt.Errorf("failed to write to output: %w", err)
	}
	return counter.n, nil
}

// WriteBytes is a convenience function wrapping [Write]. It returns the stream
// in a new byte slice instead of writing to an [io.Writer].
func WriteBytes(codes []c.Code, width uint8) ([]byte, error) {
	buffer := bytes.Buffer{}
	buffer.Grow(int(PackedSize(len(codes), width)))
	_, err := Write(&buffer, codes, width)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Read consumes the input until EOF and parses it as a stream. It returns the
// codes and the code width recorded in the header.
func Read(input io.Reader) ([]c.Code, uint8, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading input: %w", err)
	}
	return ReadBytes(data)
}

// ReadBytes parses a complete stream held in memory.
func ReadBytes(data []byte) ([]c.Code, uint8, error) {
	if len(data) < HeaderSize {
		return nil, 0, lzwcodec.ErrMalformedStream.WithMessage(
			fmt.Sprintf("stream is %d bytes, need at least %d", len(data), HeaderSize))
	}

	padding := data[0]
	width := data[1]
	if padding > 7 {
		return nil, 0, lzwcodec.ErrMalformedStream.WithMessage(
			fmt.Sprintf("padding count %d not in range [0, 7]", padding))
	}
	if width < 1 || width > c.MaxCodeWidth {
		return nil, 0, lzwcodec.ErrMalformedStream.WithMessage(
			fmt.Sprintf("code width %d not in range [1, %d]", width, c.MaxCodeWidth))
	}

	payload := data[HeaderSize:]
	payloadBits := len(payload)*8 - int(padding)
	if payloadBits < 0 {
		return nil, 0, lzwcodec.ErrMalformedStream.WithMessage(
			fmt.Sprintf("%d padding bits but payload is only %d bytes", padding, len(payload)))
	}
	if payloadBits%int(width) != 0 {
		return nil, 0, lzwcodec.ErrMalformedStream.WithMessage(
			fmt.Sprintf(
				"%d payload bits isn't a multiple of the code width %d", payloadBits, width))
	}

	count := payloadBits / int(width)
	codes := make([]c.Code, count)
	reader := bitio.NewReader(bytes.NewReader(payload))
	for i := range codes {
		codes[i] = c.Code(reader.TryReadBits(width))
	}
	if reader.TryError != nil {
		return nil, 0, lzwcodec.ErrMalformedStream.Wrap(reader.TryError)
	}
	return codes, width, nil
}

// countingWriter tracks how many bytes made it to the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
