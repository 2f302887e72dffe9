// Package codec drives the full compression pipeline for text, grayscale, and
// color sources, in memory or on files.
package codec

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/dargueta/lzwcodec"
	"github.com/dargueta/lzwcodec/container"
	"github.com/dargueta/lzwcodec/utilities/compression"
	"github.com/dargueta/lzwcodec/utilities/predictor"
	"github.com/hashicorp/go-multierror"
)

// EncodeInfo describes one container produced by the encoder.
type EncodeInfo struct {
	CodeWidth      uint8
	CodeCount      int
	DictionarySize int
	// Size is the size of the container in bytes, including headers.
	Size int64
}

var channelNames = [3]string{"red", "green", "blue"}

// EncodeText compresses arbitrary bytes into a text container.
func EncodeText(data []byte) ([]byte, EncodeInfo, error) {
	result, err := compression.EncodeBytes(data)
	if err != nil {
		return nil, EncodeInfo{}, err
	}

	output, err := container.TextBytes(
		container.Payload{Codes: result.Codes, CodeWidth: result.CodeWidth})
	if err != nil {
		return nil, EncodeInfo{}, err
	}
	return output, infoFor(result, output), nil
}

// DecodeText decompresses a text container.
func DecodeText(containerData []byte) ([]byte, error) {
	payload, err := container.ReadText(bytes.NewReader(containerData))
	if err != nil {
		return nil, err
	}
	return compression.DecodeBytes(payload.Codes, payload.CodeWidth)
}

// CompressText reads the input until EOF and writes a text container to the
// output. The returned int64 gives the number of bytes written. If an error
// occurred, the value is undefined and should not be used.
func CompressText(input io.Reader, output io.Writer) (int64, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return 0, fmt.Errorf("error reading input: %w", err)
	}

	result, err := compression.EncodeBytes(data)
	if err != nil {
		return 0, err
	}
	return container.WriteText(
		output, container.Payload{Codes: result.Codes, CodeWidth: result.CodeWidth})
}

// DecompressText takes a text container and writes the original bytes to the
// output.
//
// The returned int64 gives the number of bytes written to the output (i.e. the
// decompressed size). If an error occurred, the value is undefined and should
// not be used.
func DecompressText(input io.Reader, output io.Writer) (int64, error) {
	payload, err := container.ReadText(input)
	if err != nil {
		return 0, err
	}

	data, err := compression.DecodeBytes(payload.Codes, payload.CodeWidth)
	if err != nil {
		return 0, err
	}

	if len(data) == 0 {
		return 0, nil
	}

	n, err := output.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write to output: %w", err)
	}
	return int64(n), nil
}

// EncodePlane compresses a single pixel plane into an image container. For
// difference kinds the predictive filter runs first. Color kinds are accepted
// and treated as one channel of a color image.
func EncodePlane(kind lzwcodec.Kind, plane lzwcodec.Plane) ([]byte, EncodeInfo, error) {
	if !kind.IsImage() {
		return nil, EncodeInfo{}, lzwcodec.ErrUnsupportedFormat.WithMessage(
			fmt.Sprintf("can't encode a pixel plane as %s", kind))
	}
	if err := plane.Validate(); err != nil {
		return nil, EncodeInfo{}, err
	}

	var symbols []compression.Symbol
	var err error
	if kind.UsesDifference() {
		var residual lzwcodec.Plane
		residual, err = predictor.Forward(plane)
		if err != nil {
			return nil, EncodeInfo{}, err
		}
		symbols, err = predictor.ToSymbols(residual)
	} else {
		symbols, err = predictor.SamplesToSymbols(plane)
	}
	if err != nil {
		return nil, EncodeInfo{}, err
	}

	result, err := compression.Encode(symbols, kind.AlphabetSize())
	if err != nil {
		return nil, EncodeInfo{}, err
	}

	output, err := container.ImageBytes(
		plane.Width,
		plane.Height,
		container.Payload{Codes: result.Codes, CodeWidth: result.CodeWidth},
	)
	if err != nil {
		return nil, EncodeInfo{}, err
	}
	return output, infoFor(result, output), nil
}

// DecodePlane decompresses an image container written by [EncodePlane] with
// the same kind.
func DecodePlane(kind lzwcodec.Kind, containerData []byte) (lzwcodec.Plane, error) {
	if !kind.IsImage() {
		return lzwcodec.Plane{}, lzwcodec.ErrUnsupportedFormat.WithMessage(
			fmt.Sprintf("can't decode a pixel plane as %s", kind))
	}

	dimensions, payload, err := container.ReadImage(bytes.NewReader(containerData))
	if err != nil {
		return lzwcodec.Plane{}, err
	}

	symbols, err := compression.Decode(payload.Codes, kind.AlphabetSize(), payload.CodeWidth)
	if err != nil {
		return lzwcodec.Plane{}, err
	}

	width := int(dimensions.Width)
	height := int(dimensions.Height)
	if !kind.UsesDifference() {
		return predictor.SymbolsToSamples(symbols, width, height)
	}

	residual, err := predictor.FromSymbols(symbols, width, height)
	if err != nil {
		return lzwcodec.Plane{}, err
	}
	return predictor.Inverse(residual), nil
}

// EncodeColor compresses the R, G, and B planes of a color image into three
// independent containers. The channels are encoded concurrently, each with its
// own dictionary.
func EncodeColor(
	kind lzwcodec.Kind, planes [3]lzwcodec.Plane,
) ([3][]byte, [3]EncodeInfo, error) {
	var containers [3][]byte
	var infos [3]EncodeInfo
	var errs [3]error

	var wg sync.WaitGroup
	for i := range planes {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			containers[channel], infos[channel], errs[channel] = EncodePlane(kind, planes[channel])
		}(i)
	}
	wg.Wait()

	if err := collectChannelErrors(errs); err != nil {
		return [3][]byte{}, [3]EncodeInfo{}, err
	}
	return containers, infos, nil
}

// DecodeColor decompresses three channel containers written by [EncodeColor].
// All three planes must have the same dimensions.
func DecodeColor(kind lzwcodec.Kind, containers [3][]byte) ([3]lzwcodec.Plane, error) {
	var planes [3]lzwcodec.Plane
	var errs [3]error

	var wg sync.WaitGroup
	for i := range containers {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			planes[channel], errs[channel] = DecodePlane(kind, containers[channel])
		}(i)
	}
	wg.Wait()

	if err := collectChannelErrors(errs); err != nil {
		return [3]lzwcodec.Plane{}, err
	}

	for i := 1; i < len(planes); i++ {
		if planes[i].Width != planes[0].Width || planes[i].Height != planes[0].Height {
			return [3]lzwcodec.Plane{}, lzwcodec.ErrMalformedStream.WithMessage(
				fmt.Sprintf(
					"%s channel is %dx%d but red channel is %dx%d",
					channelNames[i],
					planes[i].Width,
					planes[i].Height,
					planes[0].Width,
					planes[0].Height))
		}
	}
	return planes, nil
}

func collectChannelErrors(errs [3]error) error {
	var result *multierror.Error
	for i, err := range errs {
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s channel: %w", channelNames[i], err))
		}
	}
	return result.ErrorOrNil()
}

func infoFor(result compression.EncodeResult, output []byte) EncodeInfo {
	return EncodeInfo{
		CodeWidth:      result.CodeWidth,
		CodeCount:      len(result.Codes),
		DictionarySize: result.DictionarySize,
		Size:           int64(len(output)),
	}
}
