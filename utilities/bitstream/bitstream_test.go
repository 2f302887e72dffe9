package bitstream_test

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/dargueta/lzwcodec"
	"github.com/dargueta/lzwcodec/utilities/bitstream"
	c "github.com/dargueta/lzwcodec/utilities/compression"
	"github.com/noxer/bytewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type BitstreamTestCase struct {
	Codes          []c.Code
	Width          uint8
	ExpectedOutput []byte
	Name           string
}

func TestWrite__Basic(t *testing.T) {
	tests := []BitstreamTestCase{
		{[]c.Code{}, 8, []byte{0, 8}, "empty"},
		{[]c.Code{0xab}, 8, []byte{0, 8, 0xab}, "one byte-wide code"},
		{[]c.Code{1}, 1, []byte{7, 1, 0x80}, "single bit"},
		{[]c.Code{0x1ff, 0}, 9, []byte{6, 9, 0xff, 0x80, 0x00}, "nine bits"},
		{[]c.Code{5, 3, 7}, 3, []byte{7, 3, 0xaf, 0x80}, "three bits"},
		{[]c.Code{0xffff}, 16, []byte{0, 16, 0xff, 0xff}, "sixteen bits"},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				outputBuffer := make([]byte, len(test.ExpectedOutput)*2)
				outputWriter := bytewriter.New(outputBuffer)

				n, err := bitstream.Write(outputWriter, test.Codes, test.Width)
				require.NoError(t, err)
				assert.EqualValues(t, len(test.ExpectedOutput), n, "bytes written is wrong")
				assert.Equal(t, test.ExpectedOutput, outputBuffer[:n], "output data is wrong")
				assert.Equal(t, bitstream.PackedSize(len(test.Codes), test.Width), n)

				codes, width, err := bitstream.ReadBytes(outputBuffer[:n])
				require.NoError(t, err)
				assert.Equal(t, test.Width, width)
				assert.Equal(t, test.Codes, codes)
			},
		)
	}
}

func TestRoundTrip__AllWidths(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for width := uint8(1); width <= c.MaxCodeWidth; width++ {
		for _, count := range []int{0, 1, 7, 8, 9, 1000} {
			codes := make([]c.Code, count)
			for i := range codes {
				codes[i] = c.Code(rng.Intn(1 << width))
			}

			data, err := bitstream.WriteBytes(codes, width)
			require.NoErrorf(t, err, "width %d, count %d", width, count)

			decoded, decodedWidth, err := bitstream.Read(bytes.NewReader(data))
			require.NoErrorf(t, err, "width %d, count %d", width, count)
			require.Equal(t, width, decodedWidth)
			require.Equalf(t, codes, decoded, "width %d, count %d", width, count)
		}
	}
}

func TestWrite__CodeTooWide(t *testing.T) {
	_, err := bitstream.WriteBytes([]c.Code{3, 8}, 3)
	assert.ErrorIs(t, err, lzwcodec.ErrDomain)
}

func TestWrite__BadWidth(t *testing.T) {
	_, err := bitstream.WriteBytes([]c.Code{0}, 0)
	assert.ErrorIs(t, err, lzwcodec.ErrDomain)

	_, err = bitstream.WriteBytes([]c.Code{0}, 17)
	assert.ErrorIs(t, err, lzwcodec.ErrDomain)
}

func TestReadBytes__Malformed(t *testing.T) {
	tests := []struct {
		Name string
		Data []byte
	}{
		{"empty", []byte{}},
		{"header only partly present", []byte{0}},
		{"zero code width", []byte{0, 0, 0xff}},
		{"code width too large", []byte{0, 17, 0xff, 0xff, 0xff}},
		{"padding too large", []byte{8, 8, 0xff}},
		{"padding without payload", []byte{3, 8}},
		{"payload not a multiple of width", []byte{0, 9, 0xff, 0xff}},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				_, _, err := bitstream.ReadBytes(test.Data)
				assert.ErrorIs(t, err, lzwcodec.ErrMalformedStream)
			},
		)
	}
}

type failingWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWriteFailed
}

func TestWrite__OutputError(t *testing.T) {
	_, err := bitstream.Write(failingWriter{}, []c.Code{1, 2, 3}, 8)
	assert.ErrorIs(t, err, errWriteFailed)
}

func TestPaddingFor(t *testing.T) {
	assert.EqualValues(t, 0, bitstream.PaddingFor(0, 9))
	assert.EqualValues(t, 7, bitstream.PaddingFor(1, 9))
	assert.EqualValues(t, 0, bitstream.PaddingFor(8, 9))
	assert.EqualValues(t, 4, bitstream.PaddingFor(1, 12))
}
