package lzwcodec_test

import (
	"errors"
	"io"
	"testing"

	"github.com/dargueta/lzwcodec"
	"github.com/stretchr/testify/assert"
)

func TestCodecErrorWithMessage(t *testing.T) {
	newErr := lzwcodec.ErrCorruptStream.WithMessage("code 900 at position 3")
	assert.Equal(
		t, "Corrupt stream: code 900 at position 3", newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, lzwcodec.ErrCorruptStream)
	assert.False(t, errors.Is(newErr, lzwcodec.ErrMalformedStream))
}

func TestCodecErrorWithMessage__Chained(t *testing.T) {
	newErr := lzwcodec.ErrDomain.WithMessage("symbol 300").WithMessage("position 7")
	assert.Equal(t, "Value out of domain: symbol 300: position 7", newErr.Error())
	assert.ErrorIs(t, newErr, lzwcodec.ErrDomain)
}

func TestCodecErrorWrap(t *testing.T) {
	newErr := lzwcodec.ErrMalformedStream.Wrap(io.ErrUnexpectedEOF)
	expectedMessage := "Malformed stream: unexpected EOF"

	assert.EqualValues(t, expectedMessage, newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, io.ErrUnexpectedEOF, "original error not set as parent")
	assert.ErrorIs(t, newErr, lzwcodec.ErrMalformedStream, "codec error not set as parent")
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		lzwcodec.ErrMalformedStream,
		lzwcodec.ErrCorruptStream,
		lzwcodec.ErrDomain,
		lzwcodec.ErrUnsupportedFormat,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.Falsef(t, errors.Is(a, b), "%q should not match %q", a, b)
			}
		}
	}
}
