package lzwcodec

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// CodecError is the error type returned by every package in this module for
// failures that aren't plain I/O errors. Use [errors.Is] against the exported
// sentinels to find out what kind of failure occurred.
type CodecError interface {
	error
	WithMessage(message string) CodecError
	Wrap(err error) CodecError
}

type baseCodecError string

const rootError = baseCodecError("")

// ErrMalformedStream means a container's header is inconsistent with its
// payload, or the container can't be parsed at all.
var ErrMalformedStream = rootError.WithMessage("Malformed stream")

// ErrCorruptStream means a code in the stream is neither a known dictionary
// index nor the next index to be assigned.
var ErrCorruptStream = rootError.WithMessage("Corrupt stream")

// ErrDomain means the caller passed a symbol, sample, or dimension outside the
// range the codec accepts.
var ErrDomain = rootError.WithMessage("Value out of domain")

// ErrUnsupportedFormat means the requested kind can't be applied to the input,
// or an image file extension names a format the codec can't read or write.
var ErrUnsupportedFormat = rootError.WithMessage("Unsupported format")

func (e baseCodecError) Error() string {
	return string(e)
}

func (e baseCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       message,
		originalError: e,
	}
}

func (e baseCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customCodecError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customCodecError) Error() string {
	return e.message
}

func (e customCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customCodecError) Unwrap() error {
	return e.originalError
}
