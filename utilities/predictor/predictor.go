// Package predictor implements the row/column differencing filter applied to
// pixel planes before they're coded.
//
// Given a plane P, the residual plane R is
//
//	R[0][0] = P[0][0]
//	R[i][0] = P[i][0] - P[i-1][0]    for i > 0
//	R[i][j] = P[i][j] - P[i][j-1]    for j > 0
//
// so column 0 is differenced vertically and every other column horizontally.
// Residuals lie in [-255, 255] and are shifted by 255 to get coder symbols in
// [0, 510].
package predictor

import (
	"fmt"

	"github.com/dargueta/lzwcodec"
	c "github.com/dargueta/lzwcodec/utilities/compression"
)

const (
	MinSample = 0
	MaxSample = 255
)

// Forward computes the residual plane of `plane`. All samples must be in the
// range [0, 255].
func Forward(plane lzwcodec.Plane) (lzwcodec.Plane, error) {
	if err := plane.Validate(); err != nil {
		return lzwcodec.Plane{}, err
	}
	if err := CheckSamples(plane); err != nil {
		return lzwcodec.Plane{}, err
	}

	residual := lzwcodec.NewPlane(plane.Width, plane.Height)
	for i := 0; i < plane.Height; i++ {
		for j := 0; j < plane.Width; j++ {
			switch {
			case j > 0:
				residual.Set(i, j, plane.At(i, j)-plane.At(i, j-1))
			case i > 0:
				residual.Set(i, 0, plane.At(i, 0)-plane.At(i-1, 0))
			default:
				residual.Set(0, 0, plane.At(0, 0))
			}
		}
	}
	return residual, nil
}

// Inverse reconstructs a pixel plane from its residuals. Column 0 is summed
// top to bottom, then each row left to right starting from its column 0 value.
// Results are clipped to [0, 255].
func Inverse(residual lzwcodec.Plane) lzwcodec.Plane {
	plane := lzwcodec.NewPlane(residual.Width, residual.Height)
	if residual.Width == 0 {
		return plane
	}

	// Accumulate without clipping so an out-of-range intermediate value
	// doesn't skew the rest of the row or column.
	columnZero := 0
	for i := 0; i < residual.Height; i++ {
		columnZero += residual.At(i, 0)
		running := columnZero
		plane.Set(i, 0, clip(running))
		for j := 1; j < residual.Width; j++ {
			running += residual.At(i, j)
			plane.Set(i, j, clip(running))
		}
	}
	return plane
}

// ToSymbols flattens a residual plane row-major and shifts every residual by
// [lzwcodec.ResidualOffset].
func ToSymbols(residual lzwcodec.Plane) ([]c.Symbol, error) {
	symbols := make([]c.Symbol, len(residual.Samples))
	for i, value := range residual.Samples {
		shifted := value + lzwcodec.ResidualOffset
		if shifted < 0 || shifted >= lzwcodec.ResidualAlphabetSize {
			return nil, lzwcodec.ErrDomain.WithMessage(
				fmt.Sprintf("residual %d at index %d not in range [-255, 255]", value, i))
		}
		symbols[i] = c.Symbol(shifted)
	}
	return symbols, nil
}

// FromSymbols undoes [ToSymbols], reshaping the symbols into a plane of the
// given dimensions.
func FromSymbols(symbols []c.Symbol, width, height int) (lzwcodec.Plane, error) {
	if len(symbols) != width*height {
		return lzwcodec.Plane{}, lzwcodec.ErrMalformedStream.WithMessage(
			fmt.Sprintf(
				"got %d samples for a %dx%d plane (expected %d)",
				len(symbols),
				width,
				height,
				width*height))
	}

	residual := lzwcodec.NewPlane(width, height)
	for i, symbol := range symbols {
		residual.Samples[i] = int(symbol) - lzwcodec.ResidualOffset
	}
	return residual, nil
}

// SamplesToSymbols converts a pixel plane to coder symbols without any
// filtering.
func SamplesToSymbols(plane lzwcodec.Plane) ([]c.Symbol, error) {
	if err := CheckSamples(plane); err != nil {
		return nil, err
	}
	symbols := make([]c.Symbol, len(plane.Samples))
	for i, value := range plane.Samples {
		symbols[i] = c.Symbol(value)
	}
	return symbols, nil
}

// SymbolsToSamples reshapes raw pixel symbols into a plane.
func SymbolsToSamples(symbols []c.Symbol, width, height int) (lzwcodec.Plane, error) {
	if len(symbols) != width*height {
		return lzwcodec.Plane{}, lzwcodec.ErrMalformedStream.WithMessage(
			fmt.Sprintf(
				"got %d samples for a %dx%d plane (expected %d)",
				len(symbols),
				width,
				height,
				width*height))
	}

	plane := lzwcodec.NewPlane(width, height)
	for i, symbol := range symbols {
		if symbol > MaxSample {
			return lzwcodec.Plane{}, lzwcodec.ErrMalformedStream.WithMessage(
				fmt.Sprintf("sample %d at index %d exceeds %d", symbol, i, MaxSample))
		}
		plane.Samples[i] = int(symbol)
	}
	return plane, nil
}

// CheckSamples returns [lzwcodec.ErrDomain] if any sample is outside [0, 255].
func CheckSamples(plane lzwcodec.Plane) error {
	for i, value := range plane.Samples {
		if value < MinSample || value > MaxSample {
			return lzwcodec.ErrDomain.WithMessage(
				fmt.Sprintf(
					"sample %d at row %d, column %d not in range [%d, %d]",
					value,
					i/maxInt(plane.Width, 1),
					i%maxInt(plane.Width, 1),
					MinSample,
					MaxSample))
		}
	}
	return nil
}

func clip(value int) int {
	if value < MinSample {
		return MinSample
	}
	if value > MaxSample {
		return MaxSample
	}
	return value
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
