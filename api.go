package lzwcodec

import "fmt"

// MaxDimension is the largest width or height an image container can record.
const MaxDimension = 0xffff

// Plane is a two-dimensional grid of integer samples stored row-major. It
// holds pixel intensities, one color channel, or a residual plane.
type Plane struct {
	Width   int
	Height  int
	Samples []int
}

// NewPlane allocates a zeroed plane of the given dimensions.
func NewPlane(width, height int) Plane {
	return Plane{
		Width:   width,
		Height:  height,
		Samples: make([]int, width*height),
	}
}

// NewPlaneFromRows builds a plane from a slice of rows. All rows must be the
// same length.
func NewPlaneFromRows(rows [][]int) (Plane, error) {
	if len(rows) == 0 {
		return Plane{}, nil
	}

	width := len(rows[0])
	plane := NewPlane(width, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return Plane{}, ErrDomain.WithMessage(
				fmt.Sprintf("row %d has %d samples, expected %d", i, len(row), width))
		}
		copy(plane.Samples[i*width:], row)
	}
	return plane, nil
}

// At returns the sample at row `row` and column `col`.
func (p Plane) At(row, col int) int {
	return p.Samples[row*p.Width+col]
}

// Set stores a sample at row `row` and column `col`.
func (p Plane) Set(row, col, value int) {
	p.Samples[row*p.Width+col] = value
}

// Rows returns a copy of the plane as a slice of rows.
func (p Plane) Rows() [][]int {
	rows := make([][]int, p.Height)
	for i := range rows {
		rows[i] = make([]int, p.Width)
		copy(rows[i], p.Samples[i*p.Width:(i+1)*p.Width])
	}
	return rows
}

// Validate checks that the sample count matches the dimensions and that the
// dimensions fit in an image container.
func (p Plane) Validate() error {
	if p.Width < 0 || p.Height < 0 || p.Width > MaxDimension || p.Height > MaxDimension {
		return ErrDomain.WithMessage(
			fmt.Sprintf("dimensions %dx%d not in range [0, %d]", p.Width, p.Height, MaxDimension))
	}
	if len(p.Samples) != p.Width*p.Height {
		return ErrDomain.WithMessage(
			fmt.Sprintf(
				"plane is %dx%d but has %d samples", p.Width, p.Height, len(p.Samples)))
	}
	return nil
}

// Statistics describes the result of compressing one source file.
type Statistics struct {
	SourcePath string `csv:"source"`
	Kind       string `csv:"kind"`
	// OriginalSize is the size of the source file on disk, in bytes.
	OriginalSize int64 `csv:"original_size"`
	// CompressedSize is the total size of every container written, including
	// headers.
	CompressedSize   int64   `csv:"compressed_size"`
	CompressionRatio float64 `csv:"compression_ratio"`
	// CodeWidth is the widest code width of any container written.
	CodeWidth uint8 `csv:"code_width"`
	CodeCount int   `csv:"code_count"`
	// Entropy is the Shannon entropy of the source samples, in bits per
	// sample. For color images the three channels are pooled.
	Entropy         float64 `csv:"entropy"`
	Width           int     `csv:"width"`
	Height          int     `csv:"height"`
	DistinctSymbols int     `csv:"distinct_symbols"`
}

// Pixels returns the number of pixels in the source image, or 0 for text.
func (s Statistics) Pixels() int {
	return s.Width * s.Height
}
