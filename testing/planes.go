package testing

import (
	"math/rand"

	"github.com/dargueta/lzwcodec"
)

// CreateRandomPlane creates a plane of the given size filled with samples in
// [0, 255] from a seeded generator, so failures are reproducible.
func CreateRandomPlane(width, height int, seed int64) lzwcodec.Plane {
	rng := rand.New(rand.NewSource(seed))
	plane := lzwcodec.NewPlane(width, height)
	for i := range plane.Samples {
		plane.Samples[i] = rng.Intn(256)
	}
	return plane
}

// CreateSmoothPlane creates a plane that looks like a photograph: a diagonal
// gradient with a little noise. Difference coding should do well on it.
func CreateSmoothPlane(width, height int, seed int64) lzwcodec.Plane {
	rng := rand.New(rand.NewSource(seed))
	plane := lzwcodec.NewPlane(width, height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			value := (row+col)*255/maxInt(width+height-2, 1) + rng.Intn(3) - 1
			if value < 0 {
				value = 0
			} else if value > 255 {
				value = 255
			}
			plane.Set(row, col, value)
		}
	}
	return plane
}

// CreateConstantPlane creates a plane where every sample is `value`.
func CreateConstantPlane(width, height, value int) lzwcodec.Plane {
	plane := lzwcodec.NewPlane(width, height)
	for i := range plane.Samples {
		plane.Samples[i] = value
	}
	return plane
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
