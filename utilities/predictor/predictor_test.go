package predictor_test

import (
	"math/rand"
	"testing"

	"github.com/dargueta/lzwcodec"
	c "github.com/dargueta/lzwcodec/utilities/compression"
	"github.com/dargueta/lzwcodec/utilities/predictor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlane(t *testing.T, rows [][]int) lzwcodec.Plane {
	plane, err := lzwcodec.NewPlaneFromRows(rows)
	require.NoError(t, err)
	return plane
}

func randomPlane(seed int64, width, height int) lzwcodec.Plane {
	rng := rand.New(rand.NewSource(seed))
	plane := lzwcodec.NewPlane(width, height)
	for i := range plane.Samples {
		plane.Samples[i] = rng.Intn(256)
	}
	return plane
}

func TestForward__TwoByTwo(t *testing.T) {
	plane := mustPlane(t, [][]int{{10, 12}, {10, 13}})
	residual, err := predictor.Forward(plane)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{10, 2}, {0, 3}}, residual.Rows())
}

func TestInverse__TwoByTwo(t *testing.T) {
	residual := mustPlane(t, [][]int{{10, 2}, {0, 3}})
	plane := predictor.Inverse(residual)
	assert.Equal(t, [][]int{{10, 12}, {10, 13}}, plane.Rows())
}

func TestForward__ColumnZeroIsVerticalDifference(t *testing.T) {
	plane := mustPlane(t, [][]int{{5, 0}, {9, 0}, {2, 0}})
	residual, err := predictor.Forward(plane)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{5, -5}, {4, -9}, {-7, -2}}, residual.Rows())
}

func TestForward__Extremes(t *testing.T) {
	plane := mustPlane(t, [][]int{{0, 255, 0}, {255, 0, 255}})
	residual, err := predictor.Forward(plane)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 255, -255}, {255, -255, 255}}, residual.Rows())

	symbols, err := predictor.ToSymbols(residual)
	require.NoError(t, err)
	assert.Equal(t, []c.Symbol{255, 510, 0, 510, 0, 510}, symbols)
}

func TestForward__OutOfRangeSample(t *testing.T) {
	_, err := predictor.Forward(mustPlane(t, [][]int{{0, 256}}))
	assert.ErrorIs(t, err, lzwcodec.ErrDomain)

	_, err = predictor.Forward(mustPlane(t, [][]int{{-1}}))
	assert.ErrorIs(t, err, lzwcodec.ErrDomain)
}

func TestForward__InconsistentPlane(t *testing.T) {
	_, err := predictor.Forward(lzwcodec.Plane{Width: 3, Height: 3, Samples: []int{1, 2}})
	assert.ErrorIs(t, err, lzwcodec.ErrDomain)
}

func TestRoundTrip__Planes(t *testing.T) {
	planes := map[string]lzwcodec.Plane{
		"1x1":       mustPlane(t, [][]int{{77}}),
		"row":       randomPlane(1, 40, 1),
		"column":    randomPlane(2, 1, 40),
		"square":    randomPlane(3, 32, 32),
		"wide":      randomPlane(4, 97, 13),
		"all zeros": lzwcodec.NewPlane(16, 16),
		"empty":     lzwcodec.NewPlane(0, 0),
	}

	for name, plane := range planes {
		t.Run(
			name,
			func(t *testing.T) {
				residual, err := predictor.Forward(plane)
				require.NoError(t, err)

				symbols, err := predictor.ToSymbols(residual)
				require.NoError(t, err)
				restoredResidual, err := predictor.FromSymbols(symbols, plane.Width, plane.Height)
				require.NoError(t, err)
				assert.Equal(t, residual, restoredResidual)

				restored := predictor.Inverse(restoredResidual)
				assert.Equal(t, plane, restored)
			},
		)
	}
}

func TestInverse__Clips(t *testing.T) {
	residual := mustPlane(t, [][]int{{250, 10, -255}, {-255, -5, 3}})
	plane := predictor.Inverse(residual)
	assert.Equal(t, [][]int{{250, 255, 5}, {0, 0, 0}}, plane.Rows())
}

func TestFromSymbols__WrongLength(t *testing.T) {
	_, err := predictor.FromSymbols([]c.Symbol{255, 255, 255}, 2, 2)
	assert.ErrorIs(t, err, lzwcodec.ErrMalformedStream)

	_, err = predictor.SymbolsToSamples([]c.Symbol{1}, 2, 2)
	assert.ErrorIs(t, err, lzwcodec.ErrMalformedStream)
}

func TestToSymbols__OutOfRange(t *testing.T) {
	_, err := predictor.ToSymbols(mustPlane(t, [][]int{{256}}))
	assert.ErrorIs(t, err, lzwcodec.ErrDomain)
}

func TestSymbolsToSamples__ResidualSymbolRejected(t *testing.T) {
	_, err := predictor.SymbolsToSamples([]c.Symbol{0, 300}, 2, 1)
	assert.ErrorIs(t, err, lzwcodec.ErrMalformedStream)
}
