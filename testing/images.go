package testing

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/dargueta/lzwcodec"
	"github.com/dargueta/lzwcodec/codec"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// LoadTextContainer takes a text container and returns a stream to access the
// decompressed data.
//
//   - Writes to the stream do not affect `containerBytes`.
//   - While the stream can be written to, its size is fixed to `expectedSize`.
//     Attempting to write past the end of this buffer will trigger an error.
func LoadTextContainer(t *testing.T, containerBytes []byte, expectedSize int) io.ReadWriteSeeker {
	require.Greater(t, len(containerBytes), 0, "container is empty")

	data, err := codec.DecodeText(containerBytes)
	require.NoError(t, err)
	require.Equal(t, expectedSize, len(data), "decompressed text is wrong size")
	return bytesextra.NewReadWriteSeeker(data)
}

// LoadPlaneContainer decodes an image container and checks its dimensions. It
// is guaranteed to either return a valid plane or fail the test and abort.
func LoadPlaneContainer(
	t *testing.T, kind lzwcodec.Kind, containerBytes []byte, width, height int,
) lzwcodec.Plane {
	plane, err := codec.DecodePlane(kind, containerBytes)
	require.NoError(t, err)
	require.Equal(t, width, plane.Width, "decoded plane has wrong width")
	require.Equal(t, height, plane.Height, "decoded plane has wrong height")
	return plane
}

// WriteGrayImage saves a plane as a grayscale image named `name` in a
// temporary directory and returns its path. The extension of `name` selects
// the format.
func WriteGrayImage(t *testing.T, name string, plane lzwcodec.Plane) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, codec.SaveImage(path, codec.GrayImage(plane)))
	return path
}

// WriteColorImage saves three planes as a color image named `name` in a
// temporary directory and returns its path.
func WriteColorImage(t *testing.T, name string, planes [3]lzwcodec.Plane) string {
	img, err := codec.RGBImage(planes)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, codec.SaveImage(path, img))
	return path
}
