package codec

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dargueta/lzwcodec"
	"github.com/disintegration/gift"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// LoadImage decodes the image at `path`. PNG, BMP, TIFF, and JPEG sources are
// supported.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image %q", path)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, lzwcodec.ErrUnsupportedFormat.Wrap(
			errors.Wrapf(err, "failed to decode image %q", path))
	}
	return img, nil
}

// GrayPlane converts an image to luminance and returns it as a plane.
func GrayPlane(img image.Image) lzwcodec.Plane {
	filter := gift.New(gift.Grayscale())
	gray := image.NewGray(filter.Bounds(img.Bounds()))
	filter.Draw(gray, img)

	bounds := gray.Bounds()
	plane := lzwcodec.NewPlane(bounds.Dx(), bounds.Dy())
	for row := 0; row < plane.Height; row++ {
		offset := row * gray.Stride
		for col := 0; col < plane.Width; col++ {
			plane.Set(row, col, int(gray.Pix[offset+col]))
		}
	}
	return plane
}

// RGBPlanes splits an image into its red, green, and blue planes. Alpha is
// discarded.
func RGBPlanes(img image.Image) [3]lzwcodec.Plane {
	filter := gift.New()
	rgba := image.NewNRGBA(filter.Bounds(img.Bounds()))
	filter.Draw(rgba, img)

	bounds := rgba.Bounds()
	var planes [3]lzwcodec.Plane
	for i := range planes {
		planes[i] = lzwcodec.NewPlane(bounds.Dx(), bounds.Dy())
	}

	for row := 0; row < bounds.Dy(); row++ {
		offset := row * rgba.Stride
		for col := 0; col < bounds.Dx(); col++ {
			pixel := rgba.Pix[offset+col*4 : offset+col*4+4]
			for i := range planes {
				planes[i].Set(row, col, int(pixel[i]))
			}
		}
	}
	return planes
}

// GrayImage builds an 8-bit grayscale image from a plane. Samples are clipped
// to [0, 255].
func GrayImage(plane lzwcodec.Plane) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, plane.Width, plane.Height))
	for row := 0; row < plane.Height; row++ {
		for col := 0; col < plane.Width; col++ {
			img.SetGray(col, row, color.Gray{Y: clipSample(plane.At(row, col))})
		}
	}
	return img
}

// RGBImage merges three planes of equal size into an opaque color image.
func RGBImage(planes [3]lzwcodec.Plane) (*image.NRGBA, error) {
	width := planes[0].Width
	height := planes[0].Height
	for i := 1; i < len(planes); i++ {
		if planes[i].Width != width || planes[i].Height != height {
			return nil, lzwcodec.ErrDomain.WithMessage(
				fmt.Sprintf(
					"%s plane is %dx%d, expected %dx%d",
					channelNames[i],
					planes[i].Width,
					planes[i].Height,
					width,
					height))
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			img.SetNRGBA(col, row, color.NRGBA{
				R: clipSample(planes[0].At(row, col)),
				G: clipSample(planes[1].At(row, col)),
				B: clipSample(planes[2].At(row, col)),
				A: 0xff,
			})
		}
	}
	return img, nil
}

// EncodeImage writes `img` in the format implied by `extension` (".png",
// ".bmp", ".tif", or ".tiff"). Lossy formats are rejected since they'd defeat
// a lossless round trip.
func EncodeImage(output io.Writer, img image.Image, extension string) error {
	switch strings.ToLower(extension) {
	case ".png", "":
		return png.Encode(output, img)
	case ".bmp":
		return bmp.Encode(output, img)
	case ".tif", ".tiff":
		return tiff.Encode(output, img, &tiff.Options{Compression: tiff.Uncompressed})
	default:
		return lzwcodec.ErrUnsupportedFormat.WithMessage(
			fmt.Sprintf("can't write images with extension %q", extension))
	}
}

// SaveImage writes `img` to `path`, picking the format from the extension.
func SaveImage(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %q for writing", path)
	}

	err = EncodeImage(file, img, filepath.Ext(path))
	closeErr := file.Close()
	if err != nil {
		os.Remove(path)
		return err
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, "failed to write %q", path)
	}
	return nil
}

func clipSample(value int) uint8 {
	if value < 0 {
		return 0
	}
	if value > 0xff {
		return 0xff
	}
	return uint8(value)
}
