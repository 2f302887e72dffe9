package codec

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dargueta/lzwcodec"
	"github.com/pkg/errors"
)

// Result describes the artifacts written by [Compress].
type Result struct {
	// ArtifactPaths lists the containers written, one for text and grayscale
	// kinds, three (R, G, B) for color kinds.
	ArtifactPaths []string
	Stats         lzwcodec.Statistics
}

// ChannelPaths returns the per-channel container paths for a color artifact.
// For example "out/cat.bin" gives "out/cat_R.bin", "out/cat_G.bin", and
// "out/cat_B.bin".
func ChannelPaths(artifactPath string) [3]string {
	extension := filepath.Ext(artifactPath)
	base := strings.TrimSuffix(artifactPath, extension)

	var paths [3]string
	for i, suffix := range lzwcodec.ChannelSuffixes {
		paths[i] = base + suffix + extension
	}
	return paths
}

// DefaultDecompressedPath gives the output path [Decompress] uses when none is
// provided: the artifact's base name with "_decompressed" and ".txt" or ".png"
// appended.
func DefaultDecompressedPath(kind lzwcodec.Kind, artifactPath string) string {
	base := strings.TrimSuffix(artifactPath, filepath.Ext(artifactPath))
	if kind.IsImage() {
		return base + "_decompressed.png"
	}
	return base + "_decompressed.txt"
}

// Compress reads the source at `sourcePath`, compresses it according to `kind`,
// and writes the container(s) derived from `artifactPath`.
func Compress(kind lzwcodec.Kind, sourcePath, artifactPath string) (Result, error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to stat source %q", sourcePath)
	}

	stats := lzwcodec.Statistics{
		SourcePath:   sourcePath,
		Kind:         kind.String(),
		OriginalSize: info.Size(),
	}
	census := NewSampleCensus()

	var result Result
	switch {
	case !kind.IsImage():
		result, err = compressTextFile(sourcePath, artifactPath, census)
	case kind.IsColor():
		result, err = compressColorFile(kind, sourcePath, artifactPath, census, &stats)
	default:
		result, err = compressGrayFile(kind, sourcePath, artifactPath, census, &stats)
	}
	if err != nil {
		return Result{}, err
	}

	stats.CompressedSize = result.Stats.CompressedSize
	stats.CodeWidth = result.Stats.CodeWidth
	stats.CodeCount = result.Stats.CodeCount
	stats.CompressionRatio = CompressionRatio(stats.OriginalSize, stats.CompressedSize)
	stats.Entropy = census.Entropy()
	stats.DistinctSymbols = census.Distinct()
	result.Stats = stats
	return result, nil
}

func compressTextFile(
	sourcePath, artifactPath string, census *SampleCensus,
) (Result, error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to read source %q", sourcePath)
	}
	census.AddBytes(data)

	output, info, err := EncodeText(data)
	if err != nil {
		return Result{}, err
	}
	if err = writeArtifact(artifactPath, output); err != nil {
		return Result{}, err
	}
	return resultFor([]string{artifactPath}, info), nil
}

func compressGrayFile(
	kind lzwcodec.Kind,
	sourcePath, artifactPath string,
	census *SampleCensus,
	stats *lzwcodec.Statistics,
) (Result, error) {
	img, err := LoadImage(sourcePath)
	if err != nil {
		return Result{}, err
	}

	plane := GrayPlane(img)
	census.AddPlane(plane)
	stats.Width = plane.Width
	stats.Height = plane.Height

	output, info, err := EncodePlane(kind, plane)
	if err != nil {
		return Result{}, err
	}
	if err = writeArtifact(artifactPath, output); err != nil {
		return Result{}, err
	}
	return resultFor([]string{artifactPath}, info), nil
}

func compressColorFile(
	kind lzwcodec.Kind,
	sourcePath, artifactPath string,
	census *SampleCensus,
	stats *lzwcodec.Statistics,
) (Result, error) {
	img, err := LoadImage(sourcePath)
	if err != nil {
		return Result{}, err
	}

	planes := RGBPlanes(img)
	for _, plane := range planes {
		census.AddPlane(plane)
	}
	stats.Width = planes[0].Width
	stats.Height = planes[0].Height

	outputs, infos, err := EncodeColor(kind, planes)
	if err != nil {
		return Result{}, err
	}

	paths := ChannelPaths(artifactPath)
	for i, output := range outputs {
		if err = writeArtifact(paths[i], output); err != nil {
			return Result{}, err
		}
	}
	return resultFor(paths[:], infos[:]...), nil
}

// Decompress reconstructs the source from the container(s) derived from
// `artifactPath` and writes it to `outputPath`. If `outputPath` is empty,
// [DefaultDecompressedPath] is used. The path written is returned.
func Decompress(kind lzwcodec.Kind, artifactPath, outputPath string) (string, error) {
	if outputPath == "" {
		outputPath = DefaultDecompressedPath(kind, artifactPath)
	}

	switch {
	case !kind.IsImage():
		data, err := readArtifact(artifactPath)
		if err != nil {
			return "", err
		}
		text, err := DecodeText(data)
		if err != nil {
			return "", err
		}
		if err = os.WriteFile(outputPath, text, 0o644); err != nil {
			return "", errors.Wrapf(err, "failed to write %q", outputPath)
		}

	case kind.IsColor():
		var containers [3][]byte
		for i, path := range ChannelPaths(artifactPath) {
			data, err := readArtifact(path)
			if err != nil {
				return "", err
			}
			containers[i] = data
		}

		planes, err := DecodeColor(kind, containers)
		if err != nil {
			return "", err
		}
		img, err := RGBImage(planes)
		if err != nil {
			return "", err
		}
		if err = SaveImage(outputPath, img); err != nil {
			return "", err
		}

	default:
		data, err := readArtifact(artifactPath)
		if err != nil {
			return "", err
		}
		plane, err := DecodePlane(kind, data)
		if err != nil {
			return "", err
		}
		if err = SaveImage(outputPath, GrayImage(plane)); err != nil {
			return "", err
		}
	}
	return outputPath, nil
}

func resultFor(paths []string, infos ...EncodeInfo) Result {
	result := Result{ArtifactPaths: paths}
	for _, info := range infos {
		result.Stats.CompressedSize += info.Size
		result.Stats.CodeCount += info.CodeCount
		if info.CodeWidth > result.Stats.CodeWidth {
			result.Stats.CodeWidth = info.CodeWidth
		}
	}
	return result
}

func writeArtifact(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write artifact %q", path)
	}
	return nil
}

func readArtifact(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read artifact %q", path)
	}
	return data, nil
}
