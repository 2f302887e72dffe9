package codec

import (
	"fmt"
	"io"
	"os"

	"github.com/dargueta/lzwcodec"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// WriteReport writes statistics as CSV, one row per entry, with a header row.
func WriteReport(output io.Writer, stats []lzwcodec.Statistics) error {
	if err := gocsv.Marshal(stats, output); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// ReadReport parses a CSV report written by [WriteReport].
func ReadReport(input io.Reader) ([]lzwcodec.Statistics, error) {
	stats := []lzwcodec.Statistics{}
	if err := gocsv.Unmarshal(input, &stats); err != nil {
		return nil, lzwcodec.ErrMalformedStream.Wrap(err)
	}
	return stats, nil
}

// AppendReport adds rows to the CSV report at `path`, creating it with a
// header row if it doesn't exist or is empty.
func AppendReport(path string, stats []lzwcodec.Statistics) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed to open report %q", path)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to stat report %q", path)
	}

	if info.Size() == 0 {
		err = gocsv.Marshal(stats, file)
	} else {
		err = gocsv.MarshalWithoutHeaders(stats, file)
	}
	closeErr := file.Close()
	if err != nil {
		return fmt.Errorf("failed to write report %q: %w", path, err)
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, "failed to write report %q", path)
	}
	return nil
}
