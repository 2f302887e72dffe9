package codec

import (
	"math"

	"github.com/boljen/go-bitmap"
	"github.com/dargueta/lzwcodec"
)

// SampleCensus accumulates a histogram of 8-bit samples and tracks which values
// have been seen.
type SampleCensus struct {
	Histogram [256]int
	Total     int
	seen      bitmap.Bitmap
	distinct  int
}

// NewSampleCensus creates an empty census.
func NewSampleCensus() *SampleCensus {
	return &SampleCensus{seen: bitmap.New(256)}
}

// AddByte records one sample.
func (census *SampleCensus) AddByte(value byte) {
	census.Histogram[value]++
	census.Total++
	if !census.seen.Get(int(value)) {
		census.seen.Set(int(value), true)
		census.distinct++
	}
}

// AddBytes records every byte in `data`.
func (census *SampleCensus) AddBytes(data []byte) {
	for _, b := range data {
		census.AddByte(b)
	}
}

// AddPlane records every sample of a pixel plane. Samples are clipped to
// [0, 255].
func (census *SampleCensus) AddPlane(plane lzwcodec.Plane) {
	for _, value := range plane.Samples {
		census.AddByte(clipSample(value))
	}
}

// Distinct returns the number of different values seen.
func (census *SampleCensus) Distinct() int {
	return census.distinct
}

// Entropy returns the Shannon entropy of the samples seen, in bits per sample.
// An empty census has an entropy of 0.
func (census *SampleCensus) Entropy() float64 {
	if census.Total == 0 {
		return 0
	}

	entropy := 0.0
	total := float64(census.Total)
	for _, count := range census.Histogram {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// CompressionRatio returns original / compressed, or 0 if nothing was written.
func CompressionRatio(originalSize, compressedSize int64) float64 {
	if compressedSize <= 0 {
		return 0
	}
	return float64(originalSize) / float64(compressedSize)
}
