// MIT License
//
// Copyright (c) 2025 The cachesweep authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package analysis

import (
	"math"

	"github.com/cachesweep/cachesweep/results"
)

// DefaultKneeThresholdPct Relative step gain below which growing the cache
// further is considered diminishing returns.
const DefaultKneeThresholdPct = 10.0

// SeriesPoint One step of a size-ordered miss-rate curve.
type SeriesPoint struct {
	SizeKB   int
	MissRate float64
}

// KneePoint A spot where the miss-rate curve flattens out. SizeKB and
// MissRate describe the point just before the flattening step, the smallest
// cache that already delivers most of the achievable gain.
type KneePoint struct {
	SizeKB         int
	MissRate       float64
	ImprovementPct float64
}

// Series extracts the size-ordered miss-rate curve at one associativity,
// skipping sizes the sweep has no row for.
func Series(t *results.Table, assoc string) []SeriesPoint {
	var series []SeriesPoint
	for _, size := range t.Sizes() {
		if !t.Has(size, assoc) {
			continue
		}

		series = append(series, SeriesPoint{
			SizeKB:   size,
			MissRate: t.Get(size, assoc).MissRate,
		})
	}

	return series
}

// FullyAssocSeries is the curve the knee scan and the minimum-miss-rate
// summary run on: the fully-associative column is the best case any
// associativity can reach at a given size.
func FullyAssocSeries(t *results.Table) []SeriesPoint {
	return Series(t, results.Fully)
}

// KneePoints scans a size-ordered miss-rate series for points of diminishing
// returns. Each adjacent pair yields a relative improvement
// (prev-curr)/prev*100; a knee is the falling edge where the improvement
// drops below thresholdPct after a step at or above it. The detector starts
// armed, re-arms on any step back at or above the threshold, and can report
// several knees on a non-monotone curve. Fewer than two points yield none.
//
// A step whose left miss rate is exactly 0 has no defined improvement; it
// is skipped and re-arms the detector.
func KneePoints(series []SeriesPoint, thresholdPct float64) []KneePoint {
	if len(series) < 2 {
		return nil
	}

	var knees []KneePoint

	prev := math.Inf(1)
	for i := 1; i < len(series); i++ {
		left := series[i-1].MissRate
		if left == 0 {
			prev = math.Inf(1)
			continue
		}

		improvement := (left - series[i].MissRate) / left * 100
		if improvement < thresholdPct && prev >= thresholdPct {
			knees = append(knees, KneePoint{
				SizeKB:         series[i-1].SizeKB,
				MissRate:       left,
				ImprovementPct: improvement,
			})
		}
		prev = improvement
	}

	return knees
}

// MinimumPractical returns the final point of the series: with miss rate
// falling in size, the largest measured cache is the lowest miss rate the
// sweep reached.
func MinimumPractical(series []SeriesPoint) (SeriesPoint, bool) {
	if len(series) == 0 {
		return SeriesPoint{}, false
	}

	return series[len(series)-1], true
}
