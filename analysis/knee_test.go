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
	"testing"

	"github.com/cachesweep/cachesweep/results"
	"github.com/stretchr/testify/require"
)

func TestKneePointsFindsFlatteningStep(t *testing.T) {
	series := []SeriesPoint{
		{SizeKB: 1, MissRate: 0.20},
		{SizeKB: 2, MissRate: 0.15},
		{SizeKB: 4, MissRate: 0.10},
		{SizeKB: 8, MissRate: 0.095},
		{SizeKB: 16, MissRate: 0.090},
	}

	knees := KneePoints(series, DefaultKneeThresholdPct)
	require.Len(t, knees, 1, "Exactly one knee expected on this curve")
	require.Equal(t, 4, knees[0].SizeKB, "The sweet spot is the size before the flattening step")
	require.Equal(t, 0.10, knees[0].MissRate, "The sweet spot carries its own miss rate")
	require.InDelta(t, 5.0, knees[0].ImprovementPct, 1e-9, "The flattening step gain is incorrect")
}

func TestKneePointsFiresOncePerCrossing(t *testing.T) {
	// Two separated flattenings, with a big step in between that re-arms
	// the detector.
	series := []SeriesPoint{
		{SizeKB: 1, MissRate: 0.20},
		{SizeKB: 2, MissRate: 0.15},
		{SizeKB: 4, MissRate: 0.14},
		{SizeKB: 8, MissRate: 0.07},
		{SizeKB: 16, MissRate: 0.068},
	}

	knees := KneePoints(series, DefaultKneeThresholdPct)
	require.Len(t, knees, 2, "Each threshold crossing should be reported once")
	require.Equal(t, 2, knees[0].SizeKB, "First knee size is incorrect")
	require.Equal(t, 8, knees[1].SizeKB, "Second knee size is incorrect")
}

func TestKneePointsFlatCurve(t *testing.T) {
	series := []SeriesPoint{
		{SizeKB: 1, MissRate: 0.100},
		{SizeKB: 2, MissRate: 0.099},
		{SizeKB: 4, MissRate: 0.098},
	}

	knees := KneePoints(series, DefaultKneeThresholdPct)
	require.Len(t, knees, 1, "A curve flat from the start knees at the smallest size")
	require.Equal(t, 1, knees[0].SizeKB, "The smallest size should be the sweet spot")
}

func TestKneePointsShortSeries(t *testing.T) {
	require.Empty(t, KneePoints(nil, DefaultKneeThresholdPct),
		"An empty series has no knees")
	require.Empty(t, KneePoints([]SeriesPoint{{SizeKB: 1, MissRate: 0.2}}, DefaultKneeThresholdPct),
		"A single point has no knees")
}

func TestKneePointsZeroMissRateDisarms(t *testing.T) {
	series := []SeriesPoint{
		{SizeKB: 1, MissRate: 0.2},
		{SizeKB: 2, MissRate: 0},
		{SizeKB: 4, MissRate: 0},
	}

	require.Empty(t, KneePoints(series, DefaultKneeThresholdPct),
		"A step out of a 0 miss rate has no defined gain and must not fire")
}

func TestFullyAssocSeries(t *testing.T) {
	table := results.NewTable()
	table.Add(results.Record{SizeKB: 16, Associativity: results.Fully, MissRate: 0.08})
	table.Add(results.Record{SizeKB: 1, Associativity: results.Fully, MissRate: 0.20})
	table.Add(results.Record{SizeKB: 4, Associativity: results.Direct, MissRate: 0.15})

	series := FullyAssocSeries(table)
	require.Len(t, series, 2, "Sizes without a fully-associative row must be skipped")
	require.Equal(t, 1, series[0].SizeKB, "Series must be ordered by size")
	require.Equal(t, 0.20, series[0].MissRate, "Series miss rate is incorrect")
	require.Equal(t, 16, series[1].SizeKB, "Series must end at the largest size")

	direct := Series(table, results.Direct)
	require.Len(t, direct, 1, "The direct-mapped curve has a single point here")
	require.Equal(t, 4, direct[0].SizeKB, "Direct-mapped series point is incorrect")
}

func TestMinimumPractical(t *testing.T) {
	series := []SeriesPoint{
		{SizeKB: 1, MissRate: 0.20},
		{SizeKB: 1024, MissRate: 0.017},
	}

	floor, ok := MinimumPractical(series)
	require.True(t, ok, "A non-empty series has a minimum")
	require.Equal(t, 1024, floor.SizeKB, "The minimum comes from the largest cache")
	require.Equal(t, 0.017, floor.MissRate, "Minimum miss rate is incorrect")

	_, ok = MinimumPractical(nil)
	require.False(t, ok, "An empty series has no minimum")
}
