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

func TestImprovementBySize(t *testing.T) {
	table := results.NewTable()
	table.Add(results.Record{SizeKB: 1, Associativity: results.Direct, MissRate: 0.20})
	table.Add(results.Record{SizeKB: 1, Associativity: results.Fully, MissRate: 0.05})
	table.Add(results.Record{SizeKB: 16, Associativity: results.Direct, MissRate: 0.10})
	table.Add(results.Record{SizeKB: 16, Associativity: results.Fully, MissRate: 0.08})

	imps := ImprovementBySize(table)
	require.Len(t, imps, 2, "Both sizes should yield an improvement")
	require.Equal(t, 1, imps[0].SizeKB, "Improvements should be ordered by size")
	require.InDelta(t, 75.0, imps[0].Pct, 1e-9, "0.20 -> 0.05 should be a 75 percent improvement")
	require.InDelta(t, 20.0, imps[1].Pct, 1e-9, "0.10 -> 0.08 should be a 20 percent improvement")
}

func TestImprovementSkipsIncompleteSizes(t *testing.T) {
	table := results.NewTable()
	table.Add(results.Record{SizeKB: 1, Associativity: results.Direct, MissRate: 0.20})
	table.Add(results.Record{SizeKB: 2, Associativity: results.Fully, MissRate: 0.05})
	table.Add(results.Record{SizeKB: 4, Associativity: "2", MissRate: 0.10})

	require.Empty(t, ImprovementBySize(table),
		"Sizes missing the direct or the fully entry must be skipped, not read as 0")
}

func TestImprovementSkipsZeroDirectMissRate(t *testing.T) {
	table := results.NewTable()
	table.Add(results.Record{SizeKB: 1, Associativity: results.Direct, MissRate: 0})
	table.Add(results.Record{SizeKB: 1, Associativity: results.Fully, MissRate: 0})

	require.Empty(t, ImprovementBySize(table),
		"A 0 direct miss rate leaves the percentage undefined and must be skipped")
}

func TestImprovementKeepsNegativeSign(t *testing.T) {
	table := results.NewTable()
	table.Add(results.Record{SizeKB: 1, Associativity: results.Direct, MissRate: 0.10})
	table.Add(results.Record{SizeKB: 1, Associativity: results.Fully, MissRate: 0.12})

	imps := ImprovementBySize(table)
	require.Len(t, imps, 1, "The size should still be reported")
	require.InDelta(t, -20.0, imps[0].Pct, 1e-9, "A regression must stay negative")
}

func TestEfficiencyRanking(t *testing.T) {
	records := []results.Record{
		{SizeKB: 16, Associativity: "4", MissRate: 0.1, AreaMM2: 2.0},
		{SizeKB: 4, Associativity: "2", MissRate: 0.3, AreaMM2: 1.0},
	}

	ranked := EfficiencyRanking(records, 5)
	require.Len(t, ranked, 2, "Both records have a known area and should be ranked")
	require.InDelta(t, 0.70, ranked[0].Efficiency, 1e-9, "Best efficiency is incorrect")
	require.InDelta(t, 0.45, ranked[1].Efficiency, 1e-9, "Second efficiency is incorrect")
	require.Equal(t, 4, ranked[0].SizeKB, "The 4KB/2-way config should rank first")
}

func TestEfficiencyRankingExcludesUnknownArea(t *testing.T) {
	records := []results.Record{
		{SizeKB: 1, Associativity: results.Direct, MissRate: 0.2, AreaMM2: 0},
		{SizeKB: 2, Associativity: results.Direct, MissRate: 0.2, AreaMM2: -1},
		{SizeKB: 4, Associativity: results.Direct, MissRate: 0.2, AreaMM2: 0.5},
	}

	ranked := EfficiencyRanking(records, 0)
	require.Len(t, ranked, 1, "Records without a positive area must not be ranked")
	require.Equal(t, 4, ranked[0].SizeKB, "The wrong record survived the area filter")
}

func TestEfficiencyRankingTopKCutoff(t *testing.T) {
	records := []results.Record{
		{SizeKB: 1, Associativity: results.Direct, MissRate: 0.5, AreaMM2: 1},
		{SizeKB: 2, Associativity: results.Direct, MissRate: 0.4, AreaMM2: 1},
		{SizeKB: 4, Associativity: results.Direct, MissRate: 0.3, AreaMM2: 1},
	}

	require.Len(t, EfficiencyRanking(records, 2), 2, "Ranking should be cut to the top k")
	require.Len(t, EfficiencyRanking(records, 0), 3, "k <= 0 should keep the full ranking")
	require.Len(t, EfficiencyRanking(records, 10), 3, "k beyond the list length keeps everything")
}

func TestAATMeanStd(t *testing.T) {
	table := results.NewTable()
	table.Add(results.Record{SizeKB: 1, Associativity: "2", AATCycles: 1.0})
	table.Add(results.Record{SizeKB: 2, Associativity: "2", AATCycles: 2.0})
	table.Add(results.Record{SizeKB: 4, Associativity: "2", AATCycles: 3.0})

	mean, std := AATMeanStd(table, "2")
	require.InDelta(t, 2.0, mean, 1e-9, "AAT mean is incorrect")
	require.InDelta(t, 1.0, std, 1e-9, "AAT standard deviation is incorrect")
}

func TestAATMeanStdDegenerateInputs(t *testing.T) {
	table := results.NewTable()

	mean, std := AATMeanStd(table, "2")
	require.Zero(t, mean, "An absent column should summarise to 0")
	require.Zero(t, std, "An absent column should summarise to 0")

	table.Add(results.Record{SizeKB: 1, Associativity: "2", AATCycles: 1.5})
	mean, std = AATMeanStd(table, "2")
	require.Equal(t, 1.5, mean, "A single sample is its own mean")
	require.Zero(t, std, "A single sample has no spread")
}

func TestImprovementStats(t *testing.T) {
	imps := []Improvement{{Pct: 75.0}, {Pct: 25.0}}

	mean, median, err := ImprovementStats(imps)
	require.NoError(t, err, "Failed summarising improvements")
	require.InDelta(t, 50.0, mean, 1e-9, "Mean improvement is incorrect")
	require.InDelta(t, 50.0, median, 1e-9, "Median improvement is incorrect")

	_, _, err = ImprovementStats(nil)
	require.Error(t, err, "An empty improvement list has no summary")
}
