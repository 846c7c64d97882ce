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
	"sort"

	"github.com/cachesweep/cachesweep/results"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Improvement The miss-rate gain of going from direct-mapped to fully
// associative at one cache size. Pct keeps its sign, so a fully-associative
// cache that performs worse shows up as a negative improvement rather than
// being clamped.
type Improvement struct {
	SizeKB         int
	DirectMissRate float64
	FullyMissRate  float64
	Pct            float64
}

// ImprovementBySize computes the direct-vs-fully improvement for every size,
// ascending. Sizes missing either endpoint are skipped, as is a direct miss
// rate of exactly 0: the percentage is undefined there, not 0 or infinite.
func ImprovementBySize(t *results.Table) []Improvement {
	var imps []Improvement
	for _, size := range t.Sizes() {
		if !t.Has(size, results.Direct) || !t.Has(size, results.Fully) {
			continue
		}

		direct := t.Get(size, results.Direct).MissRate
		fully := t.Get(size, results.Fully).MissRate
		if direct == 0 {
			continue
		}

		imps = append(imps, Improvement{
			SizeKB:         size,
			DirectMissRate: direct,
			FullyMissRate:  fully,
			Pct:            (direct - fully) / direct * 100,
		})
	}

	return imps
}

// RankedConfig One cache configuration with its area efficiency, as listed
// in the analytical report's ranking table.
type RankedConfig struct {
	SizeKB        int
	Associativity string
	MissRate      float64
	AAT           float64
	Area          float64
	Efficiency    float64
}

// Efficiency Hit rate delivered per unit of silicon area. The caller must
// ensure areaMM2 > 0.
func Efficiency(missRate, areaMM2 float64) float64 {
	return (1 - missRate) / areaMM2
}

// EfficiencyRanking ranks configurations by efficiency, best first, and cuts
// the list to the top k (k <= 0 keeps all). Records without a known area
// are left out entirely rather than ranked at infinity.
func EfficiencyRanking(records []results.Record, k int) []RankedConfig {
	ranked := make([]RankedConfig, 0, len(records))
	for _, r := range records {
		if r.AreaMM2 <= 0 {
			continue
		}

		ranked = append(ranked, RankedConfig{
			SizeKB:        r.SizeKB,
			Associativity: r.Associativity,
			MissRate:      r.MissRate,
			AAT:           r.AATCycles,
			Area:          r.AreaMM2,
			Efficiency:    Efficiency(r.MissRate, r.AreaMM2),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Efficiency > ranked[j].Efficiency
	})

	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}

	return ranked
}

// AATMeanStd returns the mean and standard deviation of the average access
// time across all sizes measured at the given associativity.
func AATMeanStd(t *results.Table, assoc string) (mean, std float64) {
	var aats []float64
	for _, size := range t.Sizes() {
		if t.Has(size, assoc) {
			aats = append(aats, t.Get(size, assoc).AAT)
		}
	}

	switch len(aats) {
	case 0:
		return 0, 0
	case 1:
		return aats[0], 0
	}

	return stat.MeanStdDev(aats, nil)
}

// ImprovementStats summarises the per-size improvement percentages for the
// report's aggregate line. An empty input is an error, not a zero summary.
func ImprovementStats(imps []Improvement) (mean, median float64, err error) {
	pcts := make([]float64, len(imps))
	for i, imp := range imps {
		pcts[i] = imp.Pct
	}

	mean, err = stats.Mean(pcts)
	if err != nil {
		return 0, 0, err
	}

	median, err = stats.Median(pcts)
	if err != nil {
		return 0, 0, err
	}

	return mean, median, nil
}
