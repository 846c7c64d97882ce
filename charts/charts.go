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

package charts

import (
	"github.com/cachesweep/cachesweep/analysis"
	"github.com/cachesweep/cachesweep/results"
	"github.com/go-multierror/multierror"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Artifact filenames, fixed so the sweep scripts and the report footer can
// refer to them.
const (
	MissRatePNG      = "cache_miss_rate_analysis.png"
	MissRatePDF      = "cache_miss_rate_analysis.pdf"
	ComprehensivePNG = "comprehensive_cache_analysis.png"
	ComprehensivePDF = "comprehensive_cache_analysis.pdf"
	RankingPNG       = "efficiency_ranking.png"
)

// legendLabels Legend entries of the per-associativity curves.
var legendLabels = map[string]string{
	results.Direct: "Direct-mapped (1-way)",
	"2":            "2-way set-associative",
	"4":            "4-way set-associative",
	"8":            "8-way set-associative",
	results.Fully:  "Fully-associative",
}

func combine(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	return multierror.Of(errs...)
}

// sizeTicks labels the log2 axis with the human sizes present in the table.
func sizeTicks(t *results.Table) plot.ConstantTicks {
	var ticks []plot.Tick
	for _, size := range t.Sizes() {
		ticks = append(ticks, plot.Tick{
			Value: float64(results.SizeLog2(size)),
			Label: results.SizeLabel(size),
		})
	}

	return plot.ConstantTicks(ticks)
}

func missRateXYs(t *results.Table, assoc string) plotter.XYs {
	var xys plotter.XYs
	for _, size := range t.Sizes() {
		if !t.Has(size, assoc) {
			continue
		}

		xys = append(xys, plotter.XY{
			X: float64(results.SizeLog2(size)),
			Y: t.Get(size, assoc).MissRate,
		})
	}

	return xys
}

func aatXYs(t *results.Table, assoc string) plotter.XYs {
	var xys plotter.XYs
	for _, size := range t.Sizes() {
		if !t.Has(size, assoc) {
			continue
		}

		xys = append(xys, plotter.XY{
			X: float64(results.SizeLog2(size)),
			Y: t.Get(size, assoc).AAT,
		})
	}

	return xys
}

// areaXYs keeps only cells with a known area so the log-scale panel never
// sees a non-positive value.
func areaXYs(t *results.Table, assoc string) plotter.XYs {
	var xys plotter.XYs
	for _, size := range t.Sizes() {
		if !t.Has(size, assoc) {
			continue
		}

		cell := t.Get(size, assoc)
		if cell.Area <= 0 {
			continue
		}

		xys = append(xys, plotter.XY{
			X: float64(results.SizeLog2(size)),
			Y: cell.Area,
		})
	}

	return xys
}

// efficiencyXYs keeps only cells that survive on a log-log scatter: a known
// area and a non-zero hit rate.
func efficiencyXYs(t *results.Table, assoc string) plotter.XYs {
	var xys plotter.XYs
	for _, size := range t.Sizes() {
		if !t.Has(size, assoc) {
			continue
		}

		cell := t.Get(size, assoc)
		if cell.Area <= 0 {
			continue
		}

		efficiency := analysis.Efficiency(cell.MissRate, cell.Area)
		if efficiency <= 0 {
			continue
		}

		xys = append(xys, plotter.XY{X: cell.Area, Y: efficiency})
	}

	return xys
}
