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
	"fmt"
	"os"
	"path/filepath"

	"github.com/cachesweep/cachesweep/analysis"
	"github.com/cachesweep/cachesweep/results"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart"
)

// EfficiencyBarChart renders the efficiency ranking as a bar chart, one bar
// per configuration, best first, and saves it under outDir.
func EfficiencyBarChart(outDir string, ranking []analysis.RankedConfig) ([]string, error) {
	if len(ranking) == 0 {
		log.Warn("No configurations with a known area; skipping the ranking chart")
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(ranking))
	for _, cfg := range ranking {
		bars = append(bars, chart.Value{
			Value: cfg.Efficiency,
			Label: fmt.Sprintf("%s/%s", results.SizeLabel(cfg.SizeKB), assocShort(cfg.Associativity)),
		})
	}

	graph := chart.BarChart{
		Title:      "Top Configurations by Performance/Area Efficiency",
		TitleStyle: chart.StyleShow(),
		Background: chart.Style{
			Padding: chart.Box{
				Top: 40,
			},
		},
		Height:   512,
		BarWidth: 60,
		XAxis:    chart.StyleShow(),
		YAxis: chart.YAxis{
			Name:      "Efficiency (hit rate/mm²)",
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
		},
		Bars: bars,
	}

	path := filepath.Join(outDir, RankingPNG)
	f, err := os.Create(path)
	if err != nil {
		log.Warnf("Failed creating %s: %v", path, err)
		return nil, errors.Wrapf(err, "failed to create %s", path)
	}

	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		log.Warnf("Failed rendering %s: %v", path, err)
		return nil, errors.Wrapf(err, "failed to render %s", path)
	}

	if err := f.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to close %s", path)
	}

	return []string{path}, nil
}

func assocShort(assoc string) string {
	if assoc == results.Fully {
		return "fully"
	}

	return assoc + "-way"
}
