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
	"path/filepath"

	"github.com/cachesweep/cachesweep/results"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// MissRateFigure renders the miss rate vs cache size line chart and saves
// it under outDir as PNG and PDF. It returns the artifacts it managed to
// write; a failed save is logged and reported but does not stop the other
// format.
func MissRateFigure(outDir string, t *results.Table, trace string, blockSizeBytes int) ([]string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf(
		"L1 Cache Miss Rate vs. Cache Size for %s\n(Block Size = %d bytes, No L2 cache, No Prefetching)",
		trace, blockSizeBytes)
	p.X.Label.Text = "Cache Size"
	p.Y.Label.Text = "L1 Miss Rate"
	p.X.Min, p.X.Max = 9.5, 20.5
	p.Y.Min, p.Y.Max = 0, 0.25
	p.X.Tick.Marker = sizeTicks(t)
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	var series []interface{}
	for _, assoc := range results.Associativities {
		xys := missRateXYs(t, assoc)
		if len(xys) == 0 {
			continue
		}

		series = append(series, legendLabels[assoc], xys)
	}
	if len(series) > 0 {
		if err := plotutil.AddLinePoints(p, series...); err != nil {
			log.Warnf("Failed adding miss-rate series: %v", err)
			return nil, errors.Wrap(err, "failed to add miss-rate series")
		}
	}

	var (
		artifacts []string
		errs      []error
	)
	for _, name := range []string{MissRatePNG, MissRatePDF} {
		path := filepath.Join(outDir, name)
		if err := p.Save(12*vg.Inch, 8*vg.Inch, path); err != nil {
			log.Warnf("Failed saving %s: %v", path, err)
			errs = append(errs, errors.Wrapf(err, "failed to save %s", path))
			continue
		}

		artifacts = append(artifacts, path)
	}

	return artifacts, combine(errs)
}
