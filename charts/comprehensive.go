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
	"os"
	"path/filepath"

	"github.com/cachesweep/cachesweep/results"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// ComprehensiveFigure renders the four-panel trade-off figure (miss rate,
// AAT, area, efficiency vs area) and saves it under outDir as PNG and PDF.
// It returns the artifacts it managed to write.
func ComprehensiveFigure(outDir string, t *results.Table) ([]string, error) {
	if len(t.Records) == 0 {
		log.Warn("No records to plot; skipping the comprehensive figure")
		return nil, nil
	}

	missRate, err := linePanel(t, "Miss Rate vs Cache Size", "Miss Rate", missRateXYs)
	if err != nil {
		return nil, err
	}

	aat, err := linePanel(t, "AAT vs Cache Size", "Average Access Time (cycles)", aatXYs)
	if err != nil {
		return nil, err
	}

	area, err := areaPanel(t)
	if err != nil {
		return nil, err
	}

	efficiency, err := efficiencyPanel(t)
	if err != nil {
		return nil, err
	}

	panels := [][]*plot.Plot{
		{missRate, aat},
		{area, efficiency},
	}

	return renderTiles(outDir, panels)
}

// linePanel builds a per-associativity line chart over the log2 size axis.
func linePanel(t *results.Table, title, yLabel string, xys func(*results.Table, string) plotter.XYs) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "log2(Cache Size)"
	p.Y.Label.Text = yLabel
	p.X.Min, p.X.Max = 9.5, 20.5
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	var series []interface{}
	for _, assoc := range results.Associativities {
		points := xys(t, assoc)
		if len(points) == 0 {
			continue
		}

		series = append(series, legendLabels[assoc], points)
	}
	if len(series) == 0 {
		p.Y.Min, p.Y.Max = 0, 1
		return p, nil
	}

	if err := plotutil.AddLinePoints(p, series...); err != nil {
		return nil, errors.Wrapf(err, "failed to build %q panel", title)
	}

	return p, nil
}

func areaPanel(t *results.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Cache Area vs Size"
	p.X.Label.Text = "log2(Cache Size)"
	p.Y.Label.Text = "Cache Area (mm² - log scale)"
	p.X.Min, p.X.Max = 9.5, 20.5
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	var series []interface{}
	for _, assoc := range results.Associativities {
		points := areaXYs(t, assoc)
		if len(points) == 0 {
			continue
		}

		series = append(series, legendLabels[assoc], points)
	}
	if len(series) == 0 {
		// No known areas: leave the panel linear and empty.
		p.Y.Min, p.Y.Max = 0, 1
		return p, nil
	}

	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	if err := plotutil.AddLinePoints(p, series...); err != nil {
		return nil, errors.Wrap(err, "failed to build area panel")
	}

	return p, nil
}

func efficiencyPanel(t *results.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Performance vs Area Trade-off"
	p.X.Label.Text = "Cache Area (mm²)"
	p.Y.Label.Text = "Performance Efficiency (hit rate/mm²)"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	var series []interface{}
	for _, assoc := range results.Associativities {
		points := efficiencyXYs(t, assoc)
		if len(points) == 0 {
			continue
		}

		series = append(series, legendLabels[assoc], points)
	}
	if len(series) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
		return p, nil
	}

	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	if err := plotutil.AddScatters(p, series...); err != nil {
		return nil, errors.Wrap(err, "failed to build efficiency panel")
	}

	return p, nil
}

// renderTiles draws the 2x2 panel grid once per output format.
func renderTiles(outDir string, panels [][]*plot.Plot) ([]string, error) {
	const (
		width  = 15 * vg.Inch
		height = 12 * vg.Inch
	)

	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: 5 * vg.Millimeter, PadY: 5 * vg.Millimeter,
		PadTop: 5 * vg.Millimeter, PadBottom: 5 * vg.Millimeter,
		PadLeft: 5 * vg.Millimeter, PadRight: 5 * vg.Millimeter,
	}

	var (
		artifacts []string
		errs      []error
	)

	img := vgimg.New(width, height)
	drawPanels(panels, plot.Align(panels, tiles, draw.New(img)))
	pngPath := filepath.Join(outDir, ComprehensivePNG)
	if err := writePNG(img, pngPath); err != nil {
		log.Warnf("Failed saving %s: %v", pngPath, err)
		errs = append(errs, err)
	} else {
		artifacts = append(artifacts, pngPath)
	}

	pdf := vgpdf.New(width, height)
	drawPanels(panels, plot.Align(panels, tiles, draw.New(pdf)))
	pdfPath := filepath.Join(outDir, ComprehensivePDF)
	if err := writePDF(pdf, pdfPath); err != nil {
		log.Warnf("Failed saving %s: %v", pdfPath, err)
		errs = append(errs, err)
	} else {
		artifacts = append(artifacts, pdfPath)
	}

	return artifacts, combine(errs)
}

func drawPanels(panels [][]*plot.Plot, canvases [][]draw.Canvas) {
	for r := range panels {
		for c := range panels[r] {
			panels[r][c].Draw(canvases[r][c])
		}
	}
}

func writePNG(img *vgimg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to encode %s", path)
	}

	return errors.Wrapf(f.Close(), "failed to close %s", path)
}

func writePDF(pdf *vgpdf.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	if _, err := pdf.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to encode %s", path)
	}

	return errors.Wrapf(f.Close(), "failed to close %s", path)
}
