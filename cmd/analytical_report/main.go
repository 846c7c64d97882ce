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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cachesweep/cachesweep/analysis"
	"github.com/cachesweep/cachesweep/charts"
	"github.com/cachesweep/cachesweep/report"
	"github.com/cachesweep/cachesweep/results"
	"github.com/davecgh/go-spew/spew"
	"github.com/go-multierror/multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func main() {
	debug := flag.Bool("dbg", false, "Enable debug logging")
	input := flag.String("input", "enhanced_experiment_results.csv", "Enhanced sweep results CSV")
	outDir := flag.String("outdir", ".", "Directory the figures are written to")
	trace := flag.String("trace", "gcc_trace.txt", "Trace file the sweep was driven with")
	accesses := flag.Int("accesses", 100000, "Number of memory accesses in the trace")
	blockSize := flag.Int("blocksize", 32, "Cache block size in bytes")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetOutput(os.Stdout)

	if *debug {
		log.SetLevel(log.DebugLevel)
		log.Debug("Debug logging is enabled")
	} else {
		log.SetLevel(log.InfoLevel)
	}

	table, err := results.Load(*input)
	if err != nil {
		if errors.Is(err, results.ErrResultsUnavailable) {
			fmt.Printf("Error: %s not found. Run the enhanced experiment first.\n", *input)
			fmt.Println("No enhanced experiment results found.")
			fmt.Println("Please run: ./run_enhanced_experiment.sh first")
			return
		}
		log.Fatalf("Failed loading results: %v", err)
	}

	log.Debugf("Loaded results table:\n%s", spew.Sdump(table))

	fmt.Println("Generating comprehensive performance analysis...")
	fmt.Println()

	ctx := report.Context{Trace: *trace, Accesses: *accesses, BlockSizeBytes: *blockSize}
	if err := report.Analytical(os.Stdout, table, ctx); err != nil {
		log.Fatalf("Failed rendering the analytical report: %v", err)
	}

	var (
		artifacts []string
		renderErr []error
	)

	figures, err := charts.ComprehensiveFigure(*outDir, table)
	artifacts = append(artifacts, figures...)
	if err != nil {
		renderErr = append(renderErr, err)
	} else if len(figures) > 0 {
		fmt.Printf("Enhanced plots saved as '%s' and '%s'\n", charts.ComprehensivePNG, charts.ComprehensivePDF)
	}

	ranking := analysis.EfficiencyRanking(table.Records, report.TopK)
	figures, err = charts.EfficiencyBarChart(*outDir, ranking)
	artifacts = append(artifacts, figures...)
	if err != nil {
		renderErr = append(renderErr, err)
	}

	if len(renderErr) > 0 {
		fmt.Printf("Note: some figures could not be rendered: %v\n", multierror.Of(renderErr...))
	} else {
		fmt.Println("\nVisualization complete!")
	}

	if err := report.Completion(os.Stdout, artifacts); err != nil {
		log.Fatalf("Failed rendering the completion banner: %v", err)
	}
}
