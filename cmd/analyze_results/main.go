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

	"github.com/cachesweep/cachesweep/report"
	"github.com/cachesweep/cachesweep/results"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func main() {
	debug := flag.Bool("dbg", false, "Enable debug logging")
	input := flag.String("input", "experiment_results.csv", "Sweep results CSV to analyse")
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
			fmt.Printf("Error: %s not found. Run the experiment sweep first.\n", *input)
			return
		}
		log.Fatalf("Failed loading results: %v", err)
	}

	log.Debugf("Loaded results table:\n%s", spew.Sdump(table))

	ctx := report.Context{Trace: *trace, Accesses: *accesses, BlockSizeBytes: *blockSize}
	if err := report.Basic(os.Stdout, table, ctx); err != nil {
		log.Fatalf("Failed rendering the analysis report: %v", err)
	}
}
