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

package report

import (
	"github.com/cachesweep/cachesweep/results"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TopK Number of configurations the analytical ranking table lists.
const TopK = 5

// Context Workload details the reports echo back. They describe the trace
// that was driven through the simulator, not anything recorded in the
// results file, so the caller supplies them.
type Context struct {
	Trace          string
	Accesses       int
	BlockSizeBytes int
}

// assocHeadings Column titles of the per-associativity tables.
var assocHeadings = map[string]string{
	results.Direct: "Direct",
	"2":            "2-way",
	"4":            "4-way",
	"8":            "8-way",
	results.Fully:  "Fully",
}

var enPrinter = message.NewPrinter(language.English)

// accessesLabel formats an access count with thousands separators, as in
// "100,000 memory accesses".
func accessesLabel(n int) string {
	return enPrinter.Sprintf("%d", n)
}
