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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	var out bytes.Buffer
	err := Summary(&out, sweepTable(), testContext())
	require.NoError(t, err, "Failed rendering the experiment summary")

	text := out.String()
	require.Contains(t, text, "EXPERIMENT SUMMARY", "Summary banner is missing")
	require.Contains(t, text, "Trace file: gcc_trace.txt (100,000 memory accesses)",
		"Trace context line is missing")
	require.Contains(t, text, "Cache sizes: 1KB to 16KB (powers of 2)",
		"Size range must come from the table, not a fixed string")
	require.Contains(t, text, "       1KB | 0.400 | 0.000 | 0.000 | 0.000 | 0.200",
		"Results row must substitute 0.000 for missing cells")
	require.Contains(t, text, "KEY OBSERVATIONS:", "Observations section is missing")
	require.Contains(t, text, "1. Miss rate decreases significantly as cache size increases",
		"Observation list is missing")
}
