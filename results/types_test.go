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

package results

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizeKBFromLog2(t *testing.T) {
	require.Equal(t, 1, SizeKBFromLog2(10), "2^10 bytes should be 1KB")
	require.Equal(t, 16, SizeKBFromLog2(14), "2^14 bytes should be 16KB")
	require.Equal(t, 1024, SizeKBFromLog2(20), "2^20 bytes should be 1MB")
	require.Equal(t, 0, SizeKBFromLog2(5), "Sub-KB sizes should truncate to 0")
	require.Equal(t, 0, SizeKBFromLog2(-1), "Negative exponents should yield 0")
	require.Equal(t, 0, SizeKBFromLog2(63), "Out-of-range exponents should yield 0")
}

func TestSizeLog2(t *testing.T) {
	require.Equal(t, 10, SizeLog2(1), "1KB is 2^10 bytes")
	require.Equal(t, 14, SizeLog2(16), "16KB is 2^14 bytes")
	require.Equal(t, 20, SizeLog2(1024), "1MB is 2^20 bytes")
	require.Equal(t, 0, SizeLog2(0), "0KB has no exponent")

	for log2 := 10; log2 <= 20; log2++ {
		require.Equal(t, log2, SizeLog2(SizeKBFromLog2(log2)),
			"SizeLog2 must invert SizeKBFromLog2 over the sweep range")
	}
}

func TestSizeLabel(t *testing.T) {
	require.Equal(t, "1KB", SizeLabel(1), "1KB label is incorrect")
	require.Equal(t, "512KB", SizeLabel(512), "512KB label is incorrect")
	require.Equal(t, "1MB", SizeLabel(1024), "1MB label is incorrect")
	require.Equal(t, "4MB", SizeLabel(4096), "4MB label is incorrect")
	require.Equal(t, "1536KB", SizeLabel(1536), "Non-whole MB sizes should stay in KB")
}

func TestTableDuplicateCellKeepsLatest(t *testing.T) {
	table := NewTable()
	table.Add(Record{Log2Size: 12, SizeKB: 4, Associativity: "2", MissRate: 0.5})
	table.Add(Record{Log2Size: 12, SizeKB: 4, Associativity: "2", MissRate: 0.25})

	require.Equal(t, 0.25, table.Get(4, "2").MissRate, "A re-run row should replace the earlier cell")
	require.Len(t, table.Records, 2, "Both raw records should be retained")
}

func TestTableGetMissingCellIsZero(t *testing.T) {
	table := NewTable()
	table.Add(Record{Log2Size: 12, SizeKB: 4, Associativity: Direct, MissRate: 0.5})

	require.False(t, table.Has(4, Fully), "Fully entry should be absent")
	require.Equal(t, Config{}, table.Get(4, Fully), "A missing cell should read as the zero config")
}

func TestAssociativityOrder(t *testing.T) {
	require.Equal(t, []string{Direct, "2", "4", "8", Fully}, Associativities,
		"Column order must go from direct-mapped to fully associative")
}
