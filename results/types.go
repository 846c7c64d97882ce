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
	"fmt"
	"math/bits"
	"sort"
)

const (
	// Direct Associativity label for a direct-mapped (1-way) cache
	Direct = "1"
	// Fully Associativity label for a fully-associative cache
	Fully = "fully"
)

// Associativities lists the sweep's associativity labels in display order.
// "fully" is a sentinel meaning set-associativity equal to the number of
// blocks in the cache, which is why the labels are strings rather than ints.
var Associativities = []string{Direct, "2", "4", "8", Fully}

// Record One row of experiment output: a single cache configuration with
// its measured metrics. AATCycles, AreaMM2 and PerfPerArea only appear in
// the enhanced sweep; they are zero when the column is absent or blank.
type Record struct {
	Log2Size      int
	SizeKB        int
	Associativity string
	MissRate      float64
	AATCycles     float64
	AreaMM2       float64
	PerfPerArea   float64
}

// Config The metrics recorded for one (size, associativity) cell of the
// sweep. An Area of 0 means unknown and excludes the cell from area-based
// rankings.
type Config struct {
	MissRate float64
	AAT      float64
	Area     float64
}

// Table Experiment records grouped by cache size in KB, then by
// associativity label. Missing cells read as the zero Config so report
// tables can substitute 0.0 without guarding every lookup.
type Table struct {
	Records []Record

	cells map[int]map[string]Config
}

// NewTable creates an empty results table.
func NewTable() *Table {
	t := new(Table)
	t.cells = make(map[int]map[string]Config)

	return t
}

// Add appends a record and indexes it under its (size, associativity) cell.
// A duplicate cell is overwritten by the later record.
func (t *Table) Add(r Record) {
	t.Records = append(t.Records, r)

	bySize, ok := t.cells[r.SizeKB]
	if !ok {
		bySize = make(map[string]Config)
		t.cells[r.SizeKB] = bySize
	}

	bySize[r.Associativity] = Config{
		MissRate: r.MissRate,
		AAT:      r.AATCycles,
		Area:     r.AreaMM2,
	}
}

// Sizes returns the cache sizes present in the table in ascending KB order.
// Map iteration order is meaningless, so consumers must go through here
// before rendering anything size-ordered.
func (t *Table) Sizes() []int {
	sizes := make([]int, 0, len(t.cells))
	for size := range t.cells {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	return sizes
}

// Get returns the metrics cell for a (size, associativity) pair, or the
// zero Config when the sweep has no such row.
func (t *Table) Get(sizeKB int, assoc string) Config {
	return t.cells[sizeKB][assoc]
}

// Has reports whether the sweep produced a row for the given pair. The
// improvement calculation needs this distinction: a missing cell is skipped
// there rather than read as a 0.0 miss rate.
func (t *Table) Has(sizeKB int, assoc string) bool {
	_, ok := t.cells[sizeKB][assoc]
	return ok
}

// SizeKBFromLog2 derives the size in KB from log2 of the size in bytes,
// consistently with how the sweep scripts emit the size_kb column.
func SizeKBFromLog2(log2Size int) int {
	if log2Size < 0 || log2Size > 62 {
		return 0
	}

	return int((uint64(1) << uint(log2Size)) / 1024)
}

// SizeLog2 recovers log2 of the size in bytes from a KB size, rounding
// down for sizes that are not a power of two.
func SizeLog2(sizeKB int) int {
	if sizeKB <= 0 {
		return 0
	}

	return bits.Len(uint(sizeKB)) - 1 + 10
}

// SizeLabel formats a KB size the way the reports print it: 1KB..512KB,
// then 1MB and up.
func SizeLabel(sizeKB int) string {
	if sizeKB >= 1024 && sizeKB%1024 == 0 {
		return fmt.Sprintf("%dMB", sizeKB/1024)
	}

	return fmt.Sprintf("%dKB", sizeKB)
}
