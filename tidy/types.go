// SPDX-License-Identifier: MIT

package tidy

import "slices"

// Record is one observed draw. Iteration and Chain are 1-based.
type Record struct {
	Iteration int
	Chain     int
	Parameter string
	Value     float64
}

// Run locates the contiguous records of one (parameter, chain) pair.
type Run struct {
	Parameter string
	Chain     int
	Offset    int // index of the first record
	Len       int // number of records
}

// Table is an immutable long-format table.
type Table struct {
	records []Record
	params  []string // first-appearance order
	runs    []Run    // contiguous (parameter, chain) runs in table order
}

// newTable takes ownership of recs and indexes its runs and parameters.
// Complexity: O(n) with one map for parameter first appearance.
func newTable(recs []Record) *Table {
	t := &Table{records: recs}
	seen := make(map[string]struct{})
	for i := range recs {
		r := &recs[i]
		if n := len(t.runs); n > 0 && t.runs[n-1].Parameter == r.Parameter && t.runs[n-1].Chain == r.Chain {
			t.runs[n-1].Len++
			continue
		}
		t.runs = append(t.runs, Run{Parameter: r.Parameter, Chain: r.Chain, Offset: i, Len: 1})
		if _, ok := seen[r.Parameter]; !ok {
			seen[r.Parameter] = struct{}{}
			t.params = append(t.params, r.Parameter)
		}
	}

	return t
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// At returns the i-th record. It panics when i is out of range, like a slice index.
func (t *Table) At(i int) Record { return t.records[i] }

// Records returns a copy of all records in table order.
func (t *Table) Records() []Record { return slices.Clone(t.records) }

// Parameters returns the parameter names in order of first appearance.
func (t *Table) Parameters() []string { return slices.Clone(t.params) }

// Runs returns the contiguous (parameter, chain) runs in table order.
// A pair that appears in two separate stretches yields two runs.
func (t *Table) Runs() []Run { return slices.Clone(t.runs) }

// Slice returns a copy of the records of run r.
func (t *Table) Slice(r Run) []Record {
	return slices.Clone(t.records[r.Offset : r.Offset+r.Len])
}

// AppendValues appends the values of run r to dst.
func (t *Table) AppendValues(dst []float64, r Run) []float64 {
	for _, rec := range t.records[r.Offset : r.Offset+r.Len] {
		dst = append(dst, rec.Value)
	}

	return dst
}

// Select returns a new table holding the records for which keep reports true,
// in table order. keep receives the record's run and its 0-based position in
// that run; it is called twice per record (count, then copy) and must be pure.
// Values are copied, never recomputed.
// Complexity: O(n), one allocation for the records.
func (t *Table) Select(keep func(r Run, pos int) bool) *Table {
	size := 0
	for _, r := range t.runs {
		for pos := 0; pos < r.Len; pos++ {
			if keep(r, pos) {
				size++
			}
		}
	}

	recs := make([]Record, 0, size)
	for _, r := range t.runs {
		for pos := 0; pos < r.Len; pos++ {
			if keep(r, pos) {
				recs = append(recs, t.records[r.Offset+pos])
			}
		}
	}

	return newTable(recs)
}
