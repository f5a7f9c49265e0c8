// SPDX-License-Identifier: MIT

package summary

import (
	"math"
	"slices"
	"strconv"
)

// AllChains is the Chain value of a record that pools every chain.
const AllChains = 0

// Record is one row of a summary table.
type Record struct {
	Parameter string
	Chain     int // AllChains when chains are pooled
	Mean      float64
	SD        float64
	Lower     float64
	Median    float64
	Upper     float64
}

// Pooled reports whether r summarizes all chains together.
func (r Record) Pooled() bool { return r.Chain == AllChains }

// Table is an immutable summary table.
type Table struct {
	records    []Record
	confLevel  float64
	perChain   bool
	lowerLabel string
	upperLabel string
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.records) }

// At returns the i-th row. It panics when i is out of range, like a slice index.
func (t *Table) At(i int) Record { return t.records[i] }

// Records returns a copy of all rows in table order.
func (t *Table) Records() []Record { return slices.Clone(t.records) }

// ConfLevel returns the credible-interval level the table was computed with.
func (t *Table) ConfLevel() float64 { return t.confLevel }

// PerChain reports whether rows are per (parameter, chain).
func (t *Table) PerChain() bool { return t.perChain }

// Labels returns the display names of the Lower and Upper columns, e.g. "2.5%" and "97.5%".
func (t *Table) Labels() (lower, upper string) { return t.lowerLabel, t.upperLabel }

// Columns returns the display column names in row order. Chain appears only
// for per-chain tables.
func (t *Table) Columns() []string {
	cols := []string{"Parameter"}
	if t.perChain {
		cols = append(cols, "Chain")
	}

	return append(cols, "Mean", "SD", t.lowerLabel, "Median", t.upperLabel)
}

// Lookup returns the row of the given parameter and chain (AllChains for pooled tables).
func (t *Table) Lookup(parameter string, chain int) (Record, bool) {
	for _, r := range t.records {
		if r.Parameter == parameter && r.Chain == chain {
			return r, true
		}
	}

	return Record{}, false
}

// QuantileLabel renders probability p as a percentage label: 0.025 -> "2.5%".
// The percentage is rounded to 6 decimals so that (1-0.95)/2 prints as 2.5.
func QuantileLabel(p float64) string {
	pct := math.Round(p*100*1e6) / 1e6

	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// intervalProbabilities returns the lower and upper quantile probabilities for level p.
func intervalProbabilities(p float64) (lower, upper float64) {
	tail := (1 - p) / 2

	return tail, 1 - tail
}
