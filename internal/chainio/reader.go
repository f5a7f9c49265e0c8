// SPDX-License-Identifier: MIT

package chainio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/mcmctidy/samples"
)

// ReadChain reads one chain file. Compression follows the extension.
func ReadChain(path string) (samples.Chain, error) {
	rc, err := Open(path)
	if err != nil {
		return samples.Chain{}, err
	}
	defer rc.Close() //nolint:errcheck

	ch, err := DecodeChain(rc)
	if err != nil {
		return samples.Chain{}, fmt.Errorf("chainio: %s: %w", path, err)
	}

	return ch, nil
}

// ReadChains reads one file per chain, in argument order, into a Source.
// Files whose headers disagree yield samples.ErrShapeMismatch.
func ReadChains(paths ...string) (samples.Source, error) {
	chains := make([]samples.Chain, 0, len(paths))
	for _, p := range paths {
		ch, err := ReadChain(p)
		if err != nil {
			return nil, err
		}
		chains = append(chains, ch)
	}

	src, err := samples.FromChains(chains...)
	if err != nil {
		return nil, fmt.Errorf("chainio: %w", err)
	}

	return src, nil
}

// DecodeChain parses a chain CSV from r.
// Stage 1: header row gives the parameter names (surrounding spaces trimmed).
// Stage 2: every later row must have as many cells as the header.
func DecodeChain(r io.Reader) (samples.Chain, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 0 // set from the header
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return samples.Chain{}, ErrNoHeader
	}
	if err != nil {
		return samples.Chain{}, fmt.Errorf("header: %v: %w", err, ErrParse)
	}
	names := make([]string, len(header))
	for j, h := range header {
		names[j] = strings.TrimSpace(h)
	}

	var draws [][]float64
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return samples.Chain{}, fmt.Errorf("%v: %w", err, ErrParse)
		}
		vals := make([]float64, len(rec))
		for j, cell := range rec {
			v, err := parseCell(cell)
			if err != nil {
				line, _ := cr.FieldPos(j)

				return samples.Chain{}, fmt.Errorf("line %d column %q: %q: %w", line, names[j], cell, ErrParse)
			}
			vals[j] = v
		}
		draws = append(draws, vals)
	}

	return samples.Chain{Parameters: names, Draws: draws}, nil
}

// parseCell reads a numeric cell; NA markers become NaN.
func parseCell(cell string) (float64, error) {
	s := strings.TrimSpace(cell)
	switch s {
	case "", "NA", "NaN", "nan":
		return math.NaN(), nil
	}

	return strconv.ParseFloat(s, 64)
}
