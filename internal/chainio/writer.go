// SPDX-License-Identifier: MIT

package chainio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcmctidy/summary"
	"github.com/katalvlaran/mcmctidy/tidy"
)

// Format is an output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%q (want csv or yaml): %w", s, ErrUnsupportedFormat)
	}
}

// longRow is the YAML shape of a tidy.Record.
type longRow struct {
	Iteration int     `yaml:"iteration"`
	Chain     int     `yaml:"chain"`
	Parameter string  `yaml:"parameter"`
	Value     float64 `yaml:"value"`
}

// summaryRow is the YAML shape of a summary.Record; chain is omitted when pooled.
type summaryRow struct {
	Parameter string  `yaml:"parameter"`
	Chain     int     `yaml:"chain,omitempty"`
	Mean      float64 `yaml:"mean"`
	SD        float64 `yaml:"sd"`
	Lower     float64 `yaml:"lower"`
	Median    float64 `yaml:"median"`
	Upper     float64 `yaml:"upper"`
}

// summaryDoc is the YAML document written by WriteSummaryYAML.
type summaryDoc struct {
	ConfLevel  float64      `yaml:"conf_level"`
	PerChain   bool         `yaml:"per_chain"`
	LowerLabel string       `yaml:"lower_label"`
	UpperLabel string       `yaml:"upper_label"`
	Rows       []summaryRow `yaml:"rows"`
}

// WriteLong writes t in the given format.
func WriteLong(w io.Writer, t *tidy.Table, f Format) error {
	switch f {
	case FormatCSV:
		return WriteLongCSV(w, t)
	case FormatYAML:
		return WriteLongYAML(w, t)
	default:
		return fmt.Errorf("chainio: %q: %w", f, ErrUnsupportedFormat)
	}
}

// WriteSummary writes s in the given format.
func WriteSummary(w io.Writer, s *summary.Table, f Format) error {
	switch f {
	case FormatCSV:
		return WriteSummaryCSV(w, s)
	case FormatYAML:
		return WriteSummaryYAML(w, s)
	default:
		return fmt.Errorf("chainio: %q: %w", f, ErrUnsupportedFormat)
	}
}

// WriteLongCSV writes the columns iteration,chain,parameter,value.
func WriteLongCSV(w io.Writer, t *tidy.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"iteration", "chain", "parameter", "value"}); err != nil {
		return fmt.Errorf("chainio: write long: %w", err)
	}
	row := make([]string, 4)
	for i := 0; i < t.Len(); i++ {
		r := t.At(i)
		row[0] = strconv.Itoa(r.Iteration)
		row[1] = strconv.Itoa(r.Chain)
		row[2] = r.Parameter
		row[3] = formatFloat(r.Value)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("chainio: write long: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("chainio: write long: %w", err)
	}

	return nil
}

// WriteLongYAML writes t as a YAML sequence of records.
func WriteLongYAML(w io.Writer, t *tidy.Table) error {
	rows := make([]longRow, t.Len())
	for i := range rows {
		r := t.At(i)
		rows[i] = longRow{Iteration: r.Iteration, Chain: r.Chain, Parameter: r.Parameter, Value: r.Value}
	}

	return encodeYAML(w, rows)
}

// WriteSummaryCSV writes s with its display column names as the header.
func WriteSummaryCSV(w io.Writer, s *summary.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(s.Columns()); err != nil {
		return fmt.Errorf("chainio: write summary: %w", err)
	}
	for _, r := range s.Records() {
		row := []string{r.Parameter}
		if s.PerChain() {
			row = append(row, strconv.Itoa(r.Chain))
		}
		row = append(row,
			formatFloat(r.Mean),
			formatFloat(r.SD),
			formatFloat(r.Lower),
			formatFloat(r.Median),
			formatFloat(r.Upper))
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("chainio: write summary: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("chainio: write summary: %w", err)
	}

	return nil
}

// WriteSummaryYAML writes s as one YAML document carrying the interval labels.
func WriteSummaryYAML(w io.Writer, s *summary.Table) error {
	lower, upper := s.Labels()
	doc := summaryDoc{
		ConfLevel:  s.ConfLevel(),
		PerChain:   s.PerChain(),
		LowerLabel: lower,
		UpperLabel: upper,
		Rows:       make([]summaryRow, s.Len()),
	}
	for i := range doc.Rows {
		r := s.At(i)
		doc.Rows[i] = summaryRow{
			Parameter: r.Parameter,
			Chain:     r.Chain,
			Mean:      r.Mean,
			SD:        r.SD,
			Lower:     r.Lower,
			Median:    r.Median,
			Upper:     r.Upper,
		}
	}

	return encodeYAML(w, doc)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("chainio: write yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("chainio: write yaml: %w", err)
	}

	return nil
}

// formatFloat prints the shortest representation that round-trips.
func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
