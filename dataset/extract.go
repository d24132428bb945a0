package dataset

import (
	"strconv"
	"strings"

	"github.com/sartorproj/tabstat"
)

// Extraction is the numeric series parsed from a column together with
// the number of cells that did not contribute to it.
type Extraction struct {
	Column string
	Values []float64
	// Dropped counts non-empty cells that are not finite numbers.
	Dropped int
	// Missing counts empty cells.
	Missing int
}

// Degraded reports whether any non-empty cell was discarded.
func (e *Extraction) Degraded() bool {
	return e.Dropped > 0
}

// Extract parses the named column of the table into a numeric series.
func Extract(t *Table, columnName string) (*Extraction, error) {
	col, err := t.Column(columnName)
	if err != nil {
		return nil, err
	}
	return ExtractColumn(col), nil
}

// ExtractColumn parses raw cells into a numeric series, keeping row order.
// Cells that are empty or do not parse to a finite number are skipped and
// counted.
func ExtractColumn(col *Column) *Extraction {
	ext := &Extraction{
		Column: col.Header,
		Values: make([]float64, 0, len(col.Values)),
	}

	for _, raw := range col.Values {
		v, ok, empty := parseCell(raw)
		switch {
		case empty:
			ext.Missing++
		case !ok:
			ext.Dropped++
		default:
			ext.Values = append(ext.Values, v)
		}
	}

	return ext
}

// Pairs is an index-aligned label axis and numeric series.
type Pairs struct {
	LabelColumn string
	ValueColumn string
	Labels      []string
	Values      []float64
	// Dropped counts rows removed because the label was empty or the
	// value was not a finite number.
	Dropped int
}

// Len returns the number of aligned observations.
func (p *Pairs) Len() int {
	return len(p.Values)
}

// ExtractPairs builds a time series input from a label column and a value
// column. A row is kept only if both its label is non-empty and its value
// parses, so the two sequences stay aligned.
func ExtractPairs(t *Table, labelColumn, valueColumn string) (*Pairs, error) {
	labelIdx, err := t.ColumnIndex(labelColumn)
	if err != nil {
		return nil, err
	}
	valueIdx, err := t.ColumnIndex(valueColumn)
	if err != nil {
		return nil, err
	}

	p := &Pairs{
		LabelColumn: t.Headers[labelIdx],
		ValueColumn: t.Headers[valueIdx],
		Labels:      make([]string, 0, len(t.Rows)),
		Values:      make([]float64, 0, len(t.Rows)),
	}

	for _, row := range t.Rows {
		label := strings.TrimSpace(strings.Trim(row[labelIdx], "\""))
		v, ok, _ := parseCell(row[valueIdx])
		if label == "" || !ok {
			p.Dropped++
			continue
		}
		p.Labels = append(p.Labels, label)
		p.Values = append(p.Values, v)
	}

	return p, nil
}

// parseCell parses a raw cell. empty is set for blank cells.
func parseCell(raw string) (v float64, ok bool, empty bool) {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), "\""))
	if s == "" {
		return 0, false, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !tabstat.IsFinite(v) {
		return 0, false, false
	}
	return v, true, false
}
