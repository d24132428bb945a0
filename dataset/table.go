package dataset

import (
	"fmt"
	"strings"

	"github.com/sartorproj/tabstat"
)

// Table is a header row plus a row-major matrix of raw cell strings.
// Every row has exactly len(Headers) cells.
type Table struct {
	Headers []string
	Rows    [][]string

	index map[string]int
}

// Column is a single named column of raw cell strings in row order.
type Column struct {
	Header string
	Values []string
}

// NewTable creates a table from headers and rows. Headers must be unique
// and non-empty. Short rows are padded with empty cells, long rows are
// truncated to the header width.
func NewTable(headers []string, rows [][]string) (*Table, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("%w: table has no headers", tabstat.ErrInvalidSelection)
	}

	index := make(map[string]int, len(headers))
	clean := make([]string, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		if h == "" {
			return nil, fmt.Errorf("%w: empty header at position %d", tabstat.ErrInvalidSelection, i+1)
		}
		if _, ok := index[h]; ok {
			return nil, fmt.Errorf("%w: duplicate header %q", tabstat.ErrInvalidSelection, h)
		}
		index[h] = i
		clean[i] = h
	}

	width := len(clean)
	normalized := make([][]string, len(rows))
	for r, row := range rows {
		cells := make([]string, width)
		copy(cells, row)
		normalized[r] = cells
	}

	return &Table{
		Headers: clean,
		Rows:    normalized,
		index:   index,
	}, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, error) {
	idx, ok := t.index[strings.TrimSpace(name)]
	if !ok {
		return -1, fmt.Errorf("%w: unknown column %q", tabstat.ErrInvalidSelection, name)
	}
	return idx, nil
}

// Column returns a copy of the named column's raw values.
func (t *Table) Column(name string) (*Column, error) {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}

	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}

	return &Column{
		Header: t.Headers[idx],
		Values: values,
	}, nil
}
