package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Delimiter rune // Field delimiter (default: ',')
	Comment   rune // Lines starting with this rune are ignored (default: none)
	SkipRows  int  // Number of rows to skip before the header row
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: ',',
	}
}

// LoadCSV loads a table from a CSV file. Compressed files are recognized
// by their extension (.gz, .zst, .bz2).
func LoadCSV(filename string, opts *CSVOptions) (*Table, error) {
	rc, err := Open(filename)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return LoadCSVFromReader(rc, opts)
}

// LoadCSVFromReader loads a table from an io.Reader. The first record
// after SkipRows is the header row.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.Comment = opts.Comment
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	// Skip rows if needed
	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, fmt.Errorf("skipping row %d: %w", i+1, err)
		}
	}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("no header row found in CSV")
	}
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}

	return NewTable(header, rows)
}
