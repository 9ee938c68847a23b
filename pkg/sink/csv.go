package sink

import (
	"encoding/csv"
	"io"

	"github.com/ssargent/fixedwidth/pkg/fwf"
)

// CSVWriter serializes records as CSV rows.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter creates a CSV writer over the given stream.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// WriteHeader writes the column header row.
func (c *CSVWriter) WriteHeader(names []string) error {
	return c.w.Write(names)
}

// WriteRow writes one decoded record as a CSV row.
func (c *CSVWriter) WriteRow(rec fwf.Record) error {
	row := make([]string, len(rec))
	for i, v := range rec {
		row[i] = FormatValue(v)
	}
	return c.w.Write(row)
}

// Flush drains buffered rows to the underlying stream.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}
