package fwf

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Date fields render as YYYYMMDD when they fit in 8 bytes, otherwise
// ISO with dashes. Both forms read back through the permissive parser.
const (
	dateFormatCompact = "20060102"
	dateFormatISO     = "2006-01-02"
)

// EncodeRecord renders one record's values into a fixed-length block
// using the same layout the reader decodes with: numerics right-aligned
// and space-padded, text left-aligned and space-padded, nil rendered as
// blanks. Values wider than their field are rejected, not truncated.
// The block does not include terminator bytes;
// the caller appends whatever terminator convention its file uses.
//
// Encoding then decoding a record through one layout reproduces the
// original values, modulo scale truncation and pad stripping.
func EncodeRecord(layout *FileLayout, values []interface{}) ([]byte, error) {
	if len(values) != len(layout.Columns) {
		return nil, fmt.Errorf("value count %d does not match column count %d", len(values), len(layout.Columns))
	}
	block := make([]byte, layout.RecordLength)
	for i := range block {
		block[i] = ' '
	}
	for i, c := range layout.Columns {
		field, err := EncodeValue(c, values[i])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.Name, err)
		}
		copy(block[c.Start:c.End()], field)
	}
	return block, nil
}

// EncodeValue renders a single typed value into the column's fixed
// byte width.
func EncodeValue(c Column, v interface{}) ([]byte, error) {
	if v == nil {
		return []byte(strings.Repeat(" ", c.Length)), nil
	}

	var s string
	switch c.Kind {
	case Numeric:
		text, err := encodeNumeric(c, v)
		if err != nil {
			return nil, err
		}
		s = padLeft(text, c.Length)
	case Date:
		t, ok := v.(time.Time)
		if !ok {
			return nil, fmt.Errorf("date column requires time.Time, got %T", v)
		}
		format := dateFormatISO
		if c.Length < len(dateFormatISO) {
			format = dateFormatCompact
		}
		s = padRight(t.Format(format), c.Length)
	default:
		text, ok := v.(string)
		if !ok {
			text = fmt.Sprint(v)
		}
		s = padRight(text, c.Length)
	}

	if len(s) > c.Length {
		return nil, fmt.Errorf("value %q does not fit in %d bytes", strings.TrimSpace(s), c.Length)
	}
	return []byte(s), nil
}

// encodeNumeric renders an integer, or a scaled decimal with an implied
// decimal point: 123.45 at scale 2 renders as "12345". Excess precision
// beyond the declared scale is truncated.
func encodeNumeric(c Column, v interface{}) (string, error) {
	if c.Scale == 0 {
		switch n := v.(type) {
		case int64:
			return fmt.Sprintf("%d", n), nil
		case int:
			return fmt.Sprintf("%d", n), nil
		default:
			return "", fmt.Errorf("numeric column requires an integer, got %T", v)
		}
	}
	var d decimal.Decimal
	switch n := v.(type) {
	case decimal.Decimal:
		d = n
	case int64:
		d = decimal.NewFromInt(n)
	case int:
		d = decimal.NewFromInt(int64(n))
	case float64:
		d = decimal.NewFromFloat(n)
	default:
		return "", fmt.Errorf("scaled numeric column requires a decimal, got %T", v)
	}
	return d.Shift(int32(c.Scale)).Truncate(0).String(), nil
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
