package fwf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// Kind identifies how a column's raw bytes are coerced into a value.
type Kind int

const (
	// Text passes the decoded bytes through as a trimmed string.
	Text Kind = iota
	// Numeric parses an integer, or a fixed-point decimal when the
	// column declares a non-zero scale.
	Numeric
	// Date parses with a permissive human-date parser.
	Date
)

// String returns the layout-file name for the kind (CHAR, NUM, DATE).
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "NUM"
	case Date:
		return "DATE"
	default:
		return "CHAR"
	}
}

// ParseKind maps a layout-file type name onto a Kind. Unknown names are
// rejected rather than defaulted so that a typo in a layout document
// cannot silently downgrade a column to text.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CHAR", "STRING":
		return Text, nil
	case "NUM", "NUMERIC":
		return Numeric, nil
	case "DATE":
		return Date, nil
	}
	return Text, &InvalidSpecError{Field: s, Reason: "unknown column type"}
}

// decodeFunc coerces the raw text of one field into its typed value.
// Resolved once per column when the layout is built, not per record.
type decodeFunc func(s string) (interface{}, error)

// Column describes one field of a fixed-width record: the byte range it
// occupies within the record block, its coercion kind and, for scaled
// numerics, the implied decimal scale.
//
// Columns are immutable after construction and owned by the FileLayout
// that declares them. Ranges of distinct columns may overlap or leave
// gaps (fixed-width producers use padding freely), but each range must
// be well formed on its own.
type Column struct {
	Ord    int    // ordinal position within the layout
	Name   string // column header, unique within the layout
	Kind   Kind   // value coercion kind
	Start  int    // starting byte offset within the record
	Length int    // field length in bytes
	Scale  int    // implied decimal scale, Numeric only

	decode decodeFunc
}

// NewColumn creates a column spec, validating that it describes a
// usable byte range.
func NewColumn(ord int, name string, kind Kind, start, length, scale int) (Column, error) {
	if name == "" {
		return Column{}, &InvalidSpecError{Field: fmt.Sprintf("column %d", ord), Reason: "empty name"}
	}
	if ord < 0 {
		return Column{}, &InvalidSpecError{Field: name, Reason: "negative ordinal"}
	}
	if start < 0 {
		return Column{}, &InvalidSpecError{Field: name, Reason: "negative start offset"}
	}
	if length <= 0 {
		return Column{}, &InvalidSpecError{Field: name, Reason: "length must be positive"}
	}
	if scale < 0 {
		return Column{}, &InvalidSpecError{Field: name, Reason: "negative scale"}
	}
	c := Column{
		Ord:    ord,
		Name:   name,
		Kind:   kind,
		Start:  start,
		Length: length,
		Scale:  scale,
	}
	c.decode = c.newDecoder()
	return c, nil
}

// End returns the exclusive ending byte offset of the column.
func (c Column) End() int {
	return c.Start + c.Length
}

func (c Column) String() string {
	return fmt.Sprintf("%s:[%d-%d]", c.Name, c.Start, c.End())
}

// newDecoder resolves the column's kind and scale into a decode
// function. Empty (all-whitespace) Numeric and Date fields decode to
// nil; Text fields always decode to the trimmed string.
func (c Column) newDecoder() decodeFunc {
	switch c.Kind {
	case Numeric:
		if c.Scale == 0 {
			return decodeInt
		}
		scale := c.Scale
		return func(s string) (interface{}, error) {
			return decodeDecimal(s, scale)
		}
	case Date:
		return decodeDate
	default:
		return decodeText
	}
}

func decodeText(s string) (interface{}, error) {
	return strings.TrimSpace(s), nil
}

func decodeInt(s string) (interface{}, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// decodeDecimal parses a scaled numeric field. A field with an explicit
// decimal point parses as written; otherwise the declared scale is an
// implied decimal point, so "12345" at scale 2 reads as 123.45.
func decodeDecimal(s string, scale int) (interface{}, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil, nil
	}
	if strings.Contains(v, ".") {
		return decimal.NewFromString(v)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, err
	}
	return decimal.New(n, int32(-scale)), nil
}

func decodeDate(s string) (interface{}, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil, nil
	}
	return dateparse.ParseAny(v)
}
