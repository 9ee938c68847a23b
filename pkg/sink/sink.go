// Package sink holds the output-side collaborators of the fixed-width
// reader: tabular writers that serialize decoded records, and the
// source boundary for upstream file providers.
package sink

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ssargent/fixedwidth/pkg/fwf"
)

// TabularWriter serializes decoded records into a tabular format.
type TabularWriter interface {
	WriteHeader(names []string) error
	WriteRow(rec fwf.Record) error
	Flush() error
}

// Source produces a local file path for a data file. Upstream
// providers (HTTP downloads, archive extraction) implement this
// boundary; the reader only ever sees a path.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// LocalSource is a Source for a file already on disk.
type LocalSource string

// Fetch verifies the file exists and returns its path.
func (s LocalSource) Fetch(_ context.Context) (string, error) {
	if _, err := os.Stat(string(s)); err != nil {
		return "", fmt.Errorf("local source unavailable: %w", err)
	}
	return string(s), nil
}

// FormatValue renders one decoded value as cell text: nil as the empty
// string, dates as ISO days, decimals and integers as written.
func FormatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case decimal.Decimal:
		return x.String()
	case time.Time:
		return x.Format("2006-01-02")
	default:
		return fmt.Sprint(x)
	}
}
