package fwf

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// LayoutConfig holds the caller-supplied metadata for a FileLayout.
// Layouts are declared, never inferred: the column list typically comes
// from a file transfer summary shipped alongside the data file.
type LayoutConfig struct {
	Path         string         // physical path of the data file
	RecordLength int            // fixed byte length of every record
	Columns      []Column       // field specs, order defines output order
	ExpectedRows int64          // declared row count, 0 = unknown
	ExpectedSize int64          // declared file size in bytes, 0 = unknown
	Logger       zerolog.Logger // sink for validation warnings
}

// FileLayout is the validated physical description of one fixed-width
// file: an ordered set of column specs plus file-level metadata. It is
// read-only after construction and is shared, never mutated, between
// the caller and any readers bound to it.
type FileLayout struct {
	Path         string
	RecordLength int
	Columns      []Column
	ExpectedRows int64
	ExpectedSize int64
	ActualSize   int64

	logger zerolog.Logger
}

// NewLayout validates the declared layout and stats the data file.
//
// Bad declarations (duplicate names or ordinals, column ranges outside
// the record, non-positive record length) are fatal: they fail here,
// before any reading begins. A declared file size that disagrees with
// the on-disk size is only a logged warning; the file may still be
// readable.
func NewLayout(cfg LayoutConfig) (*FileLayout, error) {
	if cfg.RecordLength <= 0 {
		return nil, &InvalidSpecError{Field: "record_length", Reason: "must be positive"}
	}
	if len(cfg.Columns) == 0 {
		return nil, &InvalidSpecError{Field: "columns", Reason: "layout declares no columns"}
	}

	names := make(map[string]bool, len(cfg.Columns))
	ords := make(map[int]bool, len(cfg.Columns))
	for _, c := range cfg.Columns {
		if c.decode == nil {
			return nil, &InvalidSpecError{Field: c.Name, Reason: "column was not built with NewColumn"}
		}
		if names[c.Name] {
			return nil, &InvalidSpecError{Field: c.Name, Reason: "duplicate column name"}
		}
		if ords[c.Ord] {
			return nil, &InvalidSpecError{Field: c.Name, Reason: fmt.Sprintf("duplicate ordinal %d", c.Ord)}
		}
		if c.End() > cfg.RecordLength {
			return nil, &InvalidSpecError{
				Field:  c.Name,
				Reason: fmt.Sprintf("range [%d-%d) exceeds record length %d", c.Start, c.End(), cfg.RecordLength),
			}
		}
		names[c.Name] = true
		ords[c.Ord] = true
	}

	info, err := os.Stat(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat data file: %w", err)
	}

	l := &FileLayout{
		Path:         cfg.Path,
		RecordLength: cfg.RecordLength,
		Columns:      cfg.Columns,
		ExpectedRows: cfg.ExpectedRows,
		ExpectedSize: cfg.ExpectedSize,
		ActualSize:   info.Size(),
		logger:       cfg.Logger,
	}
	l.Validate()
	return l, nil
}

// Validate compares the on-disk file size against the declared size, if
// one was given. A mismatch is logged, not raised: transfer summaries
// are frequently sloppy about trailing terminators.
func (l *FileLayout) Validate() {
	if l.ExpectedSize != 0 && l.ExpectedSize != l.ActualSize {
		l.logger.Warn().
			Str("path", l.Path).
			Int64("expected", l.ExpectedSize).
			Int64("actual", l.ActualSize).
			Msg("file size mismatch")
	}
}

// ColumnNames returns the column headers in declaration order.
func (l *FileLayout) ColumnNames() []string {
	names := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		names[i] = c.Name
	}
	return names
}

// Map converts a positional record into its name-keyed form. Both
// output shapes are derived from the same decoded field list.
func (l *FileLayout) Map(rec Record) map[string]interface{} {
	if rec == nil {
		return nil
	}
	m := make(map[string]interface{}, len(l.Columns))
	for i, c := range l.Columns {
		m[c.Name] = rec[i]
	}
	return m
}
