package fwf

import "fmt"

// Errors
var (
	ErrClosed = &ReaderError{"reader is closed"}
)

// ReaderError represents a reader lifecycle error
type ReaderError struct {
	Message string
}

func (e *ReaderError) Error() string {
	return e.Message
}

// InvalidSpecError reports a layout or column declaration that cannot
// describe a readable file. Construction fails fast: a bad layout is
// never allowed to reach the decode path.
type InvalidSpecError struct {
	Field  string // name of the offending column or layout field
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid layout spec: %s: %s", e.Field, e.Reason)
}

// ParseError reports a record that accumulated too many field decode
// failures and was abandoned. It carries the one-based record number
// and the byte offset within the record of the first failing column.
//
// ParseError is absorbed by the read loop: the record is counted as bad,
// logged and skipped. It only reaches callers through the OnParseError
// hook.
type ParseError struct {
	Line int
	Pos  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record %d: too many field decode failures (first bad column at byte %d)", e.Line, e.Pos)
}
