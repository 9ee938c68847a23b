package fwf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultChunkSize is the number of records fetched per physical read
// when the reader config does not specify one.
const DefaultChunkSize = 1000

// maxFieldFailures is the number of field decode failures tolerated
// within a single record before the record is abandoned.
const maxFieldFailures = 3

// Record holds one decoded row, one value per column in layout order.
// Values are int64, decimal.Decimal, time.Time, string or nil.
type Record []interface{}

// ReaderConfig holds configuration for a RecordReader.
type ReaderConfig struct {
	// Layout describes the file being read. Required.
	Layout *FileLayout
	// ChunkSize is the number of records fetched per physical read.
	// Defaults to DefaultChunkSize.
	ChunkSize int
	// Logger receives per-field and per-record decode warnings.
	// Defaults to a no-op logger; there is no global logging state.
	Logger zerolog.Logger
	// OnParseError, if set, is invoked once for every abandoned record
	// with its one-based line number.
	OnParseError func(line int, err error)
}

// RecordReader decodes a fixed-width file into typed records.
//
// The reader owns its file handle and read buffer exclusively for its
// lifetime and produces a lazy, forward-only, single-pass sequence:
// re-reading a file means constructing a fresh reader. It is not safe
// for concurrent use; concurrent reads of one file should use
// independent readers, which share no mutable state.
//
// Exhaustion is signalled by io.EOF from Read, not by an error
// condition: a file ending is the normal outcome.
type RecordReader struct {
	layout       *FileLayout
	chunkSize    int
	logger       zerolog.Logger
	onParseError func(line int, err error)

	file     *os.File
	buf      []byte
	pos      int
	eolWidth int // trailing CR/LF bytes per record, -1 until sniffed
	line     int
	closed   bool

	goodLines int64
	badLines  int64
}

// NewRecordReader creates a reader bound to one layout. The file is not
// opened until Open or the first Read.
func NewRecordReader(cfg ReaderConfig) (*RecordReader, error) {
	if cfg.Layout == nil {
		return nil, &InvalidSpecError{Field: "layout", Reason: "reader requires a layout"}
	}
	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &RecordReader{
		layout:       cfg.Layout,
		chunkSize:    chunkSize,
		logger:       cfg.Logger,
		onParseError: cfg.OnParseError,
		eolWidth:     -1,
	}, nil
}

// Open acquires the file handle and, on first use, sniffs the record
// terminator width. Open on an already-open reader is a no-op; Open
// after Close is an error, the reader is single-pass.
func (r *RecordReader) Open() error {
	if r.closed {
		return ErrClosed
	}
	if r.file != nil {
		return nil
	}
	if r.eolWidth < 0 {
		w, err := sniffTerminator(r.layout.Path, r.layout.RecordLength)
		if err != nil {
			return err
		}
		r.eolWidth = w
	}
	file, err := os.Open(r.layout.Path)
	if err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}
	r.file = file
	return nil
}

// sniffTerminator reads one record-length block from the start of the
// file, then counts the contiguous CR/LF bytes that follow it. Fixed
// width producers vary between bare, CR-terminated and CRLF-terminated
// records; detecting the width once avoids a configuration knob. The
// detected width holds for every record in the file.
func sniffTerminator(path string, recordLength int) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open data file: %w", err)
	}
	defer file.Close()

	block := make([]byte, recordLength)
	if _, err := io.ReadFull(file, block); err != nil {
		// Shorter than one record: nothing to terminate.
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, nil
		}
		return 0, err
	}

	width := 0
	one := make([]byte, 1)
	for {
		n, err := file.Read(one)
		if n == 0 || err != nil {
			break
		}
		if one[0] != '\n' && one[0] != '\r' {
			break
		}
		width++
	}
	return width, nil
}

// Close releases the file handle and marks the reader exhausted. Close
// is idempotent and terminal: a closed reader cannot be reopened.
func (r *RecordReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.buf = nil
	if r.file != nil {
		file := r.file
		r.file = nil
		return file.Close()
	}
	return nil
}

// TerminatorWidth returns the sniffed CR/LF width, or -1 before the
// reader has been opened. Total bytes consumed per logical record is
// the layout's record length plus this width.
func (r *RecordReader) TerminatorWidth() int {
	return r.eolWidth
}

// GoodLines returns the number of records decoded successfully.
func (r *RecordReader) GoodLines() int64 {
	return r.goodLines
}

// BadLines returns the number of records abandoned during decoding.
func (r *RecordReader) BadLines() int64 {
	return r.badLines
}

// Read pulls the next record, opening the reader on first use.
//
// Abandoned records (see ParseError) are not returned: they are
// counted, logged, reported through the OnParseError hook and skipped,
// so one malformed record never stops ingestion of a large file. Read
// returns io.EOF once the file holds no further complete record; a
// partial trailing record is never emitted.
func (r *RecordReader) Read() (Record, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if err := r.Open(); err != nil {
		return nil, err
	}
	for {
		if r.pos+r.layout.RecordLength > len(r.buf) {
			if err := r.refill(); err != nil {
				return nil, err
			}
		}
		r.line++
		rec, err := r.readRecord()
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				r.badLines++
				r.logger.Warn().
					Int("line", perr.Line).
					Int("pos", perr.Pos).
					Msg("record abandoned")
				if r.onParseError != nil {
					r.onParseError(perr.Line, err)
				}
				continue
			}
			return nil, err
		}
		r.goodLines++
		return rec, nil
	}
}

// ReadMap pulls the next record in name-keyed form. Read and ReadMap
// draw from the same sequence and may be mixed.
func (r *RecordReader) ReadMap() (map[string]interface{}, error) {
	rec, err := r.Read()
	if err != nil {
		return nil, err
	}
	return r.layout.Map(rec), nil
}

// refill replaces the consumed buffer with the next chunk of raw bytes,
// carrying over any unconsumed tail. Reading many records per physical
// read amortizes system-call overhead on multi-million-row files.
//
// io.EOF from refill is the end-of-sequence signal: the file holds
// fewer than one complete record beyond what was already consumed.
func (r *RecordReader) refill() error {
	stride := r.layout.RecordLength + r.eolWidth
	tail := r.buf[r.pos:]

	chunk := make([]byte, stride*r.chunkSize)
	n, err := io.ReadFull(r.file, chunk)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return err
	}
	if len(tail)+n < r.layout.RecordLength {
		return io.EOF
	}

	buf := make([]byte, 0, len(tail)+n)
	buf = append(buf, tail...)
	buf = append(buf, chunk[:n]...)
	r.buf = buf
	r.pos = 0
	return nil
}

// readRecord slices and decodes the record at the current cursor.
//
// The cursor advances past the fixed-length block and then past any
// immediately following CR/LF bytes rather than exactly eolWidth bytes;
// the terminator occasionally varies at true EOF.
func (r *RecordReader) readRecord() (Record, error) {
	rlen := r.layout.RecordLength
	block := r.buf[r.pos : r.pos+rlen]

	i := r.pos + rlen
	for i < len(r.buf) && (r.buf[i] == '\n' || r.buf[i] == '\r') {
		i++
	}
	r.pos = i

	record := make(Record, 0, len(r.layout.Columns))
	failures := 0
	firstBad := -1
	for _, c := range r.layout.Columns {
		raw := string(block[c.Start:c.End()])
		v, err := c.decode(raw)
		if err != nil {
			r.logger.Warn().
				Int("line", r.line).
				Str("column", c.Name).
				Int("ord", c.Ord).
				Err(err).
				Msg("field decode failed")
			v = strings.TrimSpace(raw)
			failures++
			if firstBad < 0 {
				firstBad = c.Start
			}
			if failures > maxFieldFailures {
				return nil, &ParseError{Line: r.line, Pos: firstBad}
			}
		}
		record = append(record, v)
	}
	return record, nil
}

// RecordIterator provides streaming access to decoded records.
type RecordIterator interface {
	Next() bool
	Record() Record
	Err() error
	Close() error
}

// Records returns a streaming iterator over the reader's sequence.
func (r *RecordReader) Records() RecordIterator {
	return &recordIterator{reader: r}
}

// recordIterator implements RecordIterator over one RecordReader.
type recordIterator struct {
	reader *RecordReader
	record Record
	err    error
}

func (it *recordIterator) Next() bool {
	it.record, it.err = it.reader.Read()
	return it.err == nil
}

func (it *recordIterator) Record() Record {
	return it.record
}

// Err returns the error that stopped iteration, if any. Normal
// exhaustion is not an error.
func (it *recordIterator) Err() error {
	if it.err == io.EOF {
		return nil
	}
	return it.err
}

func (it *recordIterator) Close() error {
	// Don't close the underlying reader as it's owned by the caller
	return nil
}
