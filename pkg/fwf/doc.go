// Package fwf reads fixed-width flat files, the record format emitted
// by SAS and by many mainframe-era data providers. Every record in such
// a file occupies the same number of bytes, each field a fixed byte
// range within the record, optionally followed by zero to two CR/LF
// terminator bytes.
//
// Three types cooperate:
//
//   - Column describes one field's byte range, coercion kind (text,
//     numeric, date) and decimal scale.
//   - FileLayout is the ordered, validated collection of columns plus
//     file-level metadata (record length, declared row count and size).
//   - RecordReader owns the file handle and read buffer and produces a
//     lazy, forward-only sequence of decoded records.
//
// Layouts are declared by the caller, never inferred from the file; the
// column list typically comes from the transfer summary shipped with
// the data.
//
// # Reading
//
//	layout, err := fwf.NewLayout(fwf.LayoutConfig{
//	    Path:         "medicare.dat",
//	    RecordLength: 42,
//	    Columns:      cols,
//	})
//	if err != nil {
//	    return err
//	}
//	reader, err := fwf.NewRecordReader(fwf.ReaderConfig{Layout: layout})
//	if err != nil {
//	    return err
//	}
//	defer reader.Close()
//
//	for {
//	    rec, err := reader.Read()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // rec holds one value per column: int64, decimal.Decimal,
//	    // time.Time, string or nil.
//	}
//
// ReadMap yields the same records keyed by column name, and Records
// wraps the pull loop in a streaming iterator.
//
// # Terminator detection
//
// Producers vary between bare records, CR-terminated and
// CRLF-terminated files. The reader sniffs the terminator width once,
// from the bytes following the file's first record, and applies it for
// the rest of the file. Bytes consumed per logical record is therefore
// always record length plus detected width.
//
// # Failure policy
//
// Ingestion of a multi-million-row file must survive malformed records.
// Field decode failures are absorbed: the field falls back to its
// trimmed raw text, a counter increments and a warning is logged. A
// record with more than three failing fields is abandoned, counted in
// BadLines, reported through the OnParseError hook and skipped; the
// sequence continues with the next record. Only structural problems
// (missing file, invalid layout, I/O errors) propagate to the caller.
//
// Logging goes through the zerolog.Logger injected in ReaderConfig;
// the package keeps no global logging state.
package fwf
