package fwf

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout_Validation(t *testing.T) {
	path := writeDataFile(t, []byte("  111aaaa\n"))

	col := func(ord int, name string, start, length int) Column {
		return mustColumn(t, ord, name, Text, start, length, 0)
	}

	testCases := []struct {
		name         string
		recordLength int
		columns      []Column
		wantErr      bool
	}{
		{
			name:         "valid",
			recordLength: 9,
			columns:      []Column{col(0, "n", 0, 5), col(1, "s", 5, 4)},
		},
		{
			name:         "overlapping ranges are allowed",
			recordLength: 9,
			columns:      []Column{col(0, "n", 0, 5), col(1, "s", 3, 4)},
		},
		{
			name:         "zero record length",
			recordLength: 0,
			columns:      []Column{col(0, "n", 0, 5)},
			wantErr:      true,
		},
		{
			name:         "no columns",
			recordLength: 9,
			wantErr:      true,
		},
		{
			name:         "duplicate name",
			recordLength: 9,
			columns:      []Column{col(0, "n", 0, 5), col(1, "n", 5, 4)},
			wantErr:      true,
		},
		{
			name:         "duplicate ordinal",
			recordLength: 9,
			columns:      []Column{col(0, "n", 0, 5), col(0, "s", 5, 4)},
			wantErr:      true,
		},
		{
			name:         "range exceeds record length",
			recordLength: 9,
			columns:      []Column{col(0, "n", 5, 5)},
			wantErr:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLayout(LayoutConfig{
				Path:         path,
				RecordLength: tc.recordLength,
				Columns:      tc.columns,
			})
			if tc.wantErr {
				var serr *InvalidSpecError
				assert.ErrorAs(t, err, &serr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewLayout_MissingFile(t *testing.T) {
	_, err := NewLayout(LayoutConfig{
		Path:         "/non/existent/data.dat",
		RecordLength: 9,
		Columns:      []Column{mustColumn(t, 0, "n", Text, 0, 5, 0)},
	})
	assert.Error(t, err)
}

func TestNewLayout_SizeMismatchWarns(t *testing.T) {
	path := writeDataFile(t, []byte("  111aaaa\n"))

	var logBuf bytes.Buffer
	layout, err := NewLayout(LayoutConfig{
		Path:         path,
		RecordLength: 9,
		Columns:      []Column{mustColumn(t, 0, "n", Text, 0, 5, 0)},
		ExpectedSize: 9999,
		Logger:       zerolog.New(&logBuf),
	})

	// A size mismatch warns, it does not reject: the file may still be
	// readable.
	require.NoError(t, err)
	assert.Equal(t, int64(10), layout.ActualSize)
	assert.Contains(t, logBuf.String(), "file size mismatch")
	assert.Contains(t, logBuf.String(), `"expected":9999`)
}

func TestNewLayout_MatchingSizeIsQuiet(t *testing.T) {
	path := writeDataFile(t, []byte("  111aaaa\n"))

	var logBuf bytes.Buffer
	_, err := NewLayout(LayoutConfig{
		Path:         path,
		RecordLength: 9,
		Columns:      []Column{mustColumn(t, 0, "n", Text, 0, 5, 0)},
		ExpectedSize: 10,
		Logger:       zerolog.New(&logBuf),
	})
	require.NoError(t, err)
	assert.Empty(t, logBuf.String())
}

func TestFileLayout_ColumnNames(t *testing.T) {
	path := writeDataFile(t, []byte("  111aaaa\n"))
	layout := mustLayout(t, path, 9, []Column{
		mustColumn(t, 0, "n", Numeric, 0, 5, 0),
		mustColumn(t, 1, "s", Text, 5, 4, 0),
	})

	assert.Equal(t, []string{"n", "s"}, layout.ColumnNames())
}

func TestFileLayout_Map(t *testing.T) {
	path := writeDataFile(t, []byte("  111aaaa\n"))
	layout := mustLayout(t, path, 9, []Column{
		mustColumn(t, 0, "n", Numeric, 0, 5, 0),
		mustColumn(t, 1, "s", Text, 5, 4, 0),
	})

	m := layout.Map(Record{int64(111), "aaaa"})
	assert.Equal(t, map[string]interface{}{"n": int64(111), "s": "aaaa"}, m)
	assert.Nil(t, layout.Map(nil))
}
