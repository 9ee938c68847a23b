package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/fixedwidth/pkg/fwf"
)

const layoutDoc = `record_length: 16
expected_rows: 100
expected_size: 1700
columns:
  - name: id
    type: NUM
    start: 0
    length: 5
  - name: amount
    type: NUM
    start: 5
    length: 8
    scale: 2
  - name: flag
    type: CHAR
    start: 13
    length: 3
`

func TestLoadLayout(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	layoutPath := filepath.Join(tmpDir, "layout.yaml")
	require.NoError(t, os.WriteFile(layoutPath, []byte(layoutDoc), 0600))

	layout, err := LoadLayout(layoutPath)
	require.NoError(t, err)

	assert.Equal(t, 16, layout.RecordLength)
	assert.Equal(t, int64(100), layout.ExpectedRows)
	assert.Equal(t, int64(1700), layout.ExpectedSize)
	require.Len(t, layout.Columns, 3)
	assert.Equal(t, Column{Name: "amount", Type: "NUM", Start: 5, Length: 8, Scale: 2}, layout.Columns[1])
}

func TestLoadLayout_NonExistentFile(t *testing.T) {
	_, err := LoadLayout("/non/existent/layout.yaml")
	assert.Error(t, err)
}

func TestLoadLayout_MalformedDocument(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	layoutPath := filepath.Join(tmpDir, "layout.yaml")
	require.NoError(t, os.WriteFile(layoutPath, []byte("record_length: [not a number"), 0600))

	_, err = LoadLayout(layoutPath)
	assert.Error(t, err)
}

func TestSaveLayout_RoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	layoutPath := filepath.Join(tmpDir, "nested", "layout.yaml")
	want := DefaultLayout()
	require.NoError(t, SaveLayout(want, layoutPath))
	assert.True(t, LayoutExists(layoutPath))

	got, err := LoadLayout(layoutPath)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLayout_Build(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	dataPath := filepath.Join(tmpDir, "data.dat")
	require.NoError(t, os.WriteFile(dataPath, []byte("  123  123456ok \n"), 0600))

	layoutPath := filepath.Join(tmpDir, "layout.yaml")
	require.NoError(t, os.WriteFile(layoutPath, []byte(layoutDoc), 0600))

	doc, err := LoadLayout(layoutPath)
	require.NoError(t, err)

	layout, err := doc.Build(dataPath, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, dataPath, layout.Path)
	assert.Equal(t, []string{"id", "amount", "flag"}, layout.ColumnNames())
	assert.Equal(t, fwf.Numeric, layout.Columns[0].Kind)
	assert.Equal(t, 2, layout.Columns[1].Scale)
	assert.Equal(t, fwf.Text, layout.Columns[2].Kind)
	assert.Equal(t, int64(100), layout.ExpectedRows)
}

func TestLayout_Build_UnknownType(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	dataPath := filepath.Join(tmpDir, "data.dat")
	require.NoError(t, os.WriteFile(dataPath, []byte("xxxxx"), 0600))

	doc := &Layout{
		RecordLength: 5,
		Columns:      []Column{{Name: "blob", Type: "BLOB", Start: 0, Length: 5}},
	}

	_, err = doc.Build(dataPath, zerolog.Nop())
	assert.Error(t, err)
}
