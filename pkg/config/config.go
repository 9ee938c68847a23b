/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/fixedwidth/pkg/fwf"
)

// Layout is the on-disk YAML declaration of a fixed-width file layout.
// Column order in the document defines output column order; ordinals
// are assigned from it.
type Layout struct {
	RecordLength int      `yaml:"record_length"`
	ExpectedRows int64    `yaml:"expected_rows,omitempty"`
	ExpectedSize int64    `yaml:"expected_size,omitempty"`
	Columns      []Column `yaml:"columns"`
}

// Column is one column declaration within a layout document.
type Column struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"` // NUM, CHAR or DATE
	Start  int    `yaml:"start"`
	Length int    `yaml:"length"`
	Scale  int    `yaml:"scale,omitempty"`
}

// DefaultLayout returns a starter layout document for scaffolding.
func DefaultLayout() *Layout {
	return &Layout{
		RecordLength: 25,
		Columns: []Column{
			{Name: "id", Type: "NUM", Start: 0, Length: 5},
			{Name: "admitted", Type: "DATE", Start: 5, Length: 10},
			{Name: "name", Type: "CHAR", Start: 15, Length: 10},
		},
	}
}

// LoadLayout loads a layout document from the specified path.
func LoadLayout(layoutPath string) (*Layout, error) {
	if _, err := os.Stat(layoutPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("layout file does not exist: %s", layoutPath)
	}

	// Validate path to prevent directory traversal
	if !filepath.IsAbs(layoutPath) {
		absPath, err := filepath.Abs(layoutPath)
		if err != nil {
			return nil, fmt.Errorf("invalid layout path: %w", err)
		}
		layoutPath = absPath
	}

	data, err := os.ReadFile(layoutPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}

	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout file: %w", err)
	}

	return &layout, nil
}

// SaveLayout saves a layout document to the specified path.
func SaveLayout(layout *Layout, layoutPath string) error {
	layoutDir := filepath.Dir(layoutPath)
	if err := os.MkdirAll(layoutDir, 0750); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}

	data, err := yaml.Marshal(layout)
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	if err := os.WriteFile(layoutPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}

	return nil
}

// LayoutExists checks if a layout document exists.
func LayoutExists(layoutPath string) bool {
	_, err := os.Stat(layoutPath)
	return !os.IsNotExist(err)
}

// Build validates the document against a data file and produces the
// runtime layout the reader consumes. Bad declarations fail here,
// before any reading begins.
func (l *Layout) Build(dataPath string, logger zerolog.Logger) (*fwf.FileLayout, error) {
	columns := make([]fwf.Column, 0, len(l.Columns))
	for i, c := range l.Columns {
		kind, err := fwf.ParseKind(c.Type)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.Name, err)
		}
		col, err := fwf.NewColumn(i, c.Name, kind, c.Start, c.Length, c.Scale)
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	return fwf.NewLayout(fwf.LayoutConfig{
		Path:         dataPath,
		RecordLength: l.RecordLength,
		Columns:      columns,
		ExpectedRows: l.ExpectedRows,
		ExpectedSize: l.ExpectedSize,
		Logger:       logger,
	})
}
