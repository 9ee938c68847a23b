/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ssargent/fixedwidth/pkg/config"
	"github.com/ssargent/fixedwidth/pkg/fwf"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen <file>",
	Short: "Generate a synthetic fixed-width fixture file",
	Long: `Generate a fixed-width file of synthetic records matching the
declared layout, useful as a test fixture for downstream pipelines.

Example:
  fwf gen -l medicare.yaml -n 100 fixture.dat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		layoutPath, _ := cmd.Flags().GetString("layout")
		count, _ := cmd.Flags().GetInt("records")

		data, err := generate(layoutPath, args[0], count)
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[0], data, 0600); err != nil {
			return fmt.Errorf("failed to write fixture: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d records to %s\n", count, args[0])
		return nil
	},
}

// generate renders count synthetic records for the layout document at
// layoutPath. The data file does not exist yet, so the runtime layout
// is built against an empty placeholder first.
func generate(layoutPath, dataPath string, count int) ([]byte, error) {
	if err := os.WriteFile(dataPath, nil, 0600); err != nil {
		return nil, fmt.Errorf("failed to create fixture: %w", err)
	}

	doc, err := config.LoadLayout(layoutPath)
	if err != nil {
		return nil, err
	}
	layout, err := doc.Build(dataPath, zerolog.Nop())
	if err != nil {
		return nil, err
	}

	var out []byte
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		values := make([]interface{}, len(layout.Columns))
		for j, c := range layout.Columns {
			values[j] = syntheticValue(c, i, base)
		}
		block, err := fwf.EncodeRecord(layout, values)
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
		out = append(out, '\n')
	}
	return out, nil
}

// syntheticValue produces a deterministic value that fits the column.
func syntheticValue(c fwf.Column, row int, base time.Time) interface{} {
	switch c.Kind {
	case fwf.Numeric:
		n := int64(row + 1)
		if c.Scale > 0 {
			return decimal.New(n, int32(-c.Scale))
		}
		return n
	case fwf.Date:
		return base.AddDate(0, 0, row)
	default:
		s := fmt.Sprintf("r%d", row+1)
		if len(s) > c.Length {
			s = s[:c.Length]
		}
		return strings.ToLower(s)
	}
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().IntP("records", "n", 10, "Number of records to generate")
}
