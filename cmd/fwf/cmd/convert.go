/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/fixedwidth/pkg/fwf"
	"github.com/ssargent/fixedwidth/pkg/sink"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a fixed-width file to CSV",
	Long: `Convert a fixed-width file to CSV using the declared layout.

Malformed records are counted and skipped, not fatal; the run report
carries the good/bad line counters.

Example:
  fwf convert -l medicare.yaml -o out.csv medicare.dat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd).With().
			Str("run_id", ksuid.New().String()).
			Logger()

		layout, err := buildLayout(cmd, args[0], logger)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		report, err := convert(layout, sink.NewCSVWriter(out), logger)
		if err != nil {
			return err
		}

		logger.Info().
			Int64("good_lines", report.GoodLines).
			Int64("bad_lines", report.BadLines).
			Msg("conversion complete")
		fmt.Fprintf(cmd.ErrOrStderr(), "Converted %d records (%d bad)\n",
			report.GoodLines, report.BadLines)
		return nil
	},
}

// ConvertReport summarizes one conversion run.
type ConvertReport struct {
	GoodLines int64
	BadLines  int64
}

// convert streams every record of the layout's file into the writer.
func convert(layout *fwf.FileLayout, w sink.TabularWriter, logger zerolog.Logger) (ConvertReport, error) {
	reader, err := fwf.NewRecordReader(fwf.ReaderConfig{
		Layout: layout,
		Logger: logger,
	})
	if err != nil {
		return ConvertReport{}, err
	}
	defer reader.Close()

	if err := w.WriteHeader(layout.ColumnNames()); err != nil {
		return ConvertReport{}, err
	}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ConvertReport{}, err
		}
		if err := w.WriteRow(rec); err != nil {
			return ConvertReport{}, err
		}
	}
	if err := w.Flush(); err != nil {
		return ConvertReport{}, err
	}
	return ConvertReport{
		GoodLines: reader.GoodLines(),
		BadLines:  reader.BadLines(),
	}, nil
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("output", "o", "", "Output CSV path (default stdout)")
}
