/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ssargent/fixedwidth/pkg/fwf"
	"github.com/ssargent/fixedwidth/pkg/sink"
)

// headCmd represents the head command
var headCmd = &cobra.Command{
	Use:   "head <file>",
	Short: "Print the first records of a fixed-width file",
	Long: `Decode and print the first records of a fixed-width file as CSV.

Example:
  fwf head -l medicare.yaml -n 5 medicare.dat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		layout, err := buildLayout(cmd, args[0], logger)
		if err != nil {
			return err
		}

		reader, err := fwf.NewRecordReader(fwf.ReaderConfig{Layout: layout, Logger: logger})
		if err != nil {
			return err
		}
		defer reader.Close()

		count, _ := cmd.Flags().GetInt("records")
		w := sink.NewCSVWriter(cmd.OutOrStdout())
		if err := w.WriteHeader(layout.ColumnNames()); err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			rec, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			if err := w.WriteRow(rec); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(headCmd)
	headCmd.Flags().IntP("records", "n", 10, "Number of records to print")
}
