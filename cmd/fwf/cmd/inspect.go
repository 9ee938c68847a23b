/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ssargent/fixedwidth/pkg/fwf"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Validate a layout against a fixed-width file",
	Long: `Validate the declared layout against a fixed-width file and
print the physical summary: per-column byte ranges, the detected
record terminator, and the record count implied by the file size.

Example:
  fwf inspect -l medicare.yaml medicare.dat`,
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
		if err := reader.Open(); err != nil {
			return err
		}

		stride := int64(layout.RecordLength + reader.TerminatorWidth())
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "File:             %s\n", layout.Path)
		fmt.Fprintf(out, "Size:             %d bytes\n", layout.ActualSize)
		fmt.Fprintf(out, "Record length:    %d bytes\n", layout.RecordLength)
		fmt.Fprintf(out, "Terminator width: %d bytes\n", reader.TerminatorWidth())
		fmt.Fprintf(out, "Records (size/stride): %d\n", layout.ActualSize/stride)
		if layout.ExpectedRows != 0 {
			fmt.Fprintf(out, "Records (declared):    %d\n", layout.ExpectedRows)
		}
		if layout.ExpectedSize != 0 && layout.ExpectedSize != layout.ActualSize {
			fmt.Fprintf(out, "WARNING: declared size %d disagrees with actual %d\n",
				layout.ExpectedSize, layout.ActualSize)
		}

		fmt.Fprintln(out)
		tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ORD\tNAME\tTYPE\tRANGE\tSCALE")
		for _, c := range layout.Columns {
			fmt.Fprintf(tw, "%d\t%s\t%s\t[%d-%d)\t%d\n",
				c.Ord, c.Name, c.Kind, c.Start, c.End(), c.Scale)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
