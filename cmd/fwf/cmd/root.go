/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ssargent/fixedwidth/pkg/config"
	"github.com/ssargent/fixedwidth/pkg/fwf"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fwf",
	Short: "fwf - fixed-width flat-file toolkit",
	Long: `fwf reads fixed-width flat files (SAS and mainframe-era data
exports) against a declared YAML layout: inspect a file, preview
records, convert to CSV, or generate fixtures.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("layout", "l", "layout.yaml", "Path to the layout YAML document")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}

// newLogger builds the console logger shared by all subcommands.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().Timestamp().Logger()
}

// buildLayout loads the layout document named by the --layout flag and
// validates it against the data file.
func buildLayout(cmd *cobra.Command, dataPath string, logger zerolog.Logger) (*fwf.FileLayout, error) {
	layoutPath, _ := cmd.Flags().GetString("layout")
	doc, err := config.LoadLayout(layoutPath)
	if err != nil {
		return nil, err
	}
	layout, err := doc.Build(dataPath, logger)
	if err != nil {
		return nil, fmt.Errorf("invalid layout %s: %w", layoutPath, err)
	}
	return layout, nil
}
