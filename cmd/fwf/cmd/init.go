/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/fixedwidth/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter layout document",
	Long: `Write a starter layout YAML document to the --layout path, to be
edited to match the transfer summary of the actual file.

Example:
  fwf init -l medicare.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		layoutPath, _ := cmd.Flags().GetString("layout")
		force, _ := cmd.Flags().GetBool("force")

		if config.LayoutExists(layoutPath) && !force {
			return fmt.Errorf("layout already exists at %s (use --force to overwrite)", layoutPath)
		}
		if err := config.SaveLayout(config.DefaultLayout(), layoutPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote starter layout to %s\n", layoutPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing layout document")
}
