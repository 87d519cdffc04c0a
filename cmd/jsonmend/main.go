package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "jsonmend",
	Short:        "Repair corrupted JSON and package manifests",
	Long:         "jsonmend repairs syntactically invalid JSON files with heuristic passes and reports every fix it applies.",
	SilenceUsage: true,
	Version:      version,
}

const version = "0.1.0"

func init() {
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyColorFlag honors --no-color for every subcommand.
func applyColorFlag(cmd *cobra.Command) {
	noColor, err := cmd.Root().PersistentFlags().GetBool("no-color")
	if err == nil && noColor {
		color.NoColor = true
	}
}
