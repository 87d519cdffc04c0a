package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsonmend/jsonmend/pkg/jsonmend"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file...>",
	Short: "Repair malformed JSON files",
	Long:  "Run the repair passes over each file, print the applied fixes, and optionally persist the repaired text.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().BoolP("write", "w", false, "write the repaired text back to the file")
	fixCmd.Flags().StringP("out", "o", "", "write the repaired text to this path (single input only)")
	fixCmd.Flags().Bool("json", false, "print outcomes as JSON, one document per file")
	rootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	applyColorFlag(cmd)

	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	if outPath != "" && len(args) > 1 {
		return fmt.Errorf("--out accepts a single input file, got %d", len(args))
	}
	if outPath != "" && write {
		return fmt.Errorf("--out and --write are mutually exclusive")
	}

	var results []fileResult
	failed := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("fix: %w", err)
		}
		out := jsonmend.Remediate(string(data))
		if asJSON {
			results = append(results, fileResult{Path: path, Outcome: out})
		} else {
			renderOutcome(cmd.OutOrStdout(), path, out)
		}
		if !out.Succeeded {
			failed++
			continue
		}
		target := ""
		if write {
			target = path
		} else if outPath != "" {
			target = outPath
		}
		if target != "" {
			if err := os.WriteFile(target, []byte(out.RepairedText), 0o644); err != nil {
				return fmt.Errorf("fix: %w", err)
			}
		}
	}
	if asJSON {
		if err := renderJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be repaired", failed, len(args))
	}
	return nil
}
