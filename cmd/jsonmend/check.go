package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsonmend/jsonmend/pkg/jsonmend"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file...>",
	Short: "Repair and validate package manifests",
	Long:  "Like fix, but each file is treated as a package.json manifest: after repair, required fields and version format are checked and reported.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolP("write", "w", false, "write the repaired text back to the file")
	checkCmd.Flags().Bool("json", false, "print outcomes as JSON, one document per file")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	applyColorFlag(cmd)

	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	var results []fileResult
	flagged := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
		out := jsonmend.RemediateManifest(string(data))
		if asJSON {
			results = append(results, fileResult{Path: path, Outcome: out})
		} else {
			renderOutcome(cmd.OutOrStdout(), path, out)
		}
		if !out.Succeeded || len(out.UnfixableReasons) > 0 {
			flagged++
			continue
		}
		if write {
			if err := os.WriteFile(path, []byte(out.RepairedText), 0o644); err != nil {
				return fmt.Errorf("check: %w", err)
			}
		}
	}
	if asJSON {
		if err := renderJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	}
	if flagged > 0 {
		return fmt.Errorf("%d of %d manifests have problems", flagged, len(args))
	}
	return nil
}
