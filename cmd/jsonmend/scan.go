package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsonmend/jsonmend/pkg/iocscan"
	"github.com/jsonmend/jsonmend/pkg/jsonmend"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] <file...>",
	Short: "Scan manifests for indicators of compromise",
	Long:  "Repair each manifest, then scan every string in it for URLs on a blocklist and for base64 blobs decoding to such URLs.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringP("blocklist", "b", "", "path to a YAML blocklist with domains and urls lists (required)")
	_ = scanCmd.MarkFlagRequired("blocklist")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	applyColorFlag(cmd)

	blocklistPath, err := cmd.Flags().GetString("blocklist")
	if err != nil {
		return err
	}
	blocklist, err := iocscan.Load(blocklistPath)
	if err != nil {
		return err
	}

	flagged := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		out := jsonmend.Remediate(string(data))
		if !out.Succeeded {
			failColor.Fprintf(cmd.OutOrStdout(), "%s: unreadable, skipping scan\n", path)
			for _, reason := range out.UnfixableReasons {
				failColor.Fprintf(cmd.OutOrStdout(), "  %s\n", reason)
			}
			flagged++
			continue
		}
		var value any
		if err := json.Unmarshal([]byte(out.RepairedText), &value); err != nil {
			return fmt.Errorf("scan %s: %w", path, err)
		}
		findings := blocklist.Scan(value)
		if len(findings) == 0 {
			okColor.Fprintf(cmd.OutOrStdout(), "%s: clean\n", path)
			continue
		}
		flagged++
		failColor.Fprintf(cmd.OutOrStdout(), "%s: %d finding(s)\n", path, len(findings))
		for _, f := range findings {
			failColor.Fprintf(cmd.OutOrStdout(), "  %s: %s (%s)\n", f.Path, f.Value, f.Reason)
		}
	}
	if flagged > 0 {
		return fmt.Errorf("%d of %d files flagged", flagged, len(args))
	}
	return nil
}
