// Copy-targets command copies target values across months in bulk.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulsework/okrboard/internal/sqlite"
)

var (
	copySource string
	copyTo     []string
)

var copyTargetsCmd = &cobra.Command{
	Use:   "copy-targets",
	Short: "Copy target values from one month to others",
	Long: `Copy-targets copies every key result's target value from the source
month into each named target month. Key results without source-month data
are reported and skipped; the rest of the batch proceeds.

Example:
  okrboard copy-targets --from 2025-11 --to 2025-12 --to 2026-01`,
	RunE: runCopyTargets,
}

func init() {
	copyTargetsCmd.Flags().StringVar(&copySource, "from", "", "source month (YYYY-MM, required)")
	copyTargetsCmd.Flags().StringArrayVar(&copyTo, "to", nil, "target month (repeatable, required)")
	_ = copyTargetsCmd.MarkFlagRequired("from")
	_ = copyTargetsCmd.MarkFlagRequired("to")
}

func runCopyTargets(cmd *cobra.Command, args []string) error {
	return withStore(func(store *sqlite.Store) error {
		result, err := store.CopyTargets(copySource, copyTo)
		if err != nil {
			return fmt.Errorf("copy targets: %w", err)
		}

		if flagJSON {
			return printJSON(result)
		}
		fmt.Printf("Updated %d monthly targets\n", result.Updated)
		for _, msg := range result.Errors {
			fmt.Println("  skipped:", msg)
		}
		return nil
	})
}
