// Storage command reports database size against the configured quota.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Show storage usage and quota warnings",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		info, err := store.Storage()
		if err != nil {
			return fmt.Errorf("storage info: %w", err)
		}

		if flagJSON {
			return printJSON(info)
		}

		fmt.Printf("Used: %.2f MB of %.0f MB (%.1f%%)\n",
			float64(info.UsedBytes)/(1<<20), float64(info.QuotaBytes)/(1<<20), info.UsagePercentage)
		if msg := info.WarningMessage(); msg != "" {
			fmt.Println(msg)
		}
		return nil
	},
}
