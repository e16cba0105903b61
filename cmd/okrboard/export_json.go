// Export-json command writes the database in the textual interchange form.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportJSONOut string

var exportJSONCmd = &cobra.Command{
	Use:   "export-json",
	Short: "Export the database as a versioned JSON document",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		out := exportJSONOut
		if out == "" {
			out = fmt.Sprintf("okr-export-%s.json", timestamp())
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()

		if err := store.ExportJSON(f); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Println("Exported database to", out)
		return nil
	},
}

func init() {
	exportJSONCmd.Flags().StringVar(&exportJSONOut, "out", "", "output file (default: okr-export-<timestamp>.json)")
}
