// Export command writes the database as a binary snapshot file.
package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the database to a .db file",
	Long: `Export writes the full database as a binary SQLite file. The file can
be re-imported with "okrboard import", also on another machine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		out := exportOut
		if out == "" {
			// Short unique suffix keeps repeated exports within the
			// same second from colliding.
			out = fmt.Sprintf("okr-export-%s-%s.db", timestamp(), uuid.NewString()[:8])
		}

		if err := store.ExportToFile(out); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Println("Exported database to", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: okr-export-<timestamp>-<id>.db)")
}
