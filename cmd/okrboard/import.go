// Import command restores the database from a binary snapshot file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulsework/okrboard/internal/sqlite"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a database from a .db file",
	Long: `Import replaces the current database with the given file. The file is
validated first: it must be a SQLite database containing the objectives,
key_results, and monthly_data tables. On any failure the current database
is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sqlite.ImportFile(args[0], appConfig)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		defer store.Close()

		if err := store.Snapshot(); err != nil {
			return fmt.Errorf("snapshot imported database: %w", err)
		}
		fmt.Println("Imported database from", args[0])
		return nil
	},
}
