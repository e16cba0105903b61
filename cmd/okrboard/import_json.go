// Import-json command loads an interchange document into an empty database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pulsework/okrboard/internal/sqlite"
)

var importJSONCmd = &cobra.Command{
	Use:   "import-json <file>",
	Short: "Import a versioned JSON export into an empty database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer f.Close()

		return withStore(func(store *sqlite.Store) error {
			if err := store.ImportJSON(f); err != nil {
				return fmt.Errorf("import: %w", err)
			}
			fmt.Println("Imported data from", args[0])
			return nil
		})
	},
}
