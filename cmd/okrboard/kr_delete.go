// Key result delete command.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pulsework/okrboard/internal/sqlite"
)

var krDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a key result and its monthly data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid key result id %q", args[0])
		}

		return withStore(func(store *sqlite.Store) error {
			if err := store.DeleteKeyResult(id); err != nil {
				return fmt.Errorf("delete key result %d: %w", id, err)
			}
			fmt.Printf("Deleted key result %d\n", id)
			return nil
		})
	},
}
