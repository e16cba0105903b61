// Objective delete command removes an objective and, through the cascade
// rules, all its key results, monthly data, and comments.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pulsework/okrboard/internal/sqlite"
)

var objectiveDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an objective and everything it owns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid objective id %q", args[0])
		}

		return withStore(func(store *sqlite.Store) error {
			if err := store.DeleteObjective(id); err != nil {
				return fmt.Errorf("delete objective %d: %w", id, err)
			}
			fmt.Printf("Deleted objective %d\n", id)
			return nil
		})
	},
}
