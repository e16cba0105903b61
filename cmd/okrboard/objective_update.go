// Objective update command mutates title, description, and driver.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pulsework/okrboard/internal/sqlite"
	"github.com/pulsework/okrboard/pkg/types"
)

var (
	objUpdateTitle       string
	objUpdateDescription string
	objUpdateDriver      string
)

var objectiveUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an objective",
	Args:  cobra.ExactArgs(1),
	RunE:  runObjectiveUpdate,
}

func init() {
	objectiveUpdateCmd.Flags().StringVar(&objUpdateTitle, "title", "", "objective title (required)")
	objectiveUpdateCmd.Flags().StringVar(&objUpdateDescription, "description", "", "objective description")
	objectiveUpdateCmd.Flags().StringVar(&objUpdateDriver, "driver", "", "accountable driver (required)")
	_ = objectiveUpdateCmd.MarkFlagRequired("title")
	_ = objectiveUpdateCmd.MarkFlagRequired("driver")
}

func runObjectiveUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid objective id %q", args[0])
	}

	return withStore(func(store *sqlite.Store) error {
		err := store.UpdateObjective(id, types.ObjectiveInput{
			Title:       objUpdateTitle,
			Description: objUpdateDescription,
			Driver:      objUpdateDriver,
		})
		if err != nil {
			return fmt.Errorf("update objective %d: %w", id, err)
		}
		fmt.Printf("Updated objective %d\n", id)
		return nil
	})
}
