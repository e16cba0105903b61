// Objective add command creates a new objective and provisions its monthly
// comment slots.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulsework/okrboard/internal/sqlite"
	"github.com/pulsework/okrboard/pkg/types"
)

var (
	objAddTitle       string
	objAddDescription string
	objAddDriver      string
)

var objectiveAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new objective",
	Long: `Add creates a new objective. A comment slot is provisioned for every
month in the tracking window.

Example:
  okrboard objective add --title "Reduce operational toil" --driver "Platform team"`,
	RunE: runObjectiveAdd,
}

func init() {
	objectiveAddCmd.Flags().StringVar(&objAddTitle, "title", "", "objective title (required)")
	objectiveAddCmd.Flags().StringVar(&objAddDescription, "description", "", "objective description")
	objectiveAddCmd.Flags().StringVar(&objAddDriver, "driver", "", "accountable driver (required)")
	_ = objectiveAddCmd.MarkFlagRequired("title")
	_ = objectiveAddCmd.MarkFlagRequired("driver")
}

func runObjectiveAdd(cmd *cobra.Command, args []string) error {
	return withStore(func(store *sqlite.Store) error {
		obj, err := store.CreateObjective(types.ObjectiveInput{
			Title:       objAddTitle,
			Description: objAddDescription,
			Driver:      objAddDriver,
		})
		if err != nil {
			return fmt.Errorf("create objective: %w", err)
		}

		if flagJSON {
			return printJSON(obj)
		}
		fmt.Printf("Created objective %d: %s\n", obj.ID, obj.Title)
		return nil
	})
}
