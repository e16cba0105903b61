// Objective list command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var objectiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all objectives",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		objectives, err := store.ListObjectives()
		if err != nil {
			return fmt.Errorf("list objectives: %w", err)
		}

		if flagJSON {
			return printJSON(objectives)
		}
		if len(objectives) == 0 {
			fmt.Println("No objectives.")
			return nil
		}
		for _, obj := range objectives {
			fmt.Printf("%d\t%s\t(driver: %s)\n", obj.ID, obj.Title, obj.Driver)
		}
		return nil
	},
}
