// Objective command group.
package main

import "github.com/spf13/cobra"

var objectiveCmd = &cobra.Command{
	Use:     "objective",
	Aliases: []string{"obj"},
	Short:   "Manage objectives",
}

func init() {
	objectiveCmd.AddCommand(objectiveAddCmd)
	objectiveCmd.AddCommand(objectiveListCmd)
	objectiveCmd.AddCommand(objectiveUpdateCmd)
	objectiveCmd.AddCommand(objectiveDeleteCmd)
}
