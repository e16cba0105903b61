// Key result list command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulsework/okrboard/pkg/types"
)

var krListObjective int64

var krListCmd = &cobra.Command{
	Use:   "list",
	Short: "List key results",
	Long:  `List shows all key results, or just one objective's with --objective.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		var results []types.KeyResult
		if krListObjective > 0 {
			results, err = store.ListKeyResults(krListObjective)
		} else {
			results, err = store.ListAllKeyResults()
		}
		if err != nil {
			return fmt.Errorf("list key results: %w", err)
		}

		if flagJSON {
			return printJSON(results)
		}
		if len(results) == 0 {
			fmt.Println("No key results.")
			return nil
		}
		for _, kr := range results {
			marker := ""
			if kr.Inverse {
				marker = "\t[inverse]"
			}
			fmt.Printf("%d\tobj %d\t%s\t(%s)%s\n", kr.ID, kr.ObjectiveID, kr.Title, kr.Metric, marker)
		}
		return nil
	},
}

func init() {
	krListCmd.Flags().Int64Var(&krListObjective, "objective", 0, "filter by objective id")
}
