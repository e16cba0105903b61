// Comment command writes the monthly commentary for an objective.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulsework/okrboard/internal/sqlite"
	"github.com/pulsework/okrboard/pkg/types"
)

var (
	commentObjective int64
	commentMonth     string
	commentText      string
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Set the monthly comment on an objective",
	Long: `Comment writes the commentary slot of one objective for one month,
creating the slot if it does not exist and overwriting it otherwise.`,
	RunE: runComment,
}

func init() {
	commentCmd.Flags().Int64Var(&commentObjective, "objective", 0, "objective id (required)")
	commentCmd.Flags().StringVar(&commentMonth, "month", "", "month (YYYY-MM, default: current month)")
	commentCmd.Flags().StringVar(&commentText, "text", "", "comment text (required)")
	_ = commentCmd.MarkFlagRequired("objective")
	_ = commentCmd.MarkFlagRequired("text")
}

func runComment(cmd *cobra.Command, args []string) error {
	month := commentMonth
	if month == "" {
		month = types.CurrentMonth()
	}

	return withStore(func(store *sqlite.Store) error {
		if err := store.UpsertComment(commentObjective, month, commentText); err != nil {
			return fmt.Errorf("set comment: %w", err)
		}
		fmt.Printf("Set comment on objective %d for %s\n", commentObjective, month)
		return nil
	})
}
