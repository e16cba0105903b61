// Track command records monthly target/actual values for a key result.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulsework/okrboard/internal/sqlite"
	"github.com/pulsework/okrboard/pkg/types"
)

var (
	trackKR     int64
	trackMonth  string
	trackTarget float64
	trackActual float64
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Set monthly target and/or actual values",
	Long: `Track sets the target and/or actual value of one key result for one
month. Either flag may be given alone; the other value is left unchanged.

Example:
  okrboard track --kr 3 --month 2025-11 --target 50
  okrboard track --kr 3 --month 2025-11 --actual 42.5`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().Int64Var(&trackKR, "kr", 0, "key result id (required)")
	trackCmd.Flags().StringVar(&trackMonth, "month", "", "month (YYYY-MM, default: current month)")
	trackCmd.Flags().Float64Var(&trackTarget, "target", 0, "target value")
	trackCmd.Flags().Float64Var(&trackActual, "actual", 0, "actual value")
	_ = trackCmd.MarkFlagRequired("kr")
}

func runTrack(cmd *cobra.Command, args []string) error {
	month := trackMonth
	if month == "" {
		month = types.CurrentMonth()
	}

	var update types.MonthlyUpdate
	if cmd.Flags().Changed("target") {
		update.Target = &trackTarget
	}
	if cmd.Flags().Changed("actual") {
		update.Actual = &trackActual
	}
	if update.IsEmpty() {
		return fmt.Errorf("nothing to set: pass --target and/or --actual")
	}

	return withStore(func(store *sqlite.Store) error {
		if err := store.UpdateMonthlyData(trackKR, month, update); err != nil {
			return fmt.Errorf("update monthly data: %w", err)
		}
		fmt.Printf("Updated key result %d for %s\n", trackKR, month)
		return nil
	})
}
