// Report command renders the monthly status dashboard.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulsework/okrboard/internal/report"
	"github.com/pulsework/okrboard/pkg/types"
)

var reportMonth string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the status report for a month",
	Long: `Report scores every key result with a configured target for the month:
status (on track / under watch / off track), completion percentage, and the
trend against the previous month. Inverse metrics swap the favorable trend
direction.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportMonth, "month", "", "report month (YYYY-MM, default: current month)")
}

func runReport(cmd *cobra.Command, args []string) error {
	month := reportMonth
	if month == "" {
		month = types.CurrentMonth()
	}
	if !types.IsMonth(month) {
		return types.ErrInvalidMonth
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	objectives, err := store.ListObjectiveDetails()
	if err != nil {
		return fmt.Errorf("read objectives: %w", err)
	}

	r := report.Build(objectives, month)

	if flagJSON {
		return printJSON(r)
	}
	fmt.Print(report.Render(r))

	if appConfig.TimelineEnded() {
		fmt.Printf("Note: the tracking window ended in %s.\n", types.FormatMonth(appConfig.EndMonth))
	}
	return nil
}
