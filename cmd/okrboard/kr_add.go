// Key result add command creates a key result and provisions its monthly
// rows for the tracking window.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulsework/okrboard/internal/sqlite"
	"github.com/pulsework/okrboard/pkg/types"
)

var (
	krAddObjective int64
	krAddTitle     string
	krAddMetric    string
	krAddUnit      string
	krAddInverse   bool
)

var krAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new key result",
	Long: `Add creates a key result under an objective. A monthly row with zero
target and actual is provisioned for every month in the tracking window.

Use --inverse for lower-is-better metrics (tickets, incidents, downtime):
staying at or under the target scores green, and a falling actual is shown
as the favorable trend.

Example:
  okrboard kr add --objective 1 --title "Cut open incidents" --metric "Open incidents" --unit "tickets" --inverse`,
	RunE: runKrAdd,
}

func init() {
	krAddCmd.Flags().Int64Var(&krAddObjective, "objective", 0, "owning objective id (required)")
	krAddCmd.Flags().StringVar(&krAddTitle, "title", "", "key result title (required)")
	krAddCmd.Flags().StringVar(&krAddMetric, "metric", "", "metric name (required)")
	krAddCmd.Flags().StringVar(&krAddUnit, "unit", "", "unit of measure")
	krAddCmd.Flags().BoolVar(&krAddInverse, "inverse", false, "lower values are better")
	_ = krAddCmd.MarkFlagRequired("objective")
	_ = krAddCmd.MarkFlagRequired("title")
	_ = krAddCmd.MarkFlagRequired("metric")
}

func runKrAdd(cmd *cobra.Command, args []string) error {
	return withStore(func(store *sqlite.Store) error {
		kr, err := store.CreateKeyResult(krAddObjective, types.KeyResultInput{
			Title:   krAddTitle,
			Metric:  krAddMetric,
			Unit:    krAddUnit,
			Inverse: krAddInverse,
		})
		if err != nil {
			return fmt.Errorf("create key result: %w", err)
		}

		if flagJSON {
			return printJSON(kr)
		}
		fmt.Printf("Created key result %d: %s\n", kr.ID, kr.Title)
		return nil
	})
}
