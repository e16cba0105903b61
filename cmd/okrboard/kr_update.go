// Key result update command.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pulsework/okrboard/internal/sqlite"
	"github.com/pulsework/okrboard/pkg/types"
)

var (
	krUpdateTitle   string
	krUpdateMetric  string
	krUpdateUnit    string
	krUpdateInverse bool
)

var krUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a key result",
	Args:  cobra.ExactArgs(1),
	RunE:  runKrUpdate,
}

func init() {
	krUpdateCmd.Flags().StringVar(&krUpdateTitle, "title", "", "key result title (required)")
	krUpdateCmd.Flags().StringVar(&krUpdateMetric, "metric", "", "metric name (required)")
	krUpdateCmd.Flags().StringVar(&krUpdateUnit, "unit", "", "unit of measure")
	krUpdateCmd.Flags().BoolVar(&krUpdateInverse, "inverse", false, "lower values are better")
	_ = krUpdateCmd.MarkFlagRequired("title")
	_ = krUpdateCmd.MarkFlagRequired("metric")
}

func runKrUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid key result id %q", args[0])
	}

	return withStore(func(store *sqlite.Store) error {
		err := store.UpdateKeyResult(id, types.KeyResultInput{
			Title:   krUpdateTitle,
			Metric:  krUpdateMetric,
			Unit:    krUpdateUnit,
			Inverse: krUpdateInverse,
		})
		if err != nil {
			return fmt.Errorf("update key result %d: %w", id, err)
		}
		fmt.Printf("Updated key result %d\n", id)
		return nil
	})
}
