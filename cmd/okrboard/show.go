// Show command prints one objective with full details.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <objective-id>",
	Short: "Show an objective with key results and monthly data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid objective id %q", args[0])
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		details, err := store.GetObjectiveDetails(id)
		if err != nil {
			return fmt.Errorf("get objective %d: %w", id, err)
		}

		if flagJSON {
			return printJSON(details)
		}

		fmt.Printf("%d\t%s\t(driver: %s)\n", details.ID, details.Title, details.Driver)
		if details.Description != "" {
			fmt.Println(details.Description)
		}
		for _, kr := range details.KeyResults {
			fmt.Printf("  KR %d: %s (%s)\n", kr.ID, kr.Title, kr.Metric)
			for _, md := range kr.MonthlyData {
				if md.Target == 0 && md.Actual == 0 {
					continue
				}
				fmt.Printf("    %s\ttarget %.2f\tactual %.2f\n", md.Month, md.Target, md.Actual)
			}
		}
		for _, c := range details.Comments {
			if c.Comment == "" {
				continue
			}
			fmt.Printf("  %s: %s\n", c.Month, c.Comment)
		}
		return nil
	},
}
