// Init command creates the database and takes the first snapshot.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the OKR database",
	Long: `Init creates (or migrates) the database under the data directory and
writes the first snapshot. Running init on an existing database is safe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Snapshot(); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}

		fmt.Printf("Initialized OKR database in %s (window %s..%s)\n",
			store.DataDir(), appConfig.StartMonth, appConfig.EndMonth)
		return nil
	},
}
