// Key result command group.
package main

import "github.com/spf13/cobra"

var krCmd = &cobra.Command{
	Use:   "kr",
	Short: "Manage key results",
}

func init() {
	krCmd.AddCommand(krAddCmd)
	krCmd.AddCommand(krListCmd)
	krCmd.AddCommand(krUpdateCmd)
	krCmd.AddCommand(krDeleteCmd)
}
