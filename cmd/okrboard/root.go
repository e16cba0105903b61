// Root command for the okrboard CLI.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pulsework/okrboard/pkg/okrboard"
	"github.com/pulsework/okrboard/pkg/types"
)

// Global flag values.
var (
	flagConfigDir  string
	flagDataDir    string
	flagStartMonth string
	flagEndMonth   string
	flagJSON       bool
	flagVerbose    bool
)

// appConfig is the effective configuration, resolved by PersistentPreRunE
// so every subcommand can use it.
var appConfig types.Config

var rootCmd = &cobra.Command{
	Use:     "okrboard",
	Short:   "okrboard is a local-first OKR tracker",
	Version: okrboard.Version,
	Long: `okrboard tracks objectives and key results in an embedded SQLite
database. Monthly target and actual values roll up into a status
(on track / under watch / off track) and a month-over-month trend.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.okrboard-data)")
	rootCmd.PersistentFlags().StringVar(&flagStartMonth, "start", "", "tracking window start month (YYYY-MM)")
	rootCmd.PersistentFlags().StringVar(&flagEndMonth, "end", "", "tracking window end month (YYYY-MM)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(objectiveCmd)
	rootCmd.AddCommand(krCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(copyTargetsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(exportJSONCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(importJSONCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(storageCmd)
}
