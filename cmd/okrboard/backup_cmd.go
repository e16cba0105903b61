// Backup command snapshots the database, once or on a schedule.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pulsework/okrboard/internal/backup"
)

var (
	backupWatch    bool
	backupInterval time.Duration
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot the database to the fixed backup location",
	Long: `Backup writes a snapshot of the database to the fixed snapshot path
under the data directory. With --watch it keeps snapshotting on an interval
until interrupted; snapshot failures are logged and the schedule keeps
running.`,
	RunE: runBackup,
}

func init() {
	backupCmd.Flags().BoolVar(&backupWatch, "watch", false, "keep snapshotting on an interval")
	backupCmd.Flags().DurationVar(&backupInterval, "interval", 0, "snapshot interval for --watch (default: configured backup_interval)")
}

func runBackup(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Snapshot(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	fmt.Println("Snapshot written")

	if !backupWatch {
		return nil
	}

	runner := backup.NewRunner(store, backupInterval)
	if err := runner.Start(); err != nil {
		return err
	}
	defer runner.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Println("Stopping auto-backup")
	return nil
}
