package types

import "time"

// Default tracking window and snapshot settings.
const (
	DefaultStartMonth     = "2025-10"
	DefaultEndMonth       = "2026-12"
	DefaultBackupInterval = 5 * time.Minute
	DefaultQuotaBytes     = 50 << 20
)

// Config holds the tracking window and storage parameters for Store.Open.
type Config struct {
	StartMonth     string        `json:"start_month" yaml:"start_month"`
	EndMonth       string        `json:"end_month" yaml:"end_month"`
	DataDir        string        `json:"data_dir" yaml:"data_dir"`
	QuotaBytes     int64         `json:"quota_bytes" yaml:"quota_bytes"`
	BackupInterval time.Duration `json:"backup_interval" yaml:"backup_interval"`
}

// DefaultConfig returns a Config with the default tracking window and
// snapshot settings. DataDir is left empty for the caller to resolve.
func DefaultConfig() Config {
	return Config{
		StartMonth:     DefaultStartMonth,
		EndMonth:       DefaultEndMonth,
		QuotaBytes:     DefaultQuotaBytes,
		BackupInterval: DefaultBackupInterval,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if !IsMonth(c.StartMonth) || !IsMonth(c.EndMonth) {
		return ErrInvalidMonth
	}
	if c.StartMonth > c.EndMonth {
		return ErrWindowInverted
	}
	return nil
}

// Months returns every month in the configured tracking window, inclusive.
func (c Config) Months() ([]string, error) {
	return MonthRange(c.StartMonth, c.EndMonth)
}

// TimelineEnded reports whether the current month is past the end of the
// tracking window. Both sides are zero-padded YYYY-MM, so string comparison
// is chronological.
func (c Config) TimelineEnded() bool {
	return CurrentMonth() > c.EndMonth
}
