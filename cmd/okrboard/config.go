// Config loading for the okrboard CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pulsework/okrboard/internal/paths"
	"github.com/pulsework/okrboard/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyStartMonth     = "start_month"
	cfgKeyEndMonth       = "end_month"
	cfgKeyDataDir        = "data_dir"
	cfgKeyQuotaBytes     = "quota_bytes"
	cfgKeyBackupInterval = "backup_interval"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# okrboard configuration

# Tracking window (YYYY-MM, inclusive). Monthly rows are provisioned for
# this window when objectives and key results are created.
start_month: "2025-10"
end_month: "2026-12"

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Snapshot quota used for storage warnings, in bytes.
# quota_bytes: 52428800

# Auto-backup interval for "okrboard backup --watch".
# backup_interval: 5m
`

// loadConfig resolves the effective Config: flags > config.yaml > environment
// (OKRBOARD_*, including a .env file in the working directory) > defaults.
func loadConfig() (types.Config, error) {
	// A missing .env is the normal case, not an error.
	_ = godotenv.Load()

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, err
	}

	v := viper.New()
	v.SetDefault(cfgKeyStartMonth, types.DefaultStartMonth)
	v.SetDefault(cfgKeyEndMonth, types.DefaultEndMonth)
	v.SetDefault(cfgKeyQuotaBytes, types.DefaultQuotaBytes)
	v.SetDefault(cfgKeyBackupInterval, types.DefaultBackupInterval)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("OKRBOARD")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		StartMonth:     v.GetString(cfgKeyStartMonth),
		EndMonth:       v.GetString(cfgKeyEndMonth),
		QuotaBytes:     v.GetInt64(cfgKeyQuotaBytes),
		BackupInterval: v.GetDuration(cfgKeyBackupInterval),
	}
	if flagStartMonth != "" {
		cfg.StartMonth = flagStartMonth
	}
	if flagEndMonth != "" {
		cfg.EndMonth = flagEndMonth
	}
	if cfg.BackupInterval <= 0 {
		cfg.BackupInterval = types.DefaultBackupInterval
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	cfg.DataDir = dataDir

	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid tracking window %s..%s: %w", cfg.StartMonth, cfg.EndMonth, err)
	}
	return cfg, nil
}

// ensureDefaultConfigFile creates the config directory and a default
// config.yaml if the file does not exist yet.
func ensureDefaultConfigFile(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}

	path := filepath.Join(configDir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// timestamp is used in default export and backup file names.
func timestamp() string {
	return time.Now().Format("20060102-150405")
}
