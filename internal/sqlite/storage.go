package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
)

// StorageInfo reports how much of the configured quota the live database
// and its snapshot occupy.
type StorageInfo struct {
	UsedBytes       int64   `json:"used_bytes"`
	QuotaBytes      int64   `json:"quota_bytes"`
	UsagePercentage float64 `json:"usage_percentage"`
}

// WarningLevel bands for storage usage.
const (
	WarnNone     = "none"
	WarnWarning  = "warning"
	WarnHigh     = "high"
	WarnCritical = "critical"
)

var warningMessages = map[string]string{
	WarnWarning:  "Storage usage high. Consider exporting old data.",
	WarnHigh:     "Storage nearly full. Export and archive recommended.",
	WarnCritical: "Storage critical. Data loss risk. Export immediately.",
}

// Storage measures the bytes used by the live database and snapshot against
// the configured quota.
func (s *Store) Storage() (*StorageInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return nil, err
	}

	var used int64
	for _, path := range []string{filepath.Join(s.dir, liveDBName), SnapshotPath(s.dir)} {
		fi, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("measuring %s: %w", path, err)
		}
		used += fi.Size()
	}

	info := &StorageInfo{UsedBytes: used, QuotaBytes: s.cfg.QuotaBytes}
	if info.QuotaBytes > 0 {
		info.UsagePercentage = float64(used) / float64(info.QuotaBytes) * 100
	}
	return info, nil
}

// WarningLevel bands a usage percentage: warning at 80%, high at 90%,
// critical at 95%.
func (i *StorageInfo) WarningLevel() string {
	switch {
	case i.UsagePercentage >= 95:
		return WarnCritical
	case i.UsagePercentage >= 90:
		return WarnHigh
	case i.UsagePercentage >= 80:
		return WarnWarning
	default:
		return WarnNone
	}
}

// WarningMessage returns the user-facing message for a warning level, or an
// empty string for WarnNone.
func (i *StorageInfo) WarningMessage() string {
	return warningMessages[i.WarningLevel()]
}
