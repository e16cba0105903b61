package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/pulsework/okrboard/pkg/types"
)

// SnapshotPath returns the fixed snapshot location under a data directory.
func SnapshotPath(dataDir string) string {
	return filepath.Join(dataDir, snapshotDirName, snapshotName)
}

// Snapshot serializes the full database to the fixed snapshot path,
// overwriting any prior snapshot. The blob is written to a temporary file
// first and renamed into place, so a failed snapshot never corrupts the
// previous one. Safe to call repeatedly.
func (s *Store) Snapshot() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return err
	}

	dest := SnapshotPath(s.dir)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}
	return s.serializeTo(dest)
}

// ExportToFile serializes the full database to a caller-chosen file, the
// same binary form the snapshot uses. Side effect only.
func (s *Store) ExportToFile(path string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return err
	}
	return s.serializeTo(path)
}

// serializeTo writes a consistent copy of the database to path via
// VACUUM INTO, going through a temporary file because VACUUM INTO refuses
// to overwrite. Callers must hold at least the read lock.
func (s *Store) serializeTo(path string) error {
	tmp := path + ".tmp"
	_ = os.Remove(tmp)

	if _, err := s.db.Exec("VACUUM INTO ?", tmp); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("serializing database: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// LoadSnapshot returns the last-saved snapshot blob for a data directory,
// or nil when no snapshot exists yet (first run).
func LoadSnapshot(dataDir string) ([]byte, error) {
	blob, err := os.ReadFile(SnapshotPath(dataDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return blob, nil
}

// ImportFile validates a user-supplied database file and installs it as the
// live database, then opens a store over it. The file must contain the
// three core tables (ErrInvalidSnapshot otherwise) and must open and
// migrate cleanly; any failure leaves the prior database untouched.
func ImportFile(path string, cfg types.Config) (*Store, error) {
	if err := ValidateDatabaseFile(path); err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	// Stage the candidate in a scratch directory and open it there first.
	// Open can still fail after table validation passes, for instance on a
	// schema version newer than supported; the live database must survive
	// that. The scratch dir lives inside dataDir so the final rename stays
	// on one filesystem.
	stageDir, err := os.MkdirTemp(dataDir, "import-*")
	if err != nil {
		return nil, fmt.Errorf("creating staging dir: %w", err)
	}
	defer os.RemoveAll(stageDir)

	stagePath := filepath.Join(stageDir, liveDBName)
	if err := os.WriteFile(stagePath, blob, 0o644); err != nil {
		return nil, fmt.Errorf("writing imported database: %w", err)
	}

	stageCfg := cfg
	stageCfg.DataDir = stageDir
	staged, err := Open(stageCfg)
	if err != nil {
		return nil, fmt.Errorf("opening imported database: %w", err)
	}
	if err := staged.Close(); err != nil {
		return nil, fmt.Errorf("closing staged database: %w", err)
	}

	// The staged copy opened and migrated cleanly; install it.
	if err := os.Rename(stagePath, filepath.Join(dataDir, liveDBName)); err != nil {
		return nil, fmt.Errorf("installing imported database: %w", err)
	}

	return Open(cfg)
}

// ValidateDatabaseFile checks that a file is an okrboard database: it must
// open as SQLite and contain the objectives, key_results, and monthly_data
// tables. Guards import against unrelated or corrupt binary files.
func ValidateDatabaseFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("import file: %w", err)
	}

	db, err := sqlx.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidSnapshot, err)
	}
	defer db.Close()

	var n int
	err = db.Get(&n,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN (?, ?, ?)",
		coreTables[0], coreTables[1], coreTables[2])
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidSnapshot, err)
	}
	if n < len(coreTables) {
		return types.ErrInvalidSnapshot
	}
	return nil
}
