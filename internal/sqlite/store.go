package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/pulsework/okrboard/pkg/types"
)

// File names under the data directory. The snapshot path is the fixed key
// the persistence adapter writes to; it is overwritten on every save.
const (
	liveDBName      = "okr.db"
	snapshotDirName = "snapshot"
	snapshotName    = "okr.snapshot.db"
)

// Store owns the embedded database handle for the lifetime between Open and
// Close. All reads and writes go through it; there is no package-level
// database state.
type Store struct {
	mu   sync.RWMutex
	open bool
	db   *sqlx.DB
	cfg  types.Config
	dir  string
	log  *logrus.Entry
}

// Open opens (or creates) the database under cfg.DataDir, switches on
// foreign-key enforcement, and migrates the schema to the current version.
// Migration failure aborts entirely; no partially migrated store is
// returned. The caller must Close the returned store.
func Open(cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	// Foreign keys go in the DSN so every pooled connection enforces them.
	// A single connection sidesteps writer contention; the store serializes
	// access anyway.
	dsn := "file:" + filepath.Join(dataDir, liveDBName) + "?_pragma=foreign_keys(1)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{
		open: true,
		db:   db,
		cfg:  cfg,
		dir:  dataDir,
		log:  logrus.WithField("component", "sqlite"),
	}

	if err := s.enforceForeignKeys(); err != nil {
		db.Close()
		return nil, err
	}

	applied, err := s.migrate()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	if applied {
		// The schema changed on disk; refresh the snapshot so a restore
		// does not resurrect the old shape. The live file is already
		// durable, so a failed snapshot is not fatal here.
		if err := s.Snapshot(); err != nil {
			s.log.WithError(err).Warn("snapshot after migration failed")
		}
	}

	return s, nil
}

// Close releases the database handle. Idempotent; all operations after
// Close return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// Config returns the configuration the store was opened with.
func (s *Store) Config() types.Config {
	return s.cfg
}

// DataDir returns the resolved data directory.
func (s *Store) DataDir() string {
	return s.dir
}

// enforceForeignKeys asserts that foreign-key enforcement took effect.
// Cascade deletes depend on it, so a database handle without it is an
// initialization error, not a silent degradation.
func (s *Store) enforceForeignKeys() error {
	var on int
	if err := s.db.Get(&on, "PRAGMA foreign_keys"); err != nil {
		return fmt.Errorf("checking foreign keys: %w", err)
	}
	if on != 1 {
		return fmt.Errorf("foreign key enforcement is not active")
	}
	return nil
}

// ready guards every operation against use before Open or after Close.
// Callers must hold at least the read lock.
func (s *Store) ready() error {
	if !s.open {
		return types.ErrStoreClosed
	}
	return nil
}

// now returns the canonical timestamp string written to date columns.
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
