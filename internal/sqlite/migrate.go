package sqlite

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// currentSchemaVersion is the version a fully migrated database reports.
const currentSchemaVersion = 3

// migration is one forward-only schema step. Every apply func must be
// idempotent: re-running against a database that already has the target
// shape is a no-op, not an error.
type migration struct {
	version     int
	description string
	apply       func(tx *sqlx.Tx) error
}

// migrations is the ordered list of schema steps. The runner applies every
// step above the database's recorded version, in order.
var migrations = []migration{
	{1, "baseline OKR tables", applyBaseline},
	{2, "add key_results.inverse_metric", applyInverseMetric},
	{3, "add objectives.driver", applyDriver},
}

// migrate brings the database to currentSchemaVersion and returns whether
// any step was applied, so the caller knows to re-snapshot. A fresh database
// (no objectives table) is created at the latest schema directly and stamped
// with every version. Any failure aborts with no further steps attempted.
func (s *Store) migrate() (bool, error) {
	if _, err := s.db.Exec(createSchemaVersion); err != nil {
		return false, fmt.Errorf("creating schema_version table: %w", err)
	}

	fresh, err := s.isFresh()
	if err != nil {
		return false, err
	}
	if fresh {
		if err := s.createAtLatest(); err != nil {
			return false, err
		}
		s.log.WithField("version", currentSchemaVersion).Info("created database at latest schema")
		return true, nil
	}

	var current int
	if err := s.db.Get(&current, "SELECT COALESCE(MAX(version), 0) FROM schema_version"); err != nil {
		return false, fmt.Errorf("reading schema version: %w", err)
	}
	if current > currentSchemaVersion {
		return false, fmt.Errorf("database schema version %d is newer than supported version %d", current, currentSchemaVersion)
	}

	applied := false
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := s.applyStep(m); err != nil {
			return false, err
		}
		s.log.WithFields(map[string]any{
			"version":     m.version,
			"description": m.description,
		}).Info("applied migration")
		applied = true
	}
	return applied, nil
}

// applyStep runs one migration and its version stamp in a single transaction.
func (s *Store) applyStep(m migration) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("beginning migration %d: %w", m.version, err)
	}
	defer tx.Rollback()

	if err := m.apply(tx); err != nil {
		return fmt.Errorf("migration %d (%s): %w", m.version, m.description, err)
	}
	if _, err := tx.Exec(
		"INSERT OR IGNORE INTO schema_version (version, applied_at) VALUES (?, ?)",
		m.version, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("stamping version %d: %w", m.version, err)
	}
	return tx.Commit()
}

// isFresh reports whether the database has no baseline tables yet.
func (s *Store) isFresh() (bool, error) {
	var n int
	err := s.db.Get(&n, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'objectives'")
	if err != nil {
		return false, fmt.Errorf("inspecting schema: %w", err)
	}
	return n == 0, nil
}

// createAtLatest creates every table and index at the current schema and
// stamps the full version history.
func (s *Store) createAtLatest() error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("beginning schema create: %w", err)
	}
	defer tx.Rollback()

	for _, ddl := range schemaDDL {
		if _, err := tx.Exec(ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := tx.Exec(ddl); err != nil {
			return fmt.Errorf("creating indexes: %w", err)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for v := 1; v <= currentSchemaVersion; v++ {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO schema_version (version, applied_at) VALUES (?, ?)", v, now,
		); err != nil {
			return fmt.Errorf("stamping version %d: %w", v, err)
		}
	}
	return tx.Commit()
}

func applyBaseline(tx *sqlx.Tx) error {
	for _, ddl := range schemaDDL {
		if _, err := tx.Exec(ddl); err != nil {
			return err
		}
	}
	for _, ddl := range indexDDL {
		if _, err := tx.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

func applyInverseMetric(tx *sqlx.Tx) error {
	exists, err := columnExists(tx, "key_results", "inverse_metric")
	if err != nil || exists {
		return err
	}
	_, err = tx.Exec("ALTER TABLE key_results ADD COLUMN inverse_metric INTEGER NOT NULL DEFAULT 0 CHECK(inverse_metric IN (0, 1))")
	return err
}

func applyDriver(tx *sqlx.Tx) error {
	exists, err := columnExists(tx, "objectives", "driver")
	if err != nil || exists {
		return err
	}
	_, err = tx.Exec("ALTER TABLE objectives ADD COLUMN driver TEXT NOT NULL DEFAULT ''")
	return err
}

// columnExists checks for a column via pragma_table_info, guarding the
// ALTER-based steps against re-application.
func columnExists(tx *sqlx.Tx, table, column string) (bool, error) {
	var n int
	err := tx.Get(&n, "SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?", table, column)
	if err != nil {
		return false, fmt.Errorf("inspecting %s columns: %w", table, err)
	}
	return n > 0, nil
}
