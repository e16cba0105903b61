package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsework/okrboard/pkg/types"
)

// legacyV1DDL is the shape of a version-1 database: no inverse_metric on
// key_results and no driver on objectives.
var legacyV1DDL = []string{
	`CREATE TABLE objectives (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		created_date TEXT NOT NULL,
		modified_date TEXT NOT NULL
	);`,
	`CREATE TABLE key_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		objective_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		metric TEXT NOT NULL,
		unit TEXT,
		created_date TEXT NOT NULL,
		modified_date TEXT NOT NULL,
		FOREIGN KEY (objective_id) REFERENCES objectives(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE monthly_data (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		key_result_id INTEGER NOT NULL,
		month TEXT NOT NULL,
		target REAL NOT NULL DEFAULT 0,
		actual REAL NOT NULL DEFAULT 0,
		last_updated TEXT NOT NULL,
		FOREIGN KEY (key_result_id) REFERENCES key_results(id) ON DELETE CASCADE,
		UNIQUE(key_result_id, month)
	);`,
	`CREATE TABLE objective_comments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		objective_id INTEGER NOT NULL,
		month TEXT NOT NULL,
		comment TEXT,
		last_updated TEXT NOT NULL,
		FOREIGN KEY (objective_id) REFERENCES objectives(id) ON DELETE CASCADE,
		UNIQUE(objective_id, month)
	);`,
	`CREATE TABLE schema_version (
		version INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL
	);`,
	`INSERT INTO schema_version (version, applied_at) VALUES (1, '2024-01-01T00:00:00Z');`,
}

// writeLegacyDB creates a version-1 database with one objective and one key
// result at dataDir/okr.db.
func writeLegacyDB(t *testing.T, dataDir string) {
	t.Helper()
	db, err := sqlx.Open("sqlite", filepath.Join(dataDir, liveDBName))
	require.NoError(t, err)
	defer db.Close()

	for _, ddl := range legacyV1DDL {
		_, err := db.Exec(ddl)
		require.NoError(t, err)
	}
	_, err = db.Exec(
		"INSERT INTO objectives (title, description, created_date, modified_date) VALUES ('Legacy objective', '', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')")
	require.NoError(t, err)
	_, err = db.Exec(
		"INSERT INTO key_results (objective_id, title, metric, created_date, modified_date) VALUES (1, 'Legacy KR', 'Things', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')")
	require.NoError(t, err)
}

func TestMigrateLegacyDatabase(t *testing.T) {
	cfg := testConfig(t)
	writeLegacyDB(t, cfg.DataDir)

	s, err := Open(cfg)
	require.NoError(t, err)
	defer s.Close()

	// The added columns exist and carry their defaults.
	kr, err := s.GetKeyResult(1)
	require.NoError(t, err)
	assert.False(t, kr.Inverse, "inverse flag should default to false")

	obj, err := s.GetObjective(1)
	require.NoError(t, err)
	assert.Equal(t, "", obj.Driver, "driver should default to empty")

	// The full version history is recorded.
	var versions []int
	require.NoError(t, s.db.Select(&versions, "SELECT version FROM schema_version ORDER BY version"))
	assert.Equal(t, []int{1, 2, 3}, versions)
}

func TestMigrateIsIdempotent(t *testing.T) {
	cfg := testConfig(t)

	s, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening a migrated database applies nothing and adds no history.
	s, err = Open(cfg)
	require.NoError(t, err)
	defer s.Close()

	var count int
	require.NoError(t, s.db.Get(&count, "SELECT COUNT(*) FROM schema_version"))
	assert.Equal(t, currentSchemaVersion, count, "no duplicate version rows")
}

func TestMigrateRejectsNewerSchema(t *testing.T) {
	cfg := testConfig(t)

	s, err := Open(cfg)
	require.NoError(t, err)
	_, err = s.db.Exec("INSERT INTO schema_version (version, applied_at) VALUES (99, '2030-01-01T00:00:00Z')")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestFreshDatabaseStampsFullHistory(t *testing.T) {
	s := setupStore(t)

	var versions []int
	require.NoError(t, s.db.Select(&versions, "SELECT version FROM schema_version ORDER BY version"))
	assert.Equal(t, []int{1, 2, 3}, versions)
}

func TestLegacyDataSurvivesMigration(t *testing.T) {
	cfg := testConfig(t)
	writeLegacyDB(t, cfg.DataDir)

	s, err := Open(cfg)
	require.NoError(t, err)
	defer s.Close()

	objectives, err := s.ListObjectives()
	require.NoError(t, err)
	require.Len(t, objectives, 1)
	assert.Equal(t, "Legacy objective", objectives[0].Title)

	results, err := s.ListAllKeyResults()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Legacy KR", results[0].Title)

	// The migrated store accepts writes against the new columns.
	require.NoError(t, s.UpdateKeyResult(1, types.KeyResultInput{
		Title: "Legacy KR", Metric: "Things", Inverse: true,
	}))
	kr, err := s.GetKeyResult(1)
	require.NoError(t, err)
	assert.True(t, kr.Inverse)
}
