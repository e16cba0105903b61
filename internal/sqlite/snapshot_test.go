package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsework/okrboard/pkg/types"
)

func TestSnapshotWritesFixedPath(t *testing.T) {
	s := setupStore(t)
	mustCreateObjective(t, s, "Improve reliability")

	require.NoError(t, s.Snapshot())

	fi, err := os.Stat(SnapshotPath(s.DataDir()))
	require.NoError(t, err)
	assert.Positive(t, fi.Size())

	// Overwriting an existing snapshot is fine.
	require.NoError(t, s.Snapshot())
}

func TestLoadSnapshot(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.Snapshot())

	blob, err := LoadSnapshot(s.DataDir())
	require.NoError(t, err)
	assert.NotEmpty(t, blob)

	// No snapshot is the first-run case, not an error.
	blob, err = LoadSnapshot(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, blob)
}

func TestExportAndValidate(t *testing.T) {
	s := setupStore(t)
	mustCreateObjective(t, s, "Improve reliability")

	out := filepath.Join(t.TempDir(), "export.db")
	require.NoError(t, s.ExportToFile(out))
	require.NoError(t, ValidateDatabaseFile(out))
}

func TestValidateDatabaseFileRejectsJunk(t *testing.T) {
	junk := filepath.Join(t.TempDir(), "junk.db")
	require.NoError(t, os.WriteFile(junk, []byte("not a database at all"), 0o644))

	err := ValidateDatabaseFile(junk)
	assert.ErrorIs(t, err, types.ErrInvalidSnapshot)
}

func TestValidateDatabaseFileRejectsWrongSchema(t *testing.T) {
	// A real SQLite file that is missing one of the core tables.
	dir := t.TempDir()
	other, err := Open(types.Config{StartMonth: "2025-10", EndMonth: "2025-10", DataDir: dir})
	require.NoError(t, err)
	_, err = other.db.Exec("DROP TABLE monthly_data")
	require.NoError(t, err)
	require.NoError(t, other.Close())

	err = ValidateDatabaseFile(filepath.Join(dir, liveDBName))
	assert.ErrorIs(t, err, types.ErrInvalidSnapshot)
}

func TestImportFileRoundTrip(t *testing.T) {
	src := setupStore(t)
	obj := mustCreateObjective(t, src, "Improve reliability")
	kr, err := src.CreateKeyResult(obj.ID, types.KeyResultInput{Title: "Raise availability", Metric: "Availability"})
	require.NoError(t, err)
	require.NoError(t, src.UpdateMonthlyData(kr.ID, "2025-11", types.MonthlyUpdate{Target: floatPtr(99.9), Actual: floatPtr(99.5)}))

	exported := filepath.Join(t.TempDir(), "export.db")
	require.NoError(t, src.ExportToFile(exported))

	dst, err := ImportFile(exported, testConfig(t))
	require.NoError(t, err)
	defer dst.Close()

	got, err := dst.GetObjectiveDetails(obj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Improve reliability", got.Title)
	require.Len(t, got.KeyResults, 1)

	var found bool
	for _, md := range got.KeyResults[0].MonthlyData {
		if md.Month == "2025-11" {
			found = true
			assert.Equal(t, 99.9, md.Target)
			assert.Equal(t, 99.5, md.Actual)
		}
	}
	assert.True(t, found)
}

func TestImportFileLeavesExistingDatabaseOnFailure(t *testing.T) {
	cfg := testConfig(t)
	s, err := Open(cfg)
	require.NoError(t, err)
	mustCreateObjective(t, s, "Keep me")
	require.NoError(t, s.Close())

	junk := filepath.Join(t.TempDir(), "junk.db")
	require.NoError(t, os.WriteFile(junk, []byte("nope"), 0o644))

	_, err = ImportFile(junk, cfg)
	require.ErrorIs(t, err, types.ErrInvalidSnapshot)

	// The prior database is untouched.
	s, err = Open(cfg)
	require.NoError(t, err)
	defer s.Close()
	objectives, err := s.ListObjectives()
	require.NoError(t, err)
	require.Len(t, objectives, 1)
	assert.Equal(t, "Keep me", objectives[0].Title)
}

func TestImportFileRejectsNewerSchemaWithoutDamage(t *testing.T) {
	cfg := testConfig(t)
	s, err := Open(cfg)
	require.NoError(t, err)
	mustCreateObjective(t, s, "Keep me")
	require.NoError(t, s.Close())

	// A structurally valid database that passes table validation but whose
	// schema version is newer than this build supports.
	candidateDir := t.TempDir()
	candidate, err := Open(types.Config{StartMonth: "2025-10", EndMonth: "2025-10", DataDir: candidateDir})
	require.NoError(t, err)
	_, err = candidate.db.Exec("INSERT INTO schema_version (version, applied_at) VALUES (99, '2030-01-01T00:00:00Z')")
	require.NoError(t, err)
	require.NoError(t, candidate.Close())

	candidatePath := filepath.Join(candidateDir, liveDBName)
	require.NoError(t, ValidateDatabaseFile(candidatePath), "candidate passes table validation")

	_, err = ImportFile(candidatePath, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")

	// The prior live database still opens and still has its data.
	s, err = Open(cfg)
	require.NoError(t, err)
	defer s.Close()
	objectives, err := s.ListObjectives()
	require.NoError(t, err)
	require.Len(t, objectives, 1)
	assert.Equal(t, "Keep me", objectives[0].Title)
}

func TestStorageInfo(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.Snapshot())

	info, err := s.Storage()
	require.NoError(t, err)
	assert.Positive(t, info.UsedBytes)
	assert.Equal(t, int64(types.DefaultQuotaBytes), info.QuotaBytes)
	assert.Equal(t, WarnNone, info.WarningLevel())
	assert.Empty(t, info.WarningMessage())
}

func TestStorageWarningBands(t *testing.T) {
	tests := []struct {
		pct   float64
		level string
	}{
		{10, WarnNone},
		{79.9, WarnNone},
		{80, WarnWarning},
		{90, WarnHigh},
		{95, WarnCritical},
		{120, WarnCritical},
	}

	for _, tt := range tests {
		info := StorageInfo{UsagePercentage: tt.pct}
		assert.Equal(t, tt.level, info.WarningLevel(), "at %.1f%%", tt.pct)
	}

	critical := StorageInfo{UsagePercentage: 99}
	assert.Contains(t, critical.WarningMessage(), "critical")
}
