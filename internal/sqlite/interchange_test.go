package sqlite

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsework/okrboard/pkg/types"
)

func TestExportJSONShape(t *testing.T) {
	s := setupStore(t)
	obj := mustCreateObjective(t, s, "Improve reliability")
	_, err := s.CreateKeyResult(obj.ID, types.KeyResultInput{
		Title: "Cut open incidents", Metric: "Open incidents", Inverse: true,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.ExportJSON(&buf))

	var doc ExportDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, exportVersion, doc.Version)
	assert.NotEmpty(t, doc.ExportedAt)
	require.Len(t, doc.Data.Objectives, 1)
	require.Len(t, doc.Data.KeyResults, 1)
	assert.True(t, doc.Data.KeyResults[0].Inverse)
	assert.Len(t, doc.Data.MonthlyData, 3)
	assert.Len(t, doc.Data.ObjectiveComments, 3)
}

func TestJSONRoundTripPreservesIDs(t *testing.T) {
	src := setupStore(t)
	obj := mustCreateObjective(t, src, "Improve reliability")
	kr, err := src.CreateKeyResult(obj.ID, types.KeyResultInput{Title: "Raise availability", Metric: "Availability"})
	require.NoError(t, err)
	require.NoError(t, src.UpdateMonthlyData(kr.ID, "2025-11", types.MonthlyUpdate{Target: floatPtr(99.9)}))
	require.NoError(t, src.UpsertComment(obj.ID, "2025-11", "Going well"))

	var buf bytes.Buffer
	require.NoError(t, src.ExportJSON(&buf))
	exported := buf.String()

	dst := setupStore(t)
	require.NoError(t, dst.ImportJSON(strings.NewReader(exported)))

	details, err := dst.GetObjectiveDetails(obj.ID)
	require.NoError(t, err)
	require.Len(t, details.KeyResults, 1)
	assert.Equal(t, kr.ID, details.KeyResults[0].ID, "row IDs preserved")

	c, err := dst.GetComment(obj.ID, "2025-11")
	require.NoError(t, err)
	assert.Equal(t, "Going well", c.Comment)

	// A second export of the imported store yields identical data.
	var buf2 bytes.Buffer
	require.NoError(t, dst.ExportJSON(&buf2))
	var first, second ExportDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &first))
	require.NoError(t, json.Unmarshal(buf2.Bytes(), &second))
	assert.Equal(t, first.Data, second.Data)
}

func TestImportJSONRejectsNonEmptyStore(t *testing.T) {
	src := setupStore(t)
	mustCreateObjective(t, src, "Improve reliability")
	var buf bytes.Buffer
	require.NoError(t, src.ExportJSON(&buf))

	dst := setupStore(t)
	mustCreateObjective(t, dst, "Already here")

	err := dst.ImportJSON(bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, types.ErrInvalidExport)
}

func TestImportJSONRejectsMalformedDocuments(t *testing.T) {
	s := setupStore(t)

	tests := []struct {
		name string
		body string
	}{
		{"not JSON", "this is not json"},
		{"missing version", `{"data": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ImportJSON(strings.NewReader(tt.body))
			assert.ErrorIs(t, err, types.ErrInvalidExport)
		})
	}

	// Nothing was persisted by the rejected imports.
	objectives, err := s.ListObjectives()
	require.NoError(t, err)
	assert.Empty(t, objectives)
}

func TestImportJSONIsTransactional(t *testing.T) {
	s := setupStore(t)

	// The second key result references a missing objective, which violates
	// the foreign key; the whole import must roll back.
	doc := `{
		"version": "1.0",
		"exported_at": "2025-11-01T00:00:00Z",
		"data": {
			"objectives": [
				{"id": 1, "title": "One", "driver": "d", "created_date": "2025-11-01T00:00:00Z", "modified_date": "2025-11-01T00:00:00Z"}
			],
			"key_results": [
				{"id": 1, "objective_id": 1, "title": "ok", "metric": "m", "created_date": "2025-11-01T00:00:00Z", "modified_date": "2025-11-01T00:00:00Z"},
				{"id": 2, "objective_id": 99, "title": "bad", "metric": "m", "created_date": "2025-11-01T00:00:00Z", "modified_date": "2025-11-01T00:00:00Z"}
			],
			"monthly_data": [],
			"objective_comments": []
		}
	}`

	err := s.ImportJSON(strings.NewReader(doc))
	require.Error(t, err)

	objectives, err := s.ListObjectives()
	require.NoError(t, err)
	assert.Empty(t, objectives, "failed import leaves the store empty")
}
