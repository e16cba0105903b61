package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsework/okrboard/pkg/scoring"
	"github.com/pulsework/okrboard/pkg/types"
)

// fixture builds an objective with one key result series spanning
// 2025-10 through 2025-12.
func fixture(inverse bool, cells map[string][2]float64) types.ObjectiveDetails {
	kr := types.KeyResultDetails{
		KeyResult: types.KeyResult{
			ID:          1,
			ObjectiveID: 1,
			Title:       "Raise availability",
			Metric:      "Availability",
			Inverse:     inverse,
		},
	}
	for _, month := range []string{"2025-10", "2025-11", "2025-12"} {
		cell := cells[month]
		kr.MonthlyData = append(kr.MonthlyData, types.MonthlyData{
			KeyResultID: 1,
			Month:       month,
			Target:      cell[0],
			Actual:      cell[1],
		})
	}

	return types.ObjectiveDetails{
		Objective:  types.Objective{ID: 1, Title: "Improve reliability", Driver: "SRE"},
		KeyResults: []types.KeyResultDetails{kr},
		Comments: []types.ObjectiveComment{
			{ObjectiveID: 1, Month: "2025-11", Comment: "Holding steady"},
		},
	}
}

func TestBuildScoresAndTrends(t *testing.T) {
	obj := fixture(false, map[string][2]float64{
		"2025-10": {100, 100},
		"2025-11": {100, 80},
	})

	r := Build([]types.ObjectiveDetails{obj}, "2025-11")
	require.Len(t, r.Sections, 1)
	require.Len(t, r.Sections[0].Rows, 1)

	row := r.Sections[0].Rows[0]
	assert.Equal(t, scoring.StatusGreen, row.Status.Status)
	assert.Equal(t, 80.0, row.Status.CompletionPercentage)
	assert.Equal(t, scoring.DirectionDown, row.Trend.Direction)
	assert.Equal(t, "↓ 20.0%", row.Trend.Display)
	assert.Equal(t, "Holding steady", r.Sections[0].Comment)
}

func TestBuildFiltersUnsetCells(t *testing.T) {
	// No target for the report month: the key result is hidden, and the
	// objective with nothing visible is dropped entirely.
	obj := fixture(false, map[string][2]float64{
		"2025-10": {100, 50},
	})

	r := Build([]types.ObjectiveDetails{obj}, "2025-11")
	assert.Empty(t, r.Sections)
	assert.Zero(t, r.Summary.Total)
}

func TestBuildSummaryCounts(t *testing.T) {
	objectives := []types.ObjectiveDetails{
		fixture(false, map[string][2]float64{"2025-11": {100, 90}}),  // green
		fixture(false, map[string][2]float64{"2025-11": {100, 60}}),  // orange
		fixture(false, map[string][2]float64{"2025-11": {100, 10}}),  // red
		fixture(true, map[string][2]float64{"2025-11": {100, 250}}),  // inverse, red
	}

	r := Build(objectives, "2025-11")
	assert.Equal(t, 4, r.Summary.Total)
	assert.Equal(t, 1, r.Summary.OnTrack)
	assert.Equal(t, 1, r.Summary.UnderWatch)
	assert.Equal(t, 2, r.Summary.OffTrack)
}

func TestBuildMissingPreviousMonth(t *testing.T) {
	// 2025-10 is the window start; the previous month has no row at all.
	obj := fixture(false, map[string][2]float64{"2025-10": {100, 75}})

	r := Build([]types.ObjectiveDetails{obj}, "2025-10")
	require.Len(t, r.Sections, 1)
	row := r.Sections[0].Rows[0]
	assert.Equal(t, scoring.DirectionUnchanged, row.Trend.Direction)
	assert.Equal(t, "N/A", row.Trend.Display)
}

func TestRender(t *testing.T) {
	obj := fixture(false, map[string][2]float64{
		"2025-10": {100, 100},
		"2025-11": {100, 80},
	})

	out := Render(Build([]types.ObjectiveDetails{obj}, "2025-11"))
	assert.True(t, strings.Contains(out, "Improve reliability"))
	assert.True(t, strings.Contains(out, "Raise availability"))
	assert.True(t, strings.Contains(out, "On Track"))
	assert.True(t, strings.Contains(out, "Holding steady"))
}

func TestRenderEmptyReport(t *testing.T) {
	out := Render(Build(nil, "2025-11"))
	assert.NotEmpty(t, out, "empty report still renders a header")
}
