package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsework/okrboard/pkg/types"
)

func floatPtr(v float64) *float64 { return &v }

func TestUpdateMonthlyDataPartial(t *testing.T) {
	s := setupStore(t)
	obj := mustCreateObjective(t, s, "Improve reliability")
	kr, err := s.CreateKeyResult(obj.ID, types.KeyResultInput{Title: "Raise availability", Metric: "Availability"})
	require.NoError(t, err)

	// Set target only.
	err = s.UpdateMonthlyData(kr.ID, "2025-11", types.MonthlyUpdate{Target: floatPtr(99.9)})
	require.NoError(t, err)

	// Set actual only; target must survive.
	err = s.UpdateMonthlyData(kr.ID, "2025-11", types.MonthlyUpdate{Actual: floatPtr(99.5)})
	require.NoError(t, err)

	series, err := s.ListMonthlyData(kr.ID)
	require.NoError(t, err)
	for _, md := range series {
		if md.Month == "2025-11" {
			assert.Equal(t, 99.9, md.Target)
			assert.Equal(t, 99.5, md.Actual)
			assert.NotEmpty(t, md.LastUpdated)
		} else {
			assert.Zero(t, md.Target, "other months untouched")
			assert.Zero(t, md.Actual)
		}
	}
}

func TestUpdateMonthlyDataEmptyIsNoOp(t *testing.T) {
	s := setupStore(t)
	obj := mustCreateObjective(t, s, "Improve reliability")
	kr, err := s.CreateKeyResult(obj.ID, types.KeyResultInput{Title: "t", Metric: "m"})
	require.NoError(t, err)

	before, err := s.ListMonthlyData(kr.ID)
	require.NoError(t, err)

	require.NoError(t, s.UpdateMonthlyData(kr.ID, "2025-11", types.MonthlyUpdate{}))

	after, err := s.ListMonthlyData(kr.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after, "empty update changes nothing, not even timestamps")
}

func TestUpdateMonthlyDataValidation(t *testing.T) {
	s := setupStore(t)
	obj := mustCreateObjective(t, s, "Improve reliability")
	kr, err := s.CreateKeyResult(obj.ID, types.KeyResultInput{Title: "t", Metric: "m"})
	require.NoError(t, err)

	err = s.UpdateMonthlyData(kr.ID, "not-a-month", types.MonthlyUpdate{Target: floatPtr(1)})
	assert.ErrorIs(t, err, types.ErrInvalidMonth)

	err = s.UpdateMonthlyData(kr.ID, "2025-11", types.MonthlyUpdate{Target: floatPtr(-5)})
	var verr *types.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateMonthlyDataOutsideWindow(t *testing.T) {
	s := setupStore(t)
	obj := mustCreateObjective(t, s, "Improve reliability")
	kr, err := s.CreateKeyResult(obj.ID, types.KeyResultInput{Title: "t", Metric: "m"})
	require.NoError(t, err)

	// 2027-01 is a valid month but has no provisioned row.
	err = s.UpdateMonthlyData(kr.ID, "2027-01", types.MonthlyUpdate{Target: floatPtr(1)})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListMonth(t *testing.T) {
	s := setupStore(t)
	obj := mustCreateObjective(t, s, "Improve reliability")
	_, err := s.CreateKeyResult(obj.ID, types.KeyResultInput{Title: "A", Metric: "m"})
	require.NoError(t, err)
	_, err = s.CreateKeyResult(obj.ID, types.KeyResultInput{Title: "B", Metric: "m"})
	require.NoError(t, err)

	cells, err := s.ListMonth("2025-11")
	require.NoError(t, err)
	assert.Len(t, cells, 2, "one cell per key result")

	_, err = s.ListMonth("202511")
	assert.ErrorIs(t, err, types.ErrInvalidMonth)
}
