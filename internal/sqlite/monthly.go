package sqlite

import (
	"fmt"
	"strings"

	"github.com/pulsework/okrboard/pkg/types"
)

const monthlyColumns = "id, key_result_id, month, target, actual, last_updated"

// ListMonthlyData returns the full monthly series of one key result,
// ordered by month ascending.
func (s *Store) ListMonthlyData(keyResultID int64) ([]types.MonthlyData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.listMonthlyData(keyResultID)
}

func (s *Store) listMonthlyData(keyResultID int64) ([]types.MonthlyData, error) {
	data := []types.MonthlyData{}
	err := s.db.Select(&data,
		"SELECT "+monthlyColumns+" FROM monthly_data WHERE key_result_id = ? ORDER BY month", keyResultID)
	if err != nil {
		return nil, fmt.Errorf("listing monthly data for key result %d: %w", keyResultID, err)
	}
	return data, nil
}

// ListMonth returns every key result's cell for one month.
func (s *Store) ListMonth(month string) ([]types.MonthlyData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return nil, err
	}
	if !types.IsMonth(month) {
		return nil, types.ErrInvalidMonth
	}

	data := []types.MonthlyData{}
	err := s.db.Select(&data,
		"SELECT "+monthlyColumns+" FROM monthly_data WHERE month = ? ORDER BY key_result_id", month)
	if err != nil {
		return nil, fmt.Errorf("listing monthly data for %s: %w", month, err)
	}
	return data, nil
}

// UpdateMonthlyData partially updates one (key result, month) cell. Target
// and actual are set independently; an update carrying neither is a no-op.
// The last-updated timestamp is bumped on any real write.
func (s *Store) UpdateMonthlyData(keyResultID int64, month string, u types.MonthlyUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return err
	}
	if !types.IsMonth(month) {
		return types.ErrInvalidMonth
	}
	if u.IsEmpty() {
		return nil
	}
	if err := types.CheckStruct(u); err != nil {
		return err
	}

	sets := []string{}
	args := []any{}
	if u.Target != nil {
		sets = append(sets, "target = ?")
		args = append(args, *u.Target)
	}
	if u.Actual != nil {
		sets = append(sets, "actual = ?")
		args = append(args, *u.Actual)
	}
	sets = append(sets, "last_updated = ?")
	args = append(args, now(), keyResultID, month)

	res, err := s.db.Exec(
		"UPDATE monthly_data SET "+strings.Join(sets, ", ")+" WHERE key_result_id = ? AND month = ?",
		args...,
	)
	if err != nil {
		return fmt.Errorf("updating monthly data for key result %d %s: %w", keyResultID, month, err)
	}
	return requireRows(res, keyResultID)
}
