package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pulsework/okrboard/pkg/types"
)

// BulkResult aggregates the outcome of a batch mutation. Partial failure is
// normal: per-item errors are collected and the rest of the batch proceeds.
type BulkResult struct {
	Updated int      `json:"updated"`
	Errors  []string `json:"errors"`
}

// CopyTargets copies every key result's target value from sourceMonth into
// each of targetMonths. A key result without a source-month row contributes
// one error string and is skipped; the batch never aborts. Updated counts
// one per (key result, month) write.
func (s *Store) CopyTargets(sourceMonth string, targetMonths []string) (*BulkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return nil, err
	}
	if !types.IsMonth(sourceMonth) {
		return nil, types.ErrInvalidMonth
	}
	for _, m := range targetMonths {
		if !types.IsMonth(m) {
			return nil, types.ErrInvalidMonth
		}
	}

	keyResults, err := s.listKeyResults("ORDER BY objective_id, id")
	if err != nil {
		return nil, err
	}

	result := &BulkResult{Errors: []string{}}
	ts := now()
	for _, kr := range keyResults {
		var target float64
		err := s.db.Get(&target,
			"SELECT target FROM monthly_data WHERE key_result_id = ? AND month = ?", kr.ID, sourceMonth)
		if errors.Is(err, sql.ErrNoRows) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("no data found for key result %d (%s) in month %s", kr.ID, kr.Title, sourceMonth))
			continue
		}
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("reading source month for key result %d (%s): %v", kr.ID, kr.Title, err))
			continue
		}

		for _, month := range targetMonths {
			res, err := s.db.Exec(
				"UPDATE monthly_data SET target = ?, last_updated = ? WHERE key_result_id = ? AND month = ?",
				target, ts, kr.ID, month)
			if err != nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("copying target for key result %d (%s) to %s: %v", kr.ID, kr.Title, month, err))
				continue
			}
			if n, _ := res.RowsAffected(); n > 0 {
				result.Updated++
			}
		}
	}

	s.log.WithFields(map[string]any{
		"source":  sourceMonth,
		"months":  len(targetMonths),
		"updated": result.Updated,
		"errors":  len(result.Errors),
	}).Info("copied target values")

	return result, nil
}
