package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pulsework/okrboard/pkg/types"
)

// keyResultRow is the persisted shape of a key result. The inverse flag
// crosses the storage boundary as INTEGER 0/1; this row type is the single
// place that conversion happens.
type keyResultRow struct {
	types.KeyResult
	InverseMetric int `db:"inverse_metric"`
}

func (r keyResultRow) toDomain() types.KeyResult {
	kr := r.KeyResult
	kr.Inverse = r.InverseMetric == 1
	return kr
}

func inverseFlag(inverse bool) int {
	if inverse {
		return 1
	}
	return 0
}

const keyResultColumns = "id, objective_id, title, metric, unit, inverse_metric, created_date, modified_date"

// CreateKeyResult inserts a new key result under an objective and provisions
// a zeroed monthly row for every month in the tracking window, in one
// transaction. Returns ErrNotFound if the objective does not exist.
func (s *Store) CreateKeyResult(objectiveID int64, in types.KeyResultInput) (*types.KeyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := types.CheckStruct(in); err != nil {
		return nil, err
	}
	if _, err := s.getObjective(objectiveID); err != nil {
		return nil, err
	}

	months, err := s.cfg.Months()
	if err != nil {
		return nil, fmt.Errorf("resolving tracking window: %w", err)
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("beginning key result create: %w", err)
	}
	defer tx.Rollback()

	ts := now()
	res, err := tx.Exec(
		"INSERT INTO key_results (objective_id, title, metric, unit, inverse_metric, created_date, modified_date) VALUES (?, ?, ?, ?, ?, ?, ?)",
		objectiveID, in.Title, in.Metric, in.Unit, inverseFlag(in.Inverse), ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting key result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading key result id: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO monthly_data (key_result_id, month, target, actual, last_updated) VALUES (?, ?, 0, 0, ?)")
	if err != nil {
		return nil, fmt.Errorf("preparing monthly provisioning: %w", err)
	}
	defer stmt.Close()
	for _, month := range months {
		if _, err := stmt.Exec(id, month, ts); err != nil {
			return nil, fmt.Errorf("provisioning month %s: %w", month, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing key result create: %w", err)
	}
	s.log.WithFields(map[string]any{"key_result": id, "objective": objectiveID, "months": len(months)}).Debug("created key result")

	return s.getKeyResult(id)
}

// GetKeyResult retrieves one key result by ID.
// Returns ErrNotFound if no such key result exists.
func (s *Store) GetKeyResult(id int64) (*types.KeyResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.getKeyResult(id)
}

func (s *Store) getKeyResult(id int64) (*types.KeyResult, error) {
	var row keyResultRow
	err := s.db.Get(&row, "SELECT "+keyResultColumns+" FROM key_results WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting key result %d: %w", id, err)
	}
	kr := row.toDomain()
	return &kr, nil
}

// ListKeyResults returns the key results of one objective ordered by ID.
func (s *Store) ListKeyResults(objectiveID int64) ([]types.KeyResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.listKeyResults("WHERE objective_id = ? ORDER BY id", objectiveID)
}

// ListAllKeyResults returns every key result ordered by objective then ID.
func (s *Store) ListAllKeyResults() ([]types.KeyResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.listKeyResults("ORDER BY objective_id, id")
}

func (s *Store) listKeyResults(clause string, args ...any) ([]types.KeyResult, error) {
	var rows []keyResultRow
	if err := s.db.Select(&rows, "SELECT "+keyResultColumns+" FROM key_results "+clause, args...); err != nil {
		return nil, fmt.Errorf("listing key results: %w", err)
	}
	results := make([]types.KeyResult, len(rows))
	for i, row := range rows {
		results[i] = row.toDomain()
	}
	return results, nil
}

// UpdateKeyResult mutates title, metric, unit, and the inverse flag, and
// bumps the modified date. Returns ErrNotFound if no such key result exists.
func (s *Store) UpdateKeyResult(id int64, in types.KeyResultInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return err
	}
	if err := types.CheckStruct(in); err != nil {
		return err
	}

	res, err := s.db.Exec(
		"UPDATE key_results SET title = ?, metric = ?, unit = ?, inverse_metric = ?, modified_date = ? WHERE id = ?",
		in.Title, in.Metric, in.Unit, inverseFlag(in.Inverse), now(), id,
	)
	if err != nil {
		return fmt.Errorf("updating key result %d: %w", id, err)
	}
	return requireRows(res, id)
}

// DeleteKeyResult removes a key result; its monthly data rows are removed by
// the cascade rules asserted at Open.
func (s *Store) DeleteKeyResult(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return err
	}

	res, err := s.db.Exec("DELETE FROM key_results WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting key result %d: %w", id, err)
	}
	return requireRows(res, id)
}
