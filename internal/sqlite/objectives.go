package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pulsework/okrboard/pkg/types"
)

// CreateObjective inserts a new objective and provisions an empty comment
// slot for every month in the tracking window, in one transaction.
func (s *Store) CreateObjective(in types.ObjectiveInput) (*types.Objective, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := types.CheckStruct(in); err != nil {
		return nil, err
	}

	months, err := s.cfg.Months()
	if err != nil {
		return nil, fmt.Errorf("resolving tracking window: %w", err)
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("beginning objective create: %w", err)
	}
	defer tx.Rollback()

	ts := now()
	res, err := tx.Exec(
		"INSERT INTO objectives (title, description, driver, created_date, modified_date) VALUES (?, ?, ?, ?, ?)",
		in.Title, in.Description, in.Driver, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting objective: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading objective id: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO objective_comments (objective_id, month, comment, last_updated) VALUES (?, ?, '', ?)")
	if err != nil {
		return nil, fmt.Errorf("preparing comment provisioning: %w", err)
	}
	defer stmt.Close()
	for _, month := range months {
		if _, err := stmt.Exec(id, month, ts); err != nil {
			return nil, fmt.Errorf("provisioning comment for %s: %w", month, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing objective create: %w", err)
	}
	s.log.WithFields(map[string]any{"objective": id, "months": len(months)}).Debug("created objective")

	return s.getObjective(id)
}

// GetObjective retrieves one objective by ID.
// Returns ErrNotFound if no such objective exists.
func (s *Store) GetObjective(id int64) (*types.Objective, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.getObjective(id)
}

func (s *Store) getObjective(id int64) (*types.Objective, error) {
	var obj types.Objective
	err := s.db.Get(&obj,
		"SELECT id, title, description, driver, created_date, modified_date FROM objectives WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting objective %d: %w", id, err)
	}
	return &obj, nil
}

// ListObjectives returns all objectives ordered by ID.
func (s *Store) ListObjectives() ([]types.Objective, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return nil, err
	}

	return s.listObjectives()
}

func (s *Store) listObjectives() ([]types.Objective, error) {
	objectives := []types.Objective{}
	err := s.db.Select(&objectives,
		"SELECT id, title, description, driver, created_date, modified_date FROM objectives ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing objectives: %w", err)
	}
	return objectives, nil
}

// UpdateObjective mutates title, description, and driver, and bumps the
// modified date. Returns ErrNotFound if no such objective exists.
func (s *Store) UpdateObjective(id int64, in types.ObjectiveInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return err
	}
	if err := types.CheckStruct(in); err != nil {
		return err
	}

	res, err := s.db.Exec(
		"UPDATE objectives SET title = ?, description = ?, driver = ?, modified_date = ? WHERE id = ?",
		in.Title, in.Description, in.Driver, now(), id,
	)
	if err != nil {
		return fmt.Errorf("updating objective %d: %w", id, err)
	}
	return requireRows(res, id)
}

// DeleteObjective removes an objective. Its key results, their monthly data,
// and its comments are removed by the cascade rules asserted at Open.
func (s *Store) DeleteObjective(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return err
	}

	res, err := s.db.Exec("DELETE FROM objectives WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting objective %d: %w", id, err)
	}
	return requireRows(res, id)
}

// requireRows converts a zero-row mutation into ErrNotFound.
func requireRows(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected for %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
