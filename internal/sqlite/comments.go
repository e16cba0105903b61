package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pulsework/okrboard/pkg/types"
)

const commentColumns = "id, objective_id, month, comment, last_updated"

// ListComments returns the monthly comments of one objective, ordered by
// month ascending.
func (s *Store) ListComments(objectiveID int64) ([]types.ObjectiveComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.listComments(objectiveID)
}

func (s *Store) listComments(objectiveID int64) ([]types.ObjectiveComment, error) {
	comments := []types.ObjectiveComment{}
	err := s.db.Select(&comments,
		"SELECT "+commentColumns+" FROM objective_comments WHERE objective_id = ? ORDER BY month", objectiveID)
	if err != nil {
		return nil, fmt.Errorf("listing comments for objective %d: %w", objectiveID, err)
	}
	return comments, nil
}

// GetComment returns the comment of one (objective, month) slot.
// Returns ErrNotFound if no slot exists.
func (s *Store) GetComment(objectiveID int64, month string) (*types.ObjectiveComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return nil, err
	}
	if !types.IsMonth(month) {
		return nil, types.ErrInvalidMonth
	}

	var c types.ObjectiveComment
	err := s.db.Get(&c,
		"SELECT "+commentColumns+" FROM objective_comments WHERE objective_id = ? AND month = ?",
		objectiveID, month)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting comment for objective %d %s: %w", objectiveID, month, err)
	}
	return &c, nil
}

// UpsertComment writes the comment text for one (objective, month) slot,
// inserting the slot when absent and overwriting when present.
// Returns ErrNotFound if the objective does not exist.
func (s *Store) UpsertComment(objectiveID int64, month, comment string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return err
	}
	if !types.IsMonth(month) {
		return types.ErrInvalidMonth
	}
	if err := types.CheckComment(comment); err != nil {
		return err
	}
	if _, err := s.getObjective(objectiveID); err != nil {
		return err
	}

	_, err := s.db.Exec(`INSERT INTO objective_comments (objective_id, month, comment, last_updated)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(objective_id, month) DO UPDATE SET
			comment = excluded.comment,
			last_updated = excluded.last_updated`,
		objectiveID, month, comment, now())
	if err != nil {
		return fmt.Errorf("upserting comment for objective %d %s: %w", objectiveID, month, err)
	}
	return nil
}
