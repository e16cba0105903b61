package sqlite

import (
	"github.com/pulsework/okrboard/pkg/types"
)

// GetObjectiveDetails assembles one objective with all its key results (each
// carrying its full monthly series) and all its comments in a single
// logical read. Returns ErrNotFound if the objective does not exist.
func (s *Store) GetObjectiveDetails(id int64) (*types.ObjectiveDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return nil, err
	}

	obj, err := s.getObjective(id)
	if err != nil {
		return nil, err
	}
	return s.assembleDetails(*obj)
}

// ListObjectiveDetails assembles every objective with full details, ordered
// by objective ID; key results by ID, monthly data by month ascending.
func (s *Store) ListObjectiveDetails() ([]types.ObjectiveDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return nil, err
	}

	objectives := []types.Objective{}
	err := s.db.Select(&objectives,
		"SELECT id, title, description, driver, created_date, modified_date FROM objectives ORDER BY id")
	if err != nil {
		return nil, err
	}

	details := make([]types.ObjectiveDetails, 0, len(objectives))
	for _, obj := range objectives {
		d, err := s.assembleDetails(obj)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

func (s *Store) assembleDetails(obj types.Objective) (*types.ObjectiveDetails, error) {
	keyResults, err := s.listKeyResults("WHERE objective_id = ? ORDER BY id", obj.ID)
	if err != nil {
		return nil, err
	}

	withData := make([]types.KeyResultDetails, 0, len(keyResults))
	for _, kr := range keyResults {
		series, err := s.listMonthlyData(kr.ID)
		if err != nil {
			return nil, err
		}
		withData = append(withData, types.KeyResultDetails{KeyResult: kr, MonthlyData: series})
	}

	comments, err := s.listComments(obj.ID)
	if err != nil {
		return nil, err
	}

	return &types.ObjectiveDetails{
		Objective:  obj,
		KeyResults: withData,
		Comments:   comments,
	}, nil
}
