package sqlite

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pulsework/okrboard/pkg/types"
)

// exportVersion identifies the JSON interchange format.
const exportVersion = "1.0"

// ExportDocument is the textual interchange form of the full database.
type ExportDocument struct {
	Version    string     `json:"version"`
	ExportedAt string     `json:"exported_at"`
	Data       ExportData `json:"data"`
}

// ExportData carries the four entity tables.
type ExportData struct {
	Objectives        []types.Objective        `json:"objectives"`
	KeyResults        []types.KeyResult        `json:"key_results"`
	MonthlyData       []types.MonthlyData      `json:"monthly_data"`
	ObjectiveComments []types.ObjectiveComment `json:"objective_comments"`
}

// ExportJSON writes the full database as an interchange document.
func (s *Store) ExportJSON(w io.Writer) error {
	doc, err := s.exportDocument()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}

func (s *Store) exportDocument() (*ExportDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(); err != nil {
		return nil, err
	}

	objectives, err := s.listObjectives()
	if err != nil {
		return nil, err
	}
	keyResults, err := s.listKeyResults("ORDER BY objective_id, id")
	if err != nil {
		return nil, err
	}

	monthly := []types.MonthlyData{}
	if err := s.db.Select(&monthly,
		"SELECT "+monthlyColumns+" FROM monthly_data ORDER BY key_result_id, month"); err != nil {
		return nil, fmt.Errorf("listing monthly data: %w", err)
	}
	comments := []types.ObjectiveComment{}
	if err := s.db.Select(&comments,
		"SELECT "+commentColumns+" FROM objective_comments ORDER BY objective_id, month"); err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	return &ExportDocument{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Data: ExportData{
			Objectives:        objectives,
			KeyResults:        keyResults,
			MonthlyData:       monthly,
			ObjectiveComments: comments,
		},
	}, nil
}

// ImportJSON loads an interchange document into the store. The store must
// be empty; row IDs from the document are preserved so references stay
// intact. The whole load is one transaction: a malformed document leaves
// the store unchanged.
func (s *Store) ImportJSON(r io.Reader) error {
	var doc ExportDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidExport, err)
	}
	if doc.Version == "" {
		return fmt.Errorf("%w: missing version", types.ErrInvalidExport)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return err
	}

	var n int
	if err := s.db.Get(&n, "SELECT COUNT(*) FROM objectives"); err != nil {
		return fmt.Errorf("checking store state: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("%w: store is not empty", types.ErrInvalidExport)
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	for _, o := range doc.Data.Objectives {
		if _, err := tx.Exec(
			"INSERT INTO objectives (id, title, description, driver, created_date, modified_date) VALUES (?, ?, ?, ?, ?, ?)",
			o.ID, o.Title, o.Description, o.Driver, o.CreatedDate, o.ModifiedDate,
		); err != nil {
			return fmt.Errorf("importing objective %d: %w", o.ID, err)
		}
	}
	for _, kr := range doc.Data.KeyResults {
		if _, err := tx.Exec(
			"INSERT INTO key_results (id, objective_id, title, metric, unit, inverse_metric, created_date, modified_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			kr.ID, kr.ObjectiveID, kr.Title, kr.Metric, kr.Unit, inverseFlag(kr.Inverse), kr.CreatedDate, kr.ModifiedDate,
		); err != nil {
			return fmt.Errorf("importing key result %d: %w", kr.ID, err)
		}
	}
	for _, md := range doc.Data.MonthlyData {
		if _, err := tx.Exec(
			"INSERT INTO monthly_data (id, key_result_id, month, target, actual, last_updated) VALUES (?, ?, ?, ?, ?, ?)",
			md.ID, md.KeyResultID, md.Month, md.Target, md.Actual, md.LastUpdated,
		); err != nil {
			return fmt.Errorf("importing monthly data %d: %w", md.ID, err)
		}
	}
	for _, c := range doc.Data.ObjectiveComments {
		if _, err := tx.Exec(
			"INSERT INTO objective_comments (id, objective_id, month, comment, last_updated) VALUES (?, ?, ?, ?, ?)",
			c.ID, c.ObjectiveID, c.Month, c.Comment, c.LastUpdated,
		); err != nil {
			return fmt.Errorf("importing comment %d: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	s.log.WithFields(map[string]any{
		"objectives":  len(doc.Data.Objectives),
		"key_results": len(doc.Data.KeyResults),
	}).Info("imported interchange document")
	return nil
}
