package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/model"
)

// ComparisonRepository provides data access methods for the comparison table.
// Comparison results are finished snapshots; the solution payloads are stored
// as JSON documents and never queried column-wise.
type ComparisonRepository struct {
	db *sql.DB
}

// NewComparisonRepository creates a new ComparisonRepository with the provided database connection.
func NewComparisonRepository(db *sql.DB) *ComparisonRepository {
	return &ComparisonRepository{db: db}
}

// SaveComparison persists a fully computed comparison result.
func (s *ComparisonRepository) SaveComparison(result model.ComparisonResult) error {
	parameters, err := json.Marshal(result.Parameters)
	if err != nil {
		return fmt.Errorf("failed to marshal parameters: %w", err)
	}
	calculation, err := json.Marshal(result.Calculation)
	if err != nil {
		return fmt.Errorf("failed to marshal calculation: %w", err)
	}
	cash, err := json.Marshal(result.Cash)
	if err != nil {
		return fmt.Errorf("failed to marshal cash solution: %w", err)
	}
	credit, err := json.Marshal(result.Credit)
	if err != nil {
		return fmt.Errorf("failed to marshal credit solution: %w", err)
	}
	leasing, err := json.Marshal(result.Leasing)
	if err != nil {
		return fmt.Errorf("failed to marshal leasing solution: %w", err)
	}
	esco, err := json.Marshal(result.Esco)
	if err != nil {
		return fmt.Errorf("failed to marshal esco solution: %w", err)
	}

	query := `
          INSERT INTO comparison (
              id, location, sizing_kind, sizing_value,
              parameters, calculation, cash, credit, leasing, esco, created_at
          )
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `

	_, err = s.db.Exec(query,
		result.ID,
		result.Input.Location,
		string(result.Input.Sizing.Kind),
		result.Input.Sizing.Value,
		string(parameters),
		string(calculation),
		string(cash),
		string(credit),
		string(leasing),
		string(esco),
		result.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert comparison: %w", err)
	}

	return nil
}

// GetComparisonOnID retrieves a single comparison result by its ID.
func (s *ComparisonRepository) GetComparisonOnID(comparisonID string) (model.ComparisonResult, error) {
	query := `
          SELECT id, location, sizing_kind, sizing_value,
                 parameters, calculation, cash, credit, leasing, esco, created_at
          FROM comparison
          WHERE id = ?
      `

	var result model.ComparisonResult
	var sizingKind string
	var parameters, calculation, cash, credit, leasing, esco, createdAt string

	err := s.db.QueryRow(query, comparisonID).Scan(
		&result.ID,
		&result.Input.Location,
		&sizingKind,
		&result.Input.Sizing.Value,
		&parameters,
		&calculation,
		&cash,
		&credit,
		&leasing,
		&esco,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return model.ComparisonResult{}, apperrors.ErrComparisonNotFound
	}
	if err != nil {
		return model.ComparisonResult{}, fmt.Errorf("failed to query comparison: %w", err)
	}

	result.Input.Sizing.Kind = model.SizingKind(sizingKind)

	if err := json.Unmarshal([]byte(parameters), &result.Parameters); err != nil {
		return model.ComparisonResult{}, fmt.Errorf("failed to unmarshal parameters: %w", err)
	}
	if err := json.Unmarshal([]byte(calculation), &result.Calculation); err != nil {
		return model.ComparisonResult{}, fmt.Errorf("failed to unmarshal calculation: %w", err)
	}
	if err := json.Unmarshal([]byte(cash), &result.Cash); err != nil {
		return model.ComparisonResult{}, fmt.Errorf("failed to unmarshal cash solution: %w", err)
	}
	if err := json.Unmarshal([]byte(credit), &result.Credit); err != nil {
		return model.ComparisonResult{}, fmt.Errorf("failed to unmarshal credit solution: %w", err)
	}
	if err := json.Unmarshal([]byte(leasing), &result.Leasing); err != nil {
		return model.ComparisonResult{}, fmt.Errorf("failed to unmarshal leasing solution: %w", err)
	}
	if err := json.Unmarshal([]byte(esco), &result.Esco); err != nil {
		return model.ComparisonResult{}, fmt.Errorf("failed to unmarshal esco solution: %w", err)
	}

	result.CreatedAt, err = ParseTime(createdAt)
	if err != nil {
		return model.ComparisonResult{}, err
	}

	return result, nil
}

// GetComparisons retrieves stored comparisons, most recent first.
// Returns an empty slice when nothing has been saved yet.
func (s *ComparisonRepository) GetComparisons(limit int) ([]model.ComparisonResult, error) {
	query := `
          SELECT id
          FROM comparison
          ORDER BY created_at DESC
      `
	var args []any

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query comparison table: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan comparison table results: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comparison table: %w", err)
	}

	results := []model.ComparisonResult{}
	for _, id := range ids {
		result, err := s.GetComparisonOnID(id)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}
