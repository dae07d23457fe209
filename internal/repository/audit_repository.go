package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/model"
)

// AuditRepository provides data access methods for the audit_simulation table.
// The monthly series and the projection are stored as JSON documents.
type AuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new AuditRepository with the provided database connection.
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// SaveSimulation persists a finished audit simulation snapshot.
func (s *AuditRepository) SaveSimulation(sim model.AuditSimulation) error {
	consumption, err := json.Marshal(sim.Consumption)
	if err != nil {
		return fmt.Errorf("failed to marshal consumption series: %w", err)
	}
	production, err := json.Marshal(sim.Production)
	if err != nil {
		return fmt.Errorf("failed to marshal production series: %w", err)
	}
	economics, err := json.Marshal(sim.Economics)
	if err != nil {
		return fmt.Errorf("failed to marshal economics series: %w", err)
	}
	projection, err := json.Marshal(sim.Projection)
	if err != nil {
		return fmt.Errorf("failed to marshal projection: %w", err)
	}

	query := `
          INSERT INTO audit_simulation (
              id, location, building_type, climate_zone,
              consumption, production, economics, projection, created_at
          )
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
      `

	_, err = s.db.Exec(query,
		sim.ID,
		sim.Location,
		string(sim.BuildingType),
		string(sim.ClimateZone),
		string(consumption),
		string(production),
		string(economics),
		string(projection),
		sim.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit simulation: %w", err)
	}

	return nil
}

// GetSimulationOnID retrieves a single audit simulation by its ID.
func (s *AuditRepository) GetSimulationOnID(simulationID string) (model.AuditSimulation, error) {
	query := `
          SELECT id, location, building_type, climate_zone,
                 consumption, production, economics, projection, created_at
          FROM audit_simulation
          WHERE id = ?
      `

	var sim model.AuditSimulation
	var buildingType, climateZone string
	var consumption, production, economics, projection, createdAt string

	err := s.db.QueryRow(query, simulationID).Scan(
		&sim.ID,
		&sim.Location,
		&buildingType,
		&climateZone,
		&consumption,
		&production,
		&economics,
		&projection,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return model.AuditSimulation{}, apperrors.ErrAuditNotFound
	}
	if err != nil {
		return model.AuditSimulation{}, fmt.Errorf("failed to query audit simulation: %w", err)
	}

	sim.BuildingType = model.BuildingType(buildingType)
	sim.ClimateZone = model.ClimateZone(climateZone)

	if err := json.Unmarshal([]byte(consumption), &sim.Consumption); err != nil {
		return model.AuditSimulation{}, fmt.Errorf("failed to unmarshal consumption series: %w", err)
	}
	if err := json.Unmarshal([]byte(production), &sim.Production); err != nil {
		return model.AuditSimulation{}, fmt.Errorf("failed to unmarshal production series: %w", err)
	}
	if err := json.Unmarshal([]byte(economics), &sim.Economics); err != nil {
		return model.AuditSimulation{}, fmt.Errorf("failed to unmarshal economics series: %w", err)
	}
	if err := json.Unmarshal([]byte(projection), &sim.Projection); err != nil {
		return model.AuditSimulation{}, fmt.Errorf("failed to unmarshal projection: %w", err)
	}

	sim.CreatedAt, err = ParseTime(createdAt)
	if err != nil {
		return model.AuditSimulation{}, err
	}

	return sim, nil
}
