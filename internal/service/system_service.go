package service

import (
	"database/sql"

	"github.com/joya-energy/solar-simulation-backend/internal/database"
	"github.com/joya-energy/solar-simulation-backend/internal/version"
)

// SystemService answers liveness and build-identity questions for the API.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// CheckHealth reports whether the database is reachable.
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns the build version stamped at link time.
func (s *SystemService) CheckVersion() string {
	return version.Version
}
