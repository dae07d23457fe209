package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/joya-energy/solar-simulation-backend/internal/config"
	"github.com/joya-energy/solar-simulation-backend/internal/pvgis"
	"github.com/joya-energy/solar-simulation-backend/internal/repository"
	"github.com/joya-energy/solar-simulation-backend/internal/service"
	"github.com/joya-energy/solar-simulation-backend/internal/simulation"
)

// MakeID generates a unique UUID for test data.
func MakeID() string {
	return uuid.New().String()
}

// TestSimulationConfig returns the default simulation parameters used across
// service tests. Values are round so expected results stay hand-checkable.
func TestSimulationConfig() config.SimulationConfig {
	return config.SimulationConfig{
		CostPerKwpDt:             2500,
		ElectricityPriceDtPerKwh: 0.350,
		AnnualOpexRate:           0.01,
		DiscountRate:             0.08,
		HorizonYears:             25,

		CreditAnnualRate:        0.08,
		CreditSelfFinancingRate: 0.20,

		LeasingAnnualRate:        0.095,
		LeasingResidualValueRate: 0.05,
		LeasingSelfFinancingRate: 0.10,
		LeasingOpexMultiplier:    1.2,

		EscoTargetAnnualIRR: 0.10,
		EscoOpexBundled:     false,

		DurationMonths: simulation.DefaultDurationMonths,
	}
}

// NewTestSystemService creates a SystemService against the test database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()
	return service.NewSystemService(db)
}

// NewTestYieldService creates a YieldService backed by the given source.
func NewTestYieldService(t *testing.T, source pvgis.Source) *service.YieldService {
	t.Helper()
	return service.NewYieldService(source)
}

// NewTestComparisonService creates a ComparisonService against the test
// database, with a mock yield source returning the given yield.
func NewTestComparisonService(t *testing.T, db *sql.DB, yield float64) *service.ComparisonService {
	t.Helper()

	comparisonRepo := repository.NewComparisonRepository(db)
	yieldService := service.NewYieldService(NewMockYieldSource(yield))

	return service.NewComparisonService(
		comparisonRepo,
		yieldService,
		TestSimulationConfig(),
	)
}

// NewTestAuditService creates an AuditService against the test database,
// with a mock yield source returning the given yield and the default tariff.
func NewTestAuditService(t *testing.T, db *sql.DB, yield float64) *service.AuditService {
	t.Helper()

	auditRepo := repository.NewAuditRepository(db)
	yieldService := service.NewYieldService(NewMockYieldSource(yield))

	return service.NewAuditService(
		auditRepo,
		yieldService,
		simulation.DefaultTariff(),
		TestSimulationConfig(),
	)
}

// NewTestShareService creates a ShareService with a throwaway fernet key.
func NewTestShareService(t *testing.T, ttl time.Duration) *service.ShareService {
	t.Helper()

	// 32 zero bytes, base64url encoded; fine as a test-only key.
	shareService, err := service.NewShareService("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=", ttl)
	if err != nil {
		t.Fatalf("Failed to create test share service: %v", err)
	}
	return shareService
}
