package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/joya-energy/solar-simulation-backend/internal/model"
	"github.com/joya-energy/solar-simulation-backend/internal/repository"
	"github.com/joya-energy/solar-simulation-backend/internal/simulation"
)

// ComparisonBuilder provides a fluent interface for creating stored
// comparison results. The snapshot is computed with the real calculators so
// the persisted numbers are internally consistent.
//
// Example usage:
//
//	result := testutil.NewComparison().
//	    WithLocation("sfax").
//	    WithSizeKwp(100).
//	    Build(t, db)
type ComparisonBuilder struct {
	ID       string
	Location string
	Sizing   model.Sizing
	Yield    float64
}

// NewComparison creates a ComparisonBuilder with sensible defaults.
func NewComparison() *ComparisonBuilder {
	return &ComparisonBuilder{
		ID:       MakeID(),
		Location: "tunis",
		Sizing:   model.SizingFromCapacity(100),
		Yield:    1600,
	}
}

// WithID sets a custom ID.
func (b *ComparisonBuilder) WithID(id string) *ComparisonBuilder {
	b.ID = id
	return b
}

// WithLocation sets a custom location.
func (b *ComparisonBuilder) WithLocation(location string) *ComparisonBuilder {
	b.Location = location
	return b
}

// WithSizeKwp sizes the project by installed capacity.
func (b *ComparisonBuilder) WithSizeKwp(kwp float64) *ComparisonBuilder {
	b.Sizing = model.SizingFromCapacity(kwp)
	return b
}

// WithBudgetDt sizes the project by investment budget.
func (b *ComparisonBuilder) WithBudgetDt(dt float64) *ComparisonBuilder {
	b.Sizing = model.SizingFromBudget(dt)
	return b
}

// WithYield sets a custom annual yield.
func (b *ComparisonBuilder) WithYield(yield float64) *ComparisonBuilder {
	b.Yield = yield
	return b
}

// Build computes the comparison, stores it and returns the snapshot.
func (b *ComparisonBuilder) Build(t *testing.T, db *sql.DB) model.ComparisonResult {
	t.Helper()

	defaults := TestSimulationConfig()
	params := model.ProjectParameters{
		CostPerKwpDt:             defaults.CostPerKwpDt,
		YieldKwhPerKwpYear:       b.Yield,
		ElectricityPriceDtPerKwh: defaults.ElectricityPriceDtPerKwh,
		AnnualOpexRate:           defaults.AnnualOpexRate,
	}

	result, err := simulation.CompareAllSolutions(
		model.ProjectInput{Location: b.Location, Sizing: b.Sizing},
		params,
		defaults.CreditParameters(),
		defaults.LeasingParameters(),
		defaults.EscoParameters(),
	)
	if err != nil {
		t.Fatalf("Failed to compute test comparison: %v", err)
	}

	result.ID = b.ID
	result.CreatedAt = time.Now().UTC()

	if err := repository.NewComparisonRepository(db).SaveComparison(result); err != nil {
		t.Fatalf("Failed to create test comparison: %v", err)
	}

	return result
}

// CreateComparison creates a comparison for the given location with default sizing.
//
// Example usage:
//
//	result := testutil.CreateComparison(t, db, "sousse")
func CreateComparison(t *testing.T, db *sql.DB, location string) model.ComparisonResult {
	t.Helper()
	return NewComparison().WithLocation(location).Build(t, db)
}
