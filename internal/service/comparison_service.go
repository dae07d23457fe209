package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/config"
	"github.com/joya-energy/solar-simulation-backend/internal/model"
	"github.com/joya-energy/solar-simulation-backend/internal/repository"
	"github.com/joya-energy/solar-simulation-backend/internal/simulation"
)

// ComparisonService orchestrates the side-by-side financing comparison:
// resolve the location yield, run the shared project calculation and the four
// financing calculators, then persist the finished snapshot.
type ComparisonService struct {
	comparisonRepo *repository.ComparisonRepository
	yieldService   *YieldService
	defaults       config.SimulationConfig
}

// NewComparisonService creates a new ComparisonService with the provided dependencies.
func NewComparisonService(
	comparisonRepo *repository.ComparisonRepository,
	yieldService *YieldService,
	defaults config.SimulationConfig,
) *ComparisonService {
	return &ComparisonService{
		comparisonRepo: comparisonRepo,
		yieldService:   yieldService,
		defaults:       defaults,
	}
}

// Compare runs the full four-way comparison for the given project input and
// persists the result. The returned snapshot carries its assigned ID.
//
// Calculation errors (unknown location, missing sizing) pass through
// untouched so the handler can map them; persistence failures are logged and
// reported as ErrFailedToSaveComparison.
func (s *ComparisonService) Compare(ctx context.Context, input model.ProjectInput) (model.ComparisonResult, error) {
	yield, err := s.yieldService.GetYield(ctx, input.Location)
	if err != nil {
		return model.ComparisonResult{}, err
	}

	params := model.ProjectParameters{
		CostPerKwpDt:             s.defaults.CostPerKwpDt,
		YieldKwhPerKwpYear:       yield.YieldKwhPerKwpYear,
		ElectricityPriceDtPerKwh: s.defaults.ElectricityPriceDtPerKwh,
		AnnualOpexRate:           s.defaults.AnnualOpexRate,
	}

	result, err := simulation.CompareAllSolutions(
		input,
		params,
		s.defaults.CreditParameters(),
		s.defaults.LeasingParameters(),
		s.defaults.EscoParameters(),
	)
	if err != nil {
		return model.ComparisonResult{}, err
	}

	result.ID = uuid.New().String()
	result.CreatedAt = time.Now().UTC()

	if err := s.comparisonRepo.SaveComparison(result); err != nil {
		log.Printf("failed to save comparison %s: %v", result.ID, err)
		return model.ComparisonResult{}, apperrors.ErrFailedToSaveComparison
	}

	return result, nil
}

// GetComparison retrieves a stored comparison snapshot by ID.
func (s *ComparisonService) GetComparison(comparisonID string) (model.ComparisonResult, error) {
	return s.comparisonRepo.GetComparisonOnID(comparisonID)
}

// GetComparisons retrieves stored comparisons, most recent first.
func (s *ComparisonService) GetComparisons(limit int) ([]model.ComparisonResult, error) {
	return s.comparisonRepo.GetComparisons(limit)
}
