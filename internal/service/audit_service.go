package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/audit"
	"github.com/joya-energy/solar-simulation-backend/internal/climate"
	"github.com/joya-energy/solar-simulation-backend/internal/config"
	"github.com/joya-energy/solar-simulation-backend/internal/model"
	"github.com/joya-energy/solar-simulation-backend/internal/repository"
	"github.com/joya-energy/solar-simulation-backend/internal/simulation"
)

// AuditInput describes one solar-audit run. The client supplies a single
// monthly bill; consumption is recovered by inverting the tariff, expanded
// into a full-year curve, netted against simulated production and projected
// over the economic horizon.
type AuditInput struct {
	Location       string
	BuildingType   model.BuildingType
	MonthlyBillDt  float64
	ReferenceMonth int
	SizeKwp        float64
}

// AuditService orchestrates the full audit pipeline and persists the
// resulting snapshot. Classification is a separate, stateless concern and is
// delegated to the audit package directly.
type AuditService struct {
	auditRepo    *repository.AuditRepository
	yieldService *YieldService
	tariff       simulation.TariffEngine
	defaults     config.SimulationConfig
}

// NewAuditService creates a new AuditService with the provided dependencies.
func NewAuditService(
	auditRepo *repository.AuditRepository,
	yieldService *YieldService,
	tariff simulation.TariffEngine,
	defaults config.SimulationConfig,
) *AuditService {
	return &AuditService{
		auditRepo:    auditRepo,
		yieldService: yieldService,
		tariff:       tariff,
		defaults:     defaults,
	}
}

// RunSimulation executes the audit pipeline:
//
//  1. Invert the tariff to recover the billed kWh of the reference month.
//  2. Expand that single month into a twelve-month consumption estimate.
//  3. Simulate PV production against the estimated curve.
//  4. Bill the year with and without PV and project over the horizon.
//
// The climate zone is derived from the location. The finished snapshot is
// persisted and returned with its assigned ID.
func (s *AuditService) RunSimulation(ctx context.Context, input AuditInput) (model.AuditSimulation, error) {
	if input.MonthlyBillDt <= 0 || input.SizeKwp <= 0 {
		return model.AuditSimulation{}, apperrors.ErrNonPositiveAmount
	}

	zone, err := climate.ZoneFor(input.Location)
	if err != nil {
		return model.AuditSimulation{}, err
	}
	climateZone := model.ClimateZone(zone)

	baselineKwh := s.tariff.InvertBill(input.MonthlyBillDt)

	consumption, err := simulation.EstimateConsumption(simulation.ConsumptionInput{
		BaselineKwh:    baselineKwh,
		ReferenceMonth: input.ReferenceMonth,
		BuildingType:   input.BuildingType,
		ClimateZone:    climateZone,
	})
	if err != nil {
		return model.AuditSimulation{}, err
	}

	yield, err := s.yieldService.GetYield(ctx, input.Location)
	if err != nil {
		return model.AuditSimulation{}, err
	}

	production, err := simulation.SimulateProduction(simulation.ProductionInput{
		SizeKwp:              input.SizeKwp,
		AnnualYieldKwhPerKwp: yield.YieldKwhPerKwpYear,
		MonthlyConsumption:   consumption,
	})
	if err != nil {
		return model.AuditSimulation{}, err
	}

	capex := input.SizeKwp * s.defaults.CostPerKwpDt

	projection, err := simulation.ProjectEconomics(simulation.ProjectionInput{
		Production:          production,
		Tariff:              s.tariff,
		InitialInvestmentDt: capex,
		AnnualOpexDt:        capex * s.defaults.AnnualOpexRate,
		DiscountRate:        s.defaults.DiscountRate,
		HorizonYears:        s.defaults.HorizonYears,
	})
	if err != nil {
		return model.AuditSimulation{}, err
	}

	sim := model.AuditSimulation{
		ID:           uuid.New().String(),
		Location:     input.Location,
		BuildingType: input.BuildingType,
		ClimateZone:  climateZone,
		Consumption:  consumption,
		Production:   production.Months,
		Economics:    projection.Monthly,
		Projection:   projection.Projection,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.auditRepo.SaveSimulation(sim); err != nil {
		log.Printf("failed to save audit simulation %s: %v", sim.ID, err)
		return model.AuditSimulation{}, apperrors.ErrFailedToSaveAudit
	}

	return sim, nil
}

// GetSimulation retrieves a stored audit simulation by ID.
func (s *AuditService) GetSimulation(simulationID string) (model.AuditSimulation, error) {
	return s.auditRepo.GetSimulationOnID(simulationID)
}

// ClassifyEnergy grades a building's thermal performance from its heating and
// cooling loads.
func (s *AuditService) ClassifyEnergy(buildingType model.BuildingType, heatingKwh, coolingKwh, surfaceM2 float64) audit.ClassificationResult {
	return audit.EnergyClass(buildingType, heatingKwh, coolingKwh, surfaceM2)
}

// ClassifyCarbon computes total CO2 emissions from the energy mix, then
// grades the per-surface intensity.
func (s *AuditService) ClassifyCarbon(buildingType model.BuildingType, input audit.Co2Input, surfaceM2 float64) (audit.Co2Emissions, audit.ClassificationResult) {
	emissions := audit.ComputeCo2Emissions(input)
	class := audit.CarbonClass(buildingType, emissions.TotalCo2Kg, surfaceM2)
	return emissions, class
}
