package simulation

import (
	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/model"
)

// CalculateProject derives the financing-independent project figures shared
// by all four financing solutions: installed size, CAPEX, production, gross
// savings and OPEX. Monthly figures are exactly the annual figures divided
// by twelve.
func CalculateProject(input model.ProjectInput, params model.ProjectParameters) (model.ProjectCalculation, error) {
	var sizeKwp float64
	switch input.Sizing.Kind {
	case model.SizingKindSize:
		sizeKwp = input.Sizing.Value
	case model.SizingKindBudget:
		sizeKwp = input.Sizing.Value / params.CostPerKwpDt
	default:
		return model.ProjectCalculation{}, apperrors.ErrSizingRequired
	}

	if input.Sizing.Value <= 0 {
		return model.ProjectCalculation{}, apperrors.ErrNonPositiveAmount
	}

	capex := sizeKwp * params.CostPerKwpDt
	annualProduction := sizeKwp * params.YieldKwhPerKwpYear
	annualGrossSavings := annualProduction * params.ElectricityPriceDtPerKwh
	annualOpex := capex * params.AnnualOpexRate

	return model.ProjectCalculation{
		SizeKwp:               sizeKwp,
		CapexDt:               capex,
		AnnualProductionKwh:   annualProduction,
		MonthlyProductionKwh:  annualProduction / MonthsPerYear,
		AnnualGrossSavingsDt:  annualGrossSavings,
		MonthlyGrossSavingsDt: annualGrossSavings / MonthsPerYear,
		AnnualOpexDt:          annualOpex,
		MonthlyOpexDt:         annualOpex / MonthsPerYear,
	}, nil
}
