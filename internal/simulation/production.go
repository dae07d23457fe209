package simulation

import (
	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/climate"
	"github.com/joya-energy/solar-simulation-backend/internal/model"
)

// ProductionInput describes one year of PV simulation: an installed capacity,
// the site's annual producible yield, and the monthly consumption curve to
// net the production against.
type ProductionInput struct {
	SizeKwp              float64
	AnnualYieldKwhPerKwp float64
	MonthlyConsumption   []model.MonthlyConsumptionData
}

// ProductionResult is the simulated year: twelve rows plus annual totals.
type ProductionResult struct {
	Months                  []model.MonthlyPVProductionData
	AnnualProductionKwh     float64
	AnnualConsumptionKwh    float64
	AnnualNetConsumptionKwh float64
}

// SimulateProduction apportions the annual yield across months using the
// seasonal production profile and nets it against consumption.
//
// Net-metering policy: a month's surplus becomes an energy credit applied to
// the following month's net consumption only. Credit the next month cannot
// absorb is forfeited, not refunded and not banked further; only surplus
// actually produced in a month rolls forward. Net consumption is floored at
// zero.
func SimulateProduction(input ProductionInput) (ProductionResult, error) {
	if input.SizeKwp <= 0 || input.AnnualYieldKwhPerKwp <= 0 {
		return ProductionResult{}, apperrors.ErrNonPositiveAmount
	}
	if len(input.MonthlyConsumption) != MonthsPerYear {
		return ProductionResult{}, apperrors.ErrInvalidReferenceMonth
	}

	result := ProductionResult{Months: make([]model.MonthlyPVProductionData, MonthsPerYear)}

	var carriedCredit float64
	for m := 1; m <= MonthsPerYear; m++ {
		share, err := climate.ProductionShare(m)
		if err != nil {
			return ProductionResult{}, err
		}

		production := input.SizeKwp * input.AnnualYieldKwhPerKwp * share
		consumption := input.MonthlyConsumption[m-1].EstimatedConsumptionKwh

		gross := consumption - production

		var surplus float64
		if gross < 0 {
			surplus = -gross
		}

		net := gross - carriedCredit
		if net < 0 {
			net = 0
		}

		result.Months[m-1] = model.MonthlyPVProductionData{
			Month:             m,
			ConsumptionKwh:    consumption,
			ProductionKwh:     production,
			NetConsumptionKwh: net,
			EnergyCreditKwh:   surplus,
		}

		result.AnnualProductionKwh += production
		result.AnnualConsumptionKwh += consumption
		result.AnnualNetConsumptionKwh += net

		carriedCredit = surplus
	}

	return result, nil
}
