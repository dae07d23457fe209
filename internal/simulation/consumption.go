package simulation

import (
	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/climate"
	"github.com/joya-energy/solar-simulation-backend/internal/model"
)

// ConsumptionInput describes one measured month of consumption to expand
// into a full-year curve. BaselineKwh is the consumption of the reference
// month, typically recovered from a bill through tariff inversion.
type ConsumptionInput struct {
	BaselineKwh    float64
	ReferenceMonth int // 1-12
	BuildingType   model.BuildingType
	ClimateZone    model.ClimateZone
}

// EstimateConsumption expands a single measured month into twelve monthly
// estimates by scaling the baseline with each month's effective coefficient
// (climatic weight times building-usage weight) relative to the reference
// month's. The reference month therefore reproduces the measured value
// exactly; the yearly total is deliberately skewed by seasonality.
func EstimateConsumption(input ConsumptionInput) ([]model.MonthlyConsumptionData, error) {
	if input.ReferenceMonth < 1 || input.ReferenceMonth > 12 {
		return nil, apperrors.ErrInvalidReferenceMonth
	}
	if input.BaselineKwh <= 0 {
		return nil, apperrors.ErrNonPositiveAmount
	}

	referenceClimatic, err := climate.ClimaticCoefficient(input.ClimateZone, input.ReferenceMonth)
	if err != nil {
		return nil, err
	}
	referenceBuilding, err := climate.BuildingCoefficient(input.BuildingType, input.ReferenceMonth)
	if err != nil {
		return nil, err
	}
	referenceEffective := referenceClimatic * referenceBuilding

	months := make([]model.MonthlyConsumptionData, MonthsPerYear)
	for m := 1; m <= MonthsPerYear; m++ {
		climatic, err := climate.ClimaticCoefficient(input.ClimateZone, m)
		if err != nil {
			return nil, err
		}
		building, err := climate.BuildingCoefficient(input.BuildingType, m)
		if err != nil {
			return nil, err
		}
		effective := climatic * building

		months[m-1] = model.MonthlyConsumptionData{
			Month:                   m,
			ClimaticCoefficient:     climatic,
			BuildingCoefficient:     building,
			EffectiveCoefficient:    effective,
			EstimatedConsumptionKwh: input.BaselineKwh * effective / referenceEffective,
		}
	}

	return months, nil
}
