package audit

import (
	"math"

	"github.com/joya-energy/solar-simulation-backend/internal/model"
)

// Default emission factors for the Tunisian grid and natural gas, in kg CO2
// per kWh of final energy.
const (
	DefaultElectricityEmissionFactor = 0.512
	DefaultGasEmissionFactor         = 0.202
)

// carbonBands maps building types to their CO2 intensity thresholds in
// kg CO2/m²/year. Ordered best to worst; the last band is open-ended.
var carbonBands = map[model.BuildingType][]Band{
	model.BuildingOffice: {
		{Max: 15, Grade: "A", Description: "Émissions très faibles"},
		{Max: 25, Grade: "B", Description: "Émissions faibles"},
		{Max: 40, Grade: "C", Description: "Émissions moyennes"},
		{Max: 55, Grade: "D", Description: "Émissions élevées"},
		{Max: math.Inf(1), Grade: "E", Description: "Émissions très élevées"},
	},
	model.BuildingCommercial: {
		{Max: 20, Grade: "A", Description: "Émissions très faibles"},
		{Max: 35, Grade: "B", Description: "Émissions faibles"},
		{Max: 55, Grade: "C", Description: "Émissions moyennes"},
		{Max: 80, Grade: "D", Description: "Émissions élevées"},
		{Max: math.Inf(1), Grade: "E", Description: "Émissions très élevées"},
	},
	model.BuildingResidential: {
		{Max: 10, Grade: "A", Description: "Émissions très faibles"},
		{Max: 20, Grade: "B", Description: "Émissions faibles"},
		{Max: 35, Grade: "C", Description: "Émissions moyennes"},
		{Max: 50, Grade: "D", Description: "Émissions élevées"},
		{Max: math.Inf(1), Grade: "E", Description: "Émissions très élevées"},
	},
	model.BuildingHealth: {
		{Max: 25, Grade: "A", Description: "Émissions très faibles"},
		{Max: 45, Grade: "B", Description: "Émissions faibles"},
		{Max: 70, Grade: "C", Description: "Émissions moyennes"},
		{Max: 100, Grade: "D", Description: "Émissions élevées"},
		{Max: math.Inf(1), Grade: "E", Description: "Émissions très élevées"},
	},
}

// CarbonClass bands a building's annual CO2 intensity (kg CO2/m²/year).
// Unsupported building types and non-positive surfaces yield a not-applicable
// result rather than an error.
func CarbonClass(buildingType model.BuildingType, totalCo2Kg, conditionedSurfaceM2 float64) ClassificationResult {
	if conditionedSurfaceM2 <= 0 {
		return notApplicable("surface conditionnée non renseignée")
	}

	bands, ok := carbonBands[buildingType]
	if !ok {
		return notApplicable("classification carbone non définie pour ce type de bâtiment")
	}

	intensity := totalCo2Kg / conditionedSurfaceM2
	band := classify(bands, intensity)

	return ClassificationResult{
		Grade:       band.Grade,
		Description: band.Description,
		Intensity:   intensity,
		Applicable:  true,
	}
}

// Co2Input is the annual final energy consumption of a site by carrier, with
// optional overrides of the default emission factors.
type Co2Input struct {
	ElectricityConsumptionKwh float64
	GasConsumptionKwh         float64
	ElectricityFactor         float64 // kg CO2 per kWh; 0 selects the default
	GasFactor                 float64 // kg CO2 per kWh; 0 selects the default
}

// Co2Emissions breaks down the annual carbon footprint of a site by energy
// carrier. Masses are kg except TotalCo2Tons.
type Co2Emissions struct {
	Co2FromElectricityKg float64 `json:"co2FromElectricity"`
	Co2FromGasKg         float64 `json:"co2FromGas"`
	TotalCo2Kg           float64 `json:"totalCo2Kg"`
	TotalCo2Tons         float64 `json:"totalCo2Tons"`
}

// ComputeCo2Emissions converts annual electricity and gas consumption into
// CO2 masses using the carrier emission factors.
func ComputeCo2Emissions(input Co2Input) Co2Emissions {
	electricityFactor := input.ElectricityFactor
	if electricityFactor == 0 {
		electricityFactor = DefaultElectricityEmissionFactor
	}
	gasFactor := input.GasFactor
	if gasFactor == 0 {
		gasFactor = DefaultGasEmissionFactor
	}

	fromElectricity := input.ElectricityConsumptionKwh * electricityFactor
	fromGas := input.GasConsumptionKwh * gasFactor
	total := fromElectricity + fromGas

	return Co2Emissions{
		Co2FromElectricityKg: fromElectricity,
		Co2FromGasKg:         fromGas,
		TotalCo2Kg:           total,
		TotalCo2Tons:         total / 1000,
	}
}
