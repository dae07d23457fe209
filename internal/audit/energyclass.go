package audit

import (
	"math"

	"github.com/joya-energy/solar-simulation-backend/internal/model"
)

// energyBands maps building types to their BECTh classification thresholds in
// kWh/m²/year. Ordered best to worst; the last band is open-ended.
var energyBands = map[model.BuildingType][]Band{
	model.BuildingOffice: {
		{Max: 85, Grade: "A", Description: "Consommation très faible"},
		{Max: 160, Grade: "B", Description: "Consommation faible"},
		{Max: 230, Grade: "C", Description: "Consommation moyenne"},
		{Max: 300, Grade: "D", Description: "Consommation élevée"},
		{Max: math.Inf(1), Grade: "E", Description: "Consommation très élevée"},
	},
	model.BuildingCommercial: {
		{Max: 120, Grade: "A", Description: "Consommation très faible"},
		{Max: 220, Grade: "B", Description: "Consommation faible"},
		{Max: 320, Grade: "C", Description: "Consommation moyenne"},
		{Max: 420, Grade: "D", Description: "Consommation élevée"},
		{Max: math.Inf(1), Grade: "E", Description: "Consommation très élevée"},
	},
	model.BuildingResidential: {
		{Max: 50, Grade: "A", Description: "Consommation très faible"},
		{Max: 100, Grade: "B", Description: "Consommation faible"},
		{Max: 160, Grade: "C", Description: "Consommation moyenne"},
		{Max: 220, Grade: "D", Description: "Consommation élevée"},
		{Max: math.Inf(1), Grade: "E", Description: "Consommation très élevée"},
	},
	model.BuildingHealth: {
		{Max: 150, Grade: "A", Description: "Consommation très faible"},
		{Max: 260, Grade: "B", Description: "Consommation faible"},
		{Max: 380, Grade: "C", Description: "Consommation moyenne"},
		{Max: 500, Grade: "D", Description: "Consommation élevée"},
		{Max: math.Inf(1), Grade: "E", Description: "Consommation très élevée"},
	},
}

// EnergyClass bands a building's thermal-comfort energy intensity (BECTh,
// kWh/m²/year) computed from its annual heating and cooling loads. Building
// types without a threshold table and non-positive surfaces yield a
// not-applicable result rather than an error.
func EnergyClass(buildingType model.BuildingType, heatingLoadKwh, coolingLoadKwh, conditionedSurfaceM2 float64) ClassificationResult {
	if conditionedSurfaceM2 <= 0 {
		return notApplicable("surface conditionnée non renseignée")
	}

	bands, ok := energyBands[buildingType]
	if !ok {
		return notApplicable("classification énergétique non définie pour ce type de bâtiment")
	}

	becth := (heatingLoadKwh + coolingLoadKwh) / conditionedSurfaceM2
	band := classify(bands, becth)

	return ClassificationResult{
		Grade:       band.Grade,
		Description: band.Description,
		Intensity:   becth,
		Applicable:  true,
	}
}
