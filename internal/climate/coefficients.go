package climate

import (
	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/model"
)

// heatingShape and coolingShape are normalized monthly demand shapes for
// thermal loads in Tunisia. Heating peaks in December-February, cooling in
// June-September. A zone's climatic coefficient for a month is
// 1 + heatingFactor*heatingShape + coolingFactor*coolingShape.
var (
	heatingShape = [12]float64{1.0, 0.85, 0.55, 0.20, 0.0, 0.0, 0.0, 0.0, 0.0, 0.15, 0.55, 0.95}
	coolingShape = [12]float64{0.0, 0.0, 0.05, 0.20, 0.45, 0.80, 1.0, 1.0, 0.70, 0.30, 0.05, 0.0}
)

// zoneWeights holds the heating and cooling amplitude for each climate zone.
// Inland climates swing harder than the coast; the Saharan south is dominated
// by cooling.
type zoneWeights struct {
	HeatingFactor float64
	CoolingFactor float64
}

var zones = map[model.ClimateZone]zoneWeights{
	model.ZoneCoastal: {HeatingFactor: 0.12, CoolingFactor: 0.25},
	model.ZoneInland:  {HeatingFactor: 0.20, CoolingFactor: 0.30},
	model.ZoneSaharan: {HeatingFactor: 0.08, CoolingFactor: 0.45},
}

// buildingUsage holds the monthly usage coefficient of a building type,
// relative to its average month. Offices dip during the August vacation
// period; commercial peaks around summer and year-end trade.
var buildingUsage = map[model.BuildingType][12]float64{
	model.BuildingOffice:      {1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 0.95, 0.80, 1.00, 1.00, 1.00, 0.95},
	model.BuildingCommercial:  {0.95, 0.90, 0.95, 1.00, 1.00, 1.05, 1.10, 1.10, 1.00, 0.95, 1.00, 1.10},
	model.BuildingResidential: {1.00, 0.95, 0.90, 0.90, 0.95, 1.05, 1.15, 1.20, 1.05, 0.90, 0.90, 1.00},
	model.BuildingIndustrial:  {1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 0.90, 1.00, 1.00, 1.00, 1.00},
	model.BuildingHealth:      {1.00, 1.00, 1.00, 1.00, 1.00, 1.05, 1.10, 1.10, 1.05, 1.00, 1.00, 1.00},
}

// ClimaticCoefficient returns the zone's consumption weight for a calendar
// month (1-12).
func ClimaticCoefficient(zone model.ClimateZone, month int) (float64, error) {
	if month < 1 || month > 12 {
		return 0, apperrors.ErrInvalidReferenceMonth
	}
	w, ok := zones[zone]
	if !ok {
		return 0, apperrors.ErrUnknownClimateZone
	}
	return 1 + w.HeatingFactor*heatingShape[month-1] + w.CoolingFactor*coolingShape[month-1], nil
}

// BuildingCoefficient returns the building type's usage weight for a calendar
// month (1-12).
func BuildingCoefficient(buildingType model.BuildingType, month int) (float64, error) {
	if month < 1 || month > 12 {
		return 0, apperrors.ErrInvalidReferenceMonth
	}
	usage, ok := buildingUsage[buildingType]
	if !ok {
		return 0, apperrors.ErrUnknownBuildingType
	}
	return usage[month-1], nil
}

// productionProfile is the relative monthly share of annual PV production for
// Tunisian latitudes: long clear summers, short mild winters. The simulator
// normalizes by the profile sum, so the weights need not total exactly one.
var productionProfile = [12]float64{0.060, 0.065, 0.085, 0.095, 0.105, 0.110, 0.115, 0.110, 0.095, 0.080, 0.060, 0.055}

// ProductionShare returns the fraction of annual production expected in a
// calendar month (1-12), normalized across the year.
func ProductionShare(month int) (float64, error) {
	if month < 1 || month > 12 {
		return 0, apperrors.ErrInvalidReferenceMonth
	}
	var total float64
	for _, p := range productionProfile {
		total += p
	}
	return productionProfile[month-1] / total, nil
}
