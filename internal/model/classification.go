package model

// BuildingType is the closed set of building usages the coefficient and
// classification tables are keyed by.
type BuildingType string

const (
	BuildingOffice      BuildingType = "office"
	BuildingCommercial  BuildingType = "commercial"
	BuildingResidential BuildingType = "residential"
	BuildingIndustrial  BuildingType = "industrial"
	BuildingHealth      BuildingType = "health"
)

// ClimateZone is the closed set of Tunisian climate zones the seasonal
// weight tables are keyed by.
type ClimateZone string

const (
	ZoneCoastal ClimateZone = "coastal"
	ZoneInland  ClimateZone = "inland"
	ZoneSaharan ClimateZone = "saharan"
)
