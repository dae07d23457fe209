package request

// AuditSimulationRequest is the body of a solar-audit simulation run. The
// consumption baseline comes from a single monthly bill; the climate zone is
// derived from the location.
type AuditSimulationRequest struct {
	Location       string  `json:"location"`
	BuildingType   string  `json:"buildingType"`
	MonthlyBillDt  float64 `json:"monthlyBillDt"`
	ReferenceMonth int     `json:"referenceMonth"`
	SizeKwp        float64 `json:"sizeKwp"`
}

// EnergyClassRequest is the body of a thermal-performance classification.
type EnergyClassRequest struct {
	BuildingType         string  `json:"buildingType"`
	HeatingLoadKwh       float64 `json:"heatingLoadKwh"`
	CoolingLoadKwh       float64 `json:"coolingLoadKwh"`
	ConditionedSurfaceM2 float64 `json:"conditionedSurfaceM2"`
}

// CarbonClassRequest is the body of a CO2 intensity classification. The
// emission factors are optional; zero selects the national defaults.
type CarbonClassRequest struct {
	BuildingType              string  `json:"buildingType"`
	ElectricityConsumptionKwh float64 `json:"electricityConsumptionKwh"`
	GasConsumptionKwh         float64 `json:"gasConsumptionKwh"`
	ConditionedSurfaceM2      float64 `json:"conditionedSurfaceM2"`
	ElectricityFactor         float64 `json:"electricityFactor,omitempty"`
	GasFactor                 float64 `json:"gasFactor,omitempty"`
}

// HotWaterRequest is the body of a domestic hot water load computation.
// Efficiency zero selects the default for the chosen system.
type HotWaterRequest struct {
	DemandKwhPerM2    float64 `json:"demandKwhPerM2"`
	UtilizationFactor float64 `json:"utilizationFactor"`
	System            string  `json:"system"`
	Efficiency        float64 `json:"efficiency,omitempty"`
}
