package pvgis

// Response models the subset of the PVGIS PVcalc JSON output the simulator
// consumes: the yearly energy total for the requested peak power.
type Response struct {
	Outputs Outputs `json:"outputs"`
}

// Outputs carries the aggregated production figures.
type Outputs struct {
	Totals  Totals    `json:"totals"`
	Monthly []Monthly `json:"monthly,omitempty"`
}

// Totals holds the fixed-mounting aggregate block.
type Totals struct {
	Fixed Fixed `json:"fixed"`
}

// Fixed holds the long-term yearly figures for a fixed installation.
type Fixed struct {
	AnnualEnergyKwh float64 `json:"E_y"` // yearly PV energy output for the requested peak power
	YearToDayRatio  float64 `json:"SD_y,omitempty"`
}

// Monthly is one month of long-term average production.
type Monthly struct {
	Month     int     `json:"month"`
	EnergyKwh float64 `json:"E_m"`
}
