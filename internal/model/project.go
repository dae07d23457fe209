package model

// SizingKind discriminates how the installation size of a project is specified.
type SizingKind string

const (
	// SizingKindSize means the client chose an installed capacity directly, in kWp.
	SizingKindSize SizingKind = "size"

	// SizingKindBudget means the client chose an investment budget in DT and the
	// capacity is derived by dividing it through the cost per kWp.
	SizingKindBudget SizingKind = "budget"
)

// Sizing is the single sizing input of a project: either an installed capacity
// in kWp or an investment budget in DT, never both. Construct it through
// SizingFromCapacity or SizingFromBudget so the exactly-one-of rule holds by
// construction.
type Sizing struct {
	Kind  SizingKind `json:"kind"`
	Value float64    `json:"value"`
}

// SizingFromCapacity builds a Sizing from an installed capacity in kWp.
func SizingFromCapacity(kwp float64) Sizing {
	return Sizing{Kind: SizingKindSize, Value: kwp}
}

// SizingFromBudget builds a Sizing from an investment budget in DT.
func SizingFromBudget(dt float64) Sizing {
	return Sizing{Kind: SizingKindBudget, Value: dt}
}

// ProjectInput is the user-supplied description of a project to quote.
type ProjectInput struct {
	Location string `json:"location"`
	Sizing   Sizing `json:"sizing"`
}

// ProjectParameters holds the configuration constants a project calculation
// runs against. Immutable per calculation; defaults come from config and the
// yield is location-dependent.
type ProjectParameters struct {
	CostPerKwpDt             float64 `json:"costPerKwpDt"`             // Installed cost per kWp, turnkey
	YieldKwhPerKwpYear       float64 `json:"yieldKwhPerKwpYear"`       // Expected annual producible yield per kWp
	ElectricityPriceDtPerKwh float64 `json:"electricityPriceDtPerKwh"` // Grid electricity price
	AnnualOpexRate           float64 `json:"annualOpexRate"`           // Annual OPEX as a fraction of CAPEX
}

// ProjectCalculation is the financing-independent part of a project quote,
// shared by all four financing solutions.
type ProjectCalculation struct {
	SizeKwp               float64 `json:"sizeKwp"`
	CapexDt               float64 `json:"capexDt"`
	AnnualProductionKwh   float64 `json:"annualProductionKwh"`
	MonthlyProductionKwh  float64 `json:"monthlyProductionKwh"`
	AnnualGrossSavingsDt  float64 `json:"annualGrossSavingsDt"`
	MonthlyGrossSavingsDt float64 `json:"monthlyGrossSavingsDt"`
	AnnualOpexDt          float64 `json:"annualOpexDt"`
	MonthlyOpexDt         float64 `json:"monthlyOpexDt"`
}
