package model

import "time"

// SolutionType tags the four financing structures offered to clients.
type SolutionType string

const (
	SolutionCash    SolutionType = "cash"
	SolutionCredit  SolutionType = "credit"
	SolutionLeasing SolutionType = "leasing"
	SolutionEsco    SolutionType = "esco"
)

// FinancingSolution is the base shape shared by all four financing structures
// so the caller can present them side by side. All monetary figures are DT.
type FinancingSolution struct {
	Type                SolutionType `json:"type"`
	InitialInvestmentDt float64      `json:"initialInvestmentDt"`
	MonthlyPaymentDt    float64      `json:"monthlyPaymentDt"`
	MonthlyOpexDt       float64      `json:"monthlyOpexDt"`
	TotalMonthlyCostDt  float64      `json:"totalMonthlyCostDt"`
	MonthlyCashflowDt   float64      `json:"monthlyCashflowDt"`
	DurationMonths      int          `json:"durationMonths"`
	DurationYears       int          `json:"durationYears"`
}

// CashSolution is an outright purchase: the full CAPEX up front, no payments.
type CashSolution struct {
	FinancingSolution
}

// CreditSolution is a classic amortizing bank loan with a self-financed share.
type CreditSolution struct {
	FinancingSolution
	AnnualRate          float64 `json:"annualRate"`
	MonthlyRate         float64 `json:"monthlyRate"`
	SelfFinancingRate   float64 `json:"selfFinancingRate"`
	SelfFinancingDt     float64 `json:"selfFinancingDt"`
	FinancedPrincipalDt float64 `json:"financedPrincipalDt"`
}

// LeasingSolution is an annuity lease with a down payment and a residual
// buyout at the end of the term.
type LeasingSolution struct {
	FinancingSolution
	AnnualRate        float64 `json:"annualRate"`
	MonthlyRate       float64 `json:"monthlyRate"`
	DownPaymentDt     float64 `json:"downPaymentDt"`
	ResidualValueRate float64 `json:"residualValueRate"`
	ResidualValueDt   float64 `json:"residualValueDt"`
}

// EscoSolution is an energy-service-company offer: the ESCO fronts the full
// CAPEX and recovers it through a monthly service fee priced to its target
// return. A fee that eats the whole savings marks the offer non-viable rather
// than failing the comparison.
type EscoSolution struct {
	FinancingSolution
	TargetAnnualIRR  float64 `json:"targetAnnualIrr"`
	TargetMonthlyIRR float64 `json:"targetMonthlyIrr"`
	OpexBundled      bool    `json:"opexBundled"`
	IsViable         bool    `json:"isViable"`
	ViabilityError   string  `json:"viabilityError,omitempty"`
}

// ComparisonResult is the finished side-by-side quote: the shared project
// calculation plus all four financing solutions. It is a flat, fully computed
// snapshot; persistence never reads it back into the calculators.
type ComparisonResult struct {
	ID          string             `json:"id"`
	Input       ProjectInput       `json:"input"`
	Parameters  ProjectParameters  `json:"parameters"`
	Calculation ProjectCalculation `json:"projectCalculation"`
	Cash        CashSolution       `json:"cash"`
	Credit      CreditSolution     `json:"credit"`
	Leasing     LeasingSolution    `json:"leasing"`
	Esco        EscoSolution       `json:"esco"`
	CreatedAt   time.Time          `json:"createdAt"`
}
