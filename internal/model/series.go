package model

import "time"

// MonthlyConsumptionData is one month of the estimated consumption curve
// expanded from a single measured bill.
type MonthlyConsumptionData struct {
	Month                   int     `json:"month"` // 1-12
	ClimaticCoefficient     float64 `json:"climaticCoefficient"`
	BuildingCoefficient     float64 `json:"buildingCoefficient"`
	EffectiveCoefficient    float64 `json:"effectiveCoefficient"`
	EstimatedConsumptionKwh float64 `json:"estimatedConsumptionKwh"`
}

// MonthlyPVProductionData is one month of simulated production set against
// consumption. EnergyCreditKwh is the surplus carried into the next month's
// net-consumption calculation; credit the next month cannot absorb is
// forfeited, not refunded.
type MonthlyPVProductionData struct {
	Month             int     `json:"month"`
	ConsumptionKwh    float64 `json:"consumptionKwh"`
	ProductionKwh     float64 `json:"productionKwh"`
	NetConsumptionKwh float64 `json:"netConsumptionKwh"`
	EnergyCreditKwh   float64 `json:"energyCreditKwh"`
}

// MonthlyEconomicData is one month of billing under the applicable tariff,
// with and without the PV installation.
type MonthlyEconomicData struct {
	Month                int     `json:"month"`
	BilledConsumptionKwh float64 `json:"billedConsumptionKwh"`
	AppliedRateDtPerKwh  float64 `json:"appliedRateDtPerKwh"`
	BillWithoutPvDt      float64 `json:"billWithoutPvDt"`
	BillWithPvDt         float64 `json:"billWithPvDt"`
	SavingsDt            float64 `json:"savingsDt"`
}

// AnnualEconomicData is one row of the multi-year economic projection.
type AnnualEconomicData struct {
	Year                     int     `json:"year"` // 0-based; year 0 carries the initial investment
	ProductionKwh            float64 `json:"productionKwh"`
	SavingsDt                float64 `json:"savingsDt"`
	OpexDt                   float64 `json:"opexDt"`
	CapexDt                  float64 `json:"capexDt"`
	FinancingPaymentsDt      float64 `json:"financingPaymentsDt"`
	NetGainDt                float64 `json:"netGainDt"`
	DiscountedNetGainDt      float64 `json:"discountedNetGainDt"`
	CumulativeCashflowDt     float64 `json:"cumulativeCashflowDt"`
	CumulativeDiscountedDt   float64 `json:"cumulativeDiscountedDt"`
}

// EconomicProjection aggregates the annual rows with the derived investment
// indicators. Payback fields are nil when the cumulative series never crosses
// zero within the horizon; IRR is nil when the cash-flow series has no sign
// change to solve against.
type EconomicProjection struct {
	Years                  []AnnualEconomicData `json:"years"`
	NpvDt                  float64              `json:"npvDt"`
	Irr                    *float64             `json:"irr"`
	SimplePaybackYears     *float64             `json:"simplePaybackYears"`
	DiscountedPaybackYears *float64             `json:"discountedPaybackYears"`
	HorizonYears           int                  `json:"horizonYears"`
	DiscountRate           float64              `json:"discountRate"`
}

// AuditSimulation is the persisted snapshot of one solar-audit run:
// consumption estimation, production simulation and economic projection,
// plus the optional energy/carbon classification.
type AuditSimulation struct {
	ID           string                    `json:"id"`
	Location     string                    `json:"location"`
	BuildingType BuildingType              `json:"buildingType"`
	ClimateZone  ClimateZone               `json:"climateZone"`
	Consumption  []MonthlyConsumptionData  `json:"consumption"`
	Production   []MonthlyPVProductionData `json:"production"`
	Economics    []MonthlyEconomicData     `json:"economics"`
	Projection   EconomicProjection        `json:"projection"`
	CreatedAt    time.Time                 `json:"createdAt"`
}
