package simulation

import (
	"fmt"

	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/model"
)

// ProjectionInput describes a multi-year economic projection: the simulated
// production year, the chosen financing solution's cash-flow characteristics,
// the tariff the client is billed under, and the horizon. The horizon is
// independent of the financing duration since the asset keeps producing after
// the loan or lease ends.
type ProjectionInput struct {
	Production            ProductionResult
	Tariff                TariffEngine
	InitialInvestmentDt   float64
	MonthlyPaymentDt      float64
	PaymentDurationMonths int
	AnnualOpexDt          float64
	DiscountRate          float64
	HorizonYears          int
}

// ProjectionResult carries the monthly billing detail of the representative
// year alongside the multi-year projection.
type ProjectionResult struct {
	Monthly    []model.MonthlyEconomicData
	Projection model.EconomicProjection
}

// ProjectEconomics bills the simulated year with and without PV, then rolls
// the resulting savings over the horizon: year 0 carries the initial
// investment, following years carry savings minus OPEX minus any financing
// payments still running. From the nominal and discounted cumulative series
// it derives NPV, IRR and the two payback indicators.
func ProjectEconomics(input ProjectionInput) (ProjectionResult, error) {
	if input.HorizonYears <= 0 {
		return ProjectionResult{}, apperrors.ErrNonPositiveDuration
	}
	if input.Tariff == nil {
		return ProjectionResult{}, fmt.Errorf("projection requires a tariff engine")
	}
	if len(input.Production.Months) != MonthsPerYear {
		return ProjectionResult{}, apperrors.ErrInvalidReferenceMonth
	}

	monthly := make([]model.MonthlyEconomicData, MonthsPerYear)
	var annualSavings, annualProduction float64

	for i, month := range input.Production.Months {
		withoutPv := input.Tariff.Bill(month.ConsumptionKwh)
		withPv := input.Tariff.Bill(month.NetConsumptionKwh)
		savings := withoutPv.AmountDt - withPv.AmountDt

		monthly[i] = model.MonthlyEconomicData{
			Month:                month.Month,
			BilledConsumptionKwh: month.NetConsumptionKwh,
			AppliedRateDtPerKwh:  withPv.MarginalRateDtPerKwh,
			BillWithoutPvDt:      withoutPv.AmountDt,
			BillWithPvDt:         withPv.AmountDt,
			SavingsDt:            savings,
		}

		annualSavings += savings
		annualProduction += month.ProductionKwh
	}

	years := make([]model.AnnualEconomicData, input.HorizonYears+1)
	cashflows := make([]float64, input.HorizonYears+1)

	var cumulativeNominal, cumulativeDiscounted float64
	remainingPaymentMonths := input.PaymentDurationMonths

	for year := 0; year <= input.HorizonYears; year++ {
		row := model.AnnualEconomicData{Year: year}

		if year == 0 {
			row.CapexDt = input.InitialInvestmentDt
			row.NetGainDt = -input.InitialInvestmentDt
		} else {
			paymentMonths := 0
			if remainingPaymentMonths > 0 {
				paymentMonths = MonthsPerYear
				if remainingPaymentMonths < MonthsPerYear {
					paymentMonths = remainingPaymentMonths
				}
				remainingPaymentMonths -= paymentMonths
			}

			row.ProductionKwh = annualProduction
			row.SavingsDt = annualSavings
			row.OpexDt = input.AnnualOpexDt
			row.FinancingPaymentsDt = input.MonthlyPaymentDt * float64(paymentMonths)
			row.NetGainDt = row.SavingsDt - row.OpexDt - row.FinancingPaymentsDt
		}

		discountFactor := 1.0
		for i := 0; i < year; i++ {
			discountFactor *= 1 + input.DiscountRate
		}
		row.DiscountedNetGainDt = row.NetGainDt / discountFactor

		cumulativeNominal += row.NetGainDt
		cumulativeDiscounted += row.DiscountedNetGainDt
		row.CumulativeCashflowDt = cumulativeNominal
		row.CumulativeDiscountedDt = cumulativeDiscounted

		years[year] = row
		cashflows[year] = row.NetGainDt
	}

	irr, err := InternalRateOfReturn(cashflows)
	if err != nil {
		return ProjectionResult{}, fmt.Errorf("irr for projection over %d years: %w", input.HorizonYears, err)
	}

	projection := model.EconomicProjection{
		Years:                  years,
		NpvDt:                  cumulativeDiscounted,
		Irr:                    irr,
		SimplePaybackYears:     paybackYears(years, nominalCumulative),
		DiscountedPaybackYears: paybackYears(years, discountedCumulative),
		HorizonYears:           input.HorizonYears,
		DiscountRate:           input.DiscountRate,
	}

	return ProjectionResult{Monthly: monthly, Projection: projection}, nil
}

// cumulativeSelector picks one of the two cumulative series off an annual row.
type cumulativeSelector func(model.AnnualEconomicData) float64

func nominalCumulative(row model.AnnualEconomicData) float64    { return row.CumulativeCashflowDt }
func discountedCumulative(row model.AnnualEconomicData) float64 { return row.CumulativeDiscountedDt }

// paybackYears finds the first point where the selected cumulative series
// crosses zero, interpolated within the crossing year to month-level
// precision. A series that never crosses within the horizon has no payback;
// that is reported as nil rather than a sentinel count.
func paybackYears(years []model.AnnualEconomicData, cumulative cumulativeSelector) *float64 {
	for i, row := range years {
		if cumulative(row) < 0 {
			continue
		}
		if i == 0 {
			zero := 0.0
			return &zero
		}

		previous := cumulative(years[i-1])
		gain := cumulative(row) - previous
		payback := float64(row.Year)
		if gain > 0 {
			// previous is negative here; the fraction is the part of the
			// year needed to absorb it.
			payback = float64(years[i-1].Year) + (-previous)/gain
		}
		return &payback
	}
	return nil
}
