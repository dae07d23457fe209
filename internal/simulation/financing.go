package simulation

import (
	"fmt"

	"github.com/joya-energy/solar-simulation-backend/internal/model"
)

// Fixed financing term for credit, leasing and ESCO offers: 7 years.
const (
	DefaultDurationMonths = 84
	DefaultDurationYears  = DefaultDurationMonths / MonthsPerYear
)

// CreditParameters configure the amortizing bank loan calculator.
type CreditParameters struct {
	AnnualRate        float64
	SelfFinancingRate float64
	DurationMonths    int
}

// LeasingParameters configure the leasing calculator. OpexMultiplier prices
// the maintenance of a leased asset relative to an owned one.
type LeasingParameters struct {
	AnnualRate        float64
	ResidualValueRate float64
	SelfFinancingRate float64
	OpexMultiplier    float64
	DurationMonths    int
}

// EscoParameters configure the ESCO calculator.
type EscoParameters struct {
	TargetAnnualIRR float64
	OpexBundled     bool
	DurationMonths  int
}

// CalculateCash produces the outright-purchase solution: the client pays the
// full CAPEX up front and keeps the entire gross savings minus OPEX.
func CalculateCash(calc model.ProjectCalculation) model.CashSolution {
	totalMonthlyCost := calc.MonthlyOpexDt

	return model.CashSolution{
		FinancingSolution: model.FinancingSolution{
			Type:                model.SolutionCash,
			InitialInvestmentDt: calc.CapexDt,
			MonthlyPaymentDt:    0,
			MonthlyOpexDt:       calc.MonthlyOpexDt,
			TotalMonthlyCostDt:  totalMonthlyCost,
			MonthlyCashflowDt:   calc.MonthlyGrossSavingsDt - totalMonthlyCost,
			DurationMonths:      0,
			DurationYears:       0,
		},
	}
}

// CalculateCredit produces the bank-credit solution: the client self-finances
// a share of CAPEX and amortizes the remainder over the term.
func CalculateCredit(calc model.ProjectCalculation, params CreditParameters) (model.CreditSolution, error) {
	selfFinancing := calc.CapexDt * params.SelfFinancingRate
	financedPrincipal := calc.CapexDt - selfFinancing
	monthlyRate := MonthlyRateFromAnnual(params.AnnualRate)

	monthlyPayment, err := AmortizedPayment(financedPrincipal, monthlyRate, params.DurationMonths)
	if err != nil {
		return model.CreditSolution{}, fmt.Errorf("credit amortization: %w", err)
	}

	totalMonthlyCost := monthlyPayment + calc.MonthlyOpexDt

	return model.CreditSolution{
		FinancingSolution: model.FinancingSolution{
			Type:                model.SolutionCredit,
			InitialInvestmentDt: selfFinancing,
			MonthlyPaymentDt:    monthlyPayment,
			MonthlyOpexDt:       calc.MonthlyOpexDt,
			TotalMonthlyCostDt:  totalMonthlyCost,
			MonthlyCashflowDt:   calc.MonthlyGrossSavingsDt - totalMonthlyCost,
			DurationMonths:      params.DurationMonths,
			DurationYears:       params.DurationMonths / MonthsPerYear,
		},
		AnnualRate:          params.AnnualRate,
		MonthlyRate:         monthlyRate,
		SelfFinancingRate:   params.SelfFinancingRate,
		SelfFinancingDt:     selfFinancing,
		FinancedPrincipalDt: financedPrincipal,
	}, nil
}

// CalculateLeasing produces the leasing solution: a down payment, an annuity
// on the financed base net of the residual value, and a residual buyout at
// the end of the term. Leased-asset OPEX is scaled by the OPEX multiplier.
func CalculateLeasing(calc model.ProjectCalculation, params LeasingParameters) (model.LeasingSolution, error) {
	downPayment := calc.CapexDt * params.SelfFinancingRate
	residualValue := calc.CapexDt * params.ResidualValueRate
	financedBase := calc.CapexDt - downPayment - residualValue
	monthlyRate := MonthlyRateFromAnnual(params.AnnualRate)

	monthlyPayment, err := AmortizedPayment(financedBase, monthlyRate, params.DurationMonths)
	if err != nil {
		return model.LeasingSolution{}, fmt.Errorf("leasing annuity: %w", err)
	}

	monthlyOpex := calc.MonthlyOpexDt * params.OpexMultiplier
	totalMonthlyCost := monthlyPayment + monthlyOpex

	return model.LeasingSolution{
		FinancingSolution: model.FinancingSolution{
			Type:                model.SolutionLeasing,
			InitialInvestmentDt: downPayment,
			MonthlyPaymentDt:    monthlyPayment,
			MonthlyOpexDt:       monthlyOpex,
			TotalMonthlyCostDt:  totalMonthlyCost,
			MonthlyCashflowDt:   calc.MonthlyGrossSavingsDt - totalMonthlyCost,
			DurationMonths:      params.DurationMonths,
			DurationYears:       params.DurationMonths / MonthsPerYear,
		},
		AnnualRate:        params.AnnualRate,
		MonthlyRate:       monthlyRate,
		DownPaymentDt:     downPayment,
		ResidualValueRate: params.ResidualValueRate,
		ResidualValueDt:   residualValue,
	}, nil
}

// CalculateEsco produces the ESCO solution: the ESCO fronts the full CAPEX
// and recovers it through a monthly service fee priced so the investor earns
// the target IRR over the term. The client pays nothing up front.
//
// When the fee (plus OPEX if unbundled) meets or exceeds the monthly gross
// savings the offer is marked non-viable instead of failing: the numbers are
// still returned so the caller can show why the structure does not work.
func CalculateEsco(calc model.ProjectCalculation, params EscoParameters) (model.EscoSolution, error) {
	targetMonthlyRate := EffectiveMonthlyRate(params.TargetAnnualIRR)

	// The fee the investor needs is the annuity payment recovering CAPEX at
	// the target rate. With OPEX bundled into the service contract the fee is
	// grossed up so the investor still nets the annuity.
	serviceFee, err := AmortizedPayment(calc.CapexDt, targetMonthlyRate, params.DurationMonths)
	if err != nil {
		return model.EscoSolution{}, fmt.Errorf("esco fee pricing: %w", err)
	}

	monthlyOpex := calc.MonthlyOpexDt
	clientMonthlyOpex := monthlyOpex
	if params.OpexBundled {
		serviceFee += monthlyOpex
		clientMonthlyOpex = 0
	}

	totalMonthlyCost := serviceFee + clientMonthlyOpex
	monthlyCashflow := calc.MonthlyGrossSavingsDt - totalMonthlyCost

	solution := model.EscoSolution{
		FinancingSolution: model.FinancingSolution{
			Type:                model.SolutionEsco,
			InitialInvestmentDt: 0,
			MonthlyPaymentDt:    serviceFee,
			MonthlyOpexDt:       clientMonthlyOpex,
			TotalMonthlyCostDt:  totalMonthlyCost,
			MonthlyCashflowDt:   monthlyCashflow,
			DurationMonths:      params.DurationMonths,
			DurationYears:       params.DurationMonths / MonthsPerYear,
		},
		TargetAnnualIRR:  params.TargetAnnualIRR,
		TargetMonthlyIRR: targetMonthlyRate,
		OpexBundled:      params.OpexBundled,
		IsViable:         monthlyCashflow > 0,
	}

	if !solution.IsViable {
		solution.ViabilityError = fmt.Sprintf(
			"monthly service fee of %.2f DT meets or exceeds monthly gross savings of %.2f DT; the target return of %.1f%% cannot be financed from this project's savings",
			totalMonthlyCost,
			calc.MonthlyGrossSavingsDt,
			params.TargetAnnualIRR*100,
		)
	}

	return solution, nil
}
