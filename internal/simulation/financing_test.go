package simulation_test

import (
	"math"
	"testing"

	"github.com/joya-energy/solar-simulation-backend/internal/model"
	"github.com/joya-energy/solar-simulation-backend/internal/simulation"
)

// midSizeProject returns a representative 100 kWp commercial project.
func midSizeProject(t *testing.T) model.ProjectCalculation {
	t.Helper()

	calc, err := simulation.CalculateProject(
		model.ProjectInput{Location: "sfax", Sizing: model.SizingFromCapacity(100)},
		model.ProjectParameters{
			CostPerKwpDt:             2500,
			YieldKwhPerKwpYear:       1600,
			ElectricityPriceDtPerKwh: 0.350,
			AnnualOpexRate:           0.01,
		},
	)
	if err != nil {
		t.Fatalf("CalculateProject() returned unexpected error: %v", err)
	}
	return calc
}

// TestCalculateProject verifies the shared project figures.
//
// WHY: every financing solution is priced off these numbers; the monthly =
// annual / 12 identity and the savings formula are load-bearing invariants.
func TestCalculateProject(t *testing.T) {
	t.Run("derives capex and savings from capacity", func(t *testing.T) {
		calc := midSizeProject(t)

		if calc.CapexDt != 250000 {
			t.Errorf("Expected CAPEX 250000, got %f", calc.CapexDt)
		}
		if calc.AnnualProductionKwh != 160000 {
			t.Errorf("Expected annual production 160000, got %f", calc.AnnualProductionKwh)
		}

		wantSavings := 160000 * 0.350
		if math.Abs(calc.AnnualGrossSavingsDt-wantSavings) > 1e-9 {
			t.Errorf("Expected annual gross savings %f, got %f", wantSavings, calc.AnnualGrossSavingsDt)
		}
		if math.Abs(calc.MonthlyGrossSavingsDt-wantSavings/12) > 1e-9 {
			t.Errorf("Monthly savings must be annual/12, got %f", calc.MonthlyGrossSavingsDt)
		}
		if math.Abs(calc.MonthlyOpexDt-calc.AnnualOpexDt/12) > 1e-9 {
			t.Errorf("Monthly OPEX must be annual/12, got %f", calc.MonthlyOpexDt)
		}
	})

	t.Run("derives capacity from budget", func(t *testing.T) {
		calc, err := simulation.CalculateProject(
			model.ProjectInput{Location: "tunis", Sizing: model.SizingFromBudget(125000)},
			model.ProjectParameters{CostPerKwpDt: 2500, YieldKwhPerKwpYear: 1540, ElectricityPriceDtPerKwh: 0.3, AnnualOpexRate: 0.01},
		)
		if err != nil {
			t.Fatalf("CalculateProject() returned unexpected error: %v", err)
		}

		if calc.SizeKwp != 50 {
			t.Errorf("Expected 50 kWp from a 125000 DT budget at 2500 DT/kWp, got %f", calc.SizeKwp)
		}
		if math.Abs(calc.CapexDt-125000) > 1e-9 {
			t.Errorf("Expected CAPEX to reconstruct the budget, got %f", calc.CapexDt)
		}
	})

	t.Run("rejects non-positive sizing", func(t *testing.T) {
		_, err := simulation.CalculateProject(
			model.ProjectInput{Location: "tunis", Sizing: model.SizingFromCapacity(0)},
			model.ProjectParameters{CostPerKwpDt: 2500, YieldKwhPerKwpYear: 1540, ElectricityPriceDtPerKwh: 0.3},
		)
		if err == nil {
			t.Error("Expected error for zero capacity, got nil")
		}
	})
}

// TestCalculateCash verifies the outright-purchase shape.
func TestCalculateCash(t *testing.T) {
	calc := midSizeProject(t)
	cash := simulation.CalculateCash(calc)

	if cash.InitialInvestmentDt != calc.CapexDt {
		t.Errorf("Cash initial investment must equal CAPEX, got %f", cash.InitialInvestmentDt)
	}
	if cash.MonthlyPaymentDt != 0 {
		t.Errorf("Cash solution has no monthly payment, got %f", cash.MonthlyPaymentDt)
	}
	wantCashflow := calc.MonthlyGrossSavingsDt - calc.MonthlyOpexDt
	if math.Abs(cash.MonthlyCashflowDt-wantCashflow) > 1e-9 {
		t.Errorf("Expected monthly cashflow %f, got %f", wantCashflow, cash.MonthlyCashflowDt)
	}
}

// TestCalculateCredit verifies the self-financing split and the cashflow
// decomposition of the bank-credit solution.
func TestCalculateCredit(t *testing.T) {
	calc := midSizeProject(t)
	params := simulation.CreditParameters{AnnualRate: 0.08, SelfFinancingRate: 0.2, DurationMonths: 84}

	credit, err := simulation.CalculateCredit(calc, params)
	if err != nil {
		t.Fatalf("CalculateCredit() returned unexpected error: %v", err)
	}

	t.Run("self-financing invariant", func(t *testing.T) {
		if math.Abs(credit.SelfFinancingDt-calc.CapexDt*0.2) > 1e-9 {
			t.Errorf("Expected self-financing of %f, got %f", calc.CapexDt*0.2, credit.SelfFinancingDt)
		}
		if math.Abs(credit.SelfFinancingDt+credit.FinancedPrincipalDt-calc.CapexDt) > 1e-9 {
			t.Errorf("Self-financing plus financed principal must reconstruct CAPEX, got %f",
				credit.SelfFinancingDt+credit.FinancedPrincipalDt)
		}
		if credit.InitialInvestmentDt != credit.SelfFinancingDt {
			t.Errorf("Credit initial investment is the self-financed share, got %f", credit.InitialInvestmentDt)
		}
	})

	t.Run("cashflow decomposition", func(t *testing.T) {
		want := calc.MonthlyGrossSavingsDt - credit.MonthlyPaymentDt - credit.MonthlyOpexDt
		if math.Abs(credit.MonthlyCashflowDt-want) > 1e-9 {
			t.Errorf("Expected monthly cashflow %f, got %f", want, credit.MonthlyCashflowDt)
		}
	})

	t.Run("zero rate falls back to straight line", func(t *testing.T) {
		zeroRate, err := simulation.CalculateCredit(calc, simulation.CreditParameters{
			AnnualRate: 0, SelfFinancingRate: 0.2, DurationMonths: 84,
		})
		if err != nil {
			t.Fatalf("CalculateCredit() returned unexpected error: %v", err)
		}

		want := zeroRate.FinancedPrincipalDt / 84
		if math.Abs(zeroRate.MonthlyPaymentDt-want) > 1e-9 {
			t.Errorf("Expected straight-line payment %f at zero rate, got %f", want, zeroRate.MonthlyPaymentDt)
		}
	})
}

// TestCalculateLeasing verifies the residual-value arithmetic.
func TestCalculateLeasing(t *testing.T) {
	calc := midSizeProject(t)
	params := simulation.LeasingParameters{
		AnnualRate:        0.095,
		ResidualValueRate: 0.05,
		SelfFinancingRate: 0.1,
		OpexMultiplier:    1.2,
		DurationMonths:    84,
	}

	leasing, err := simulation.CalculateLeasing(calc, params)
	if err != nil {
		t.Fatalf("CalculateLeasing() returned unexpected error: %v", err)
	}

	if math.Abs(leasing.ResidualValueDt-calc.CapexDt*0.05) > 1e-9 {
		t.Errorf("Residual value must be CAPEX times the residual rate, got %f", leasing.ResidualValueDt)
	}
	if math.Abs(leasing.DownPaymentDt-calc.CapexDt*0.1) > 1e-9 {
		t.Errorf("Down payment must be CAPEX times the self-financing rate, got %f", leasing.DownPaymentDt)
	}
	if math.Abs(leasing.MonthlyOpexDt-calc.MonthlyOpexDt*1.2) > 1e-9 {
		t.Errorf("Leasing OPEX must carry the multiplier, got %f", leasing.MonthlyOpexDt)
	}

	// The annuity must amortize exactly the base net of down payment and residual.
	financedBase := calc.CapexDt - leasing.DownPaymentDt - leasing.ResidualValueDt
	balance := financedBase
	for m := 0; m < params.DurationMonths; m++ {
		balance = balance*(1+leasing.MonthlyRate) - leasing.MonthlyPaymentDt
	}
	if math.Abs(balance) > 1e-6 {
		t.Errorf("Leasing annuity must amortize the financed base to zero, residual balance %f", balance)
	}
}

// TestCalculateEsco verifies pricing, viability and its monotonicity.
//
// WHY: the viability flag is the soft-failure contract of the four-way
// comparison: a fee above the savings must flag, never throw, and raising
// the target return must never improve the client's position.
func TestCalculateEsco(t *testing.T) {
	calc := midSizeProject(t)

	t.Run("viable offer for a healthy project", func(t *testing.T) {
		esco, err := simulation.CalculateEsco(calc, simulation.EscoParameters{
			TargetAnnualIRR: 0.10, OpexBundled: false, DurationMonths: 84,
		})
		if err != nil {
			t.Fatalf("CalculateEsco() returned unexpected error: %v", err)
		}

		if !esco.IsViable {
			t.Fatalf("Expected viable offer, got viability error: %s", esco.ViabilityError)
		}
		if esco.InitialInvestmentDt != 0 {
			t.Errorf("ESCO fronts the full CAPEX; client investment must be zero, got %f", esco.InitialInvestmentDt)
		}
		if esco.MonthlyCashflowDt <= 0 {
			t.Errorf("Viable offer must leave positive client cashflow, got %f", esco.MonthlyCashflowDt)
		}
	})

	t.Run("excessive target return flags non-viable", func(t *testing.T) {
		esco, err := simulation.CalculateEsco(calc, simulation.EscoParameters{
			TargetAnnualIRR: 0.60, OpexBundled: false, DurationMonths: 84,
		})
		if err != nil {
			t.Fatalf("CalculateEsco() returned unexpected error: %v", err)
		}

		if esco.IsViable {
			t.Error("Expected non-viable offer at a 60% target return")
		}
		if esco.ViabilityError == "" {
			t.Error("Non-viable offer must carry an explanatory message")
		}
		if esco.MonthlyPaymentDt <= 0 {
			t.Error("Non-viable offer must still carry the computed fee")
		}
	})

	t.Run("fee and cashflow are monotonic in the target return", func(t *testing.T) {
		rates := []float64{0.06, 0.08, 0.10, 0.15, 0.25, 0.40}
		var previousFee, previousCashflow float64

		for i, rate := range rates {
			esco, err := simulation.CalculateEsco(calc, simulation.EscoParameters{
				TargetAnnualIRR: rate, OpexBundled: true, DurationMonths: 84,
			})
			if err != nil {
				t.Fatalf("CalculateEsco(%f) returned unexpected error: %v", rate, err)
			}

			if i > 0 {
				if esco.MonthlyPaymentDt < previousFee {
					t.Errorf("Fee must weakly increase with the target return: %f < %f at rate %f",
						esco.MonthlyPaymentDt, previousFee, rate)
				}
				if esco.MonthlyCashflowDt > previousCashflow {
					t.Errorf("Client cashflow must never increase with the target return: %f > %f at rate %f",
						esco.MonthlyCashflowDt, previousCashflow, rate)
				}
			}
			previousFee = esco.MonthlyPaymentDt
			previousCashflow = esco.MonthlyCashflowDt
		}
	})

	t.Run("bundled opex moves opex into the fee", func(t *testing.T) {
		unbundled, err := simulation.CalculateEsco(calc, simulation.EscoParameters{
			TargetAnnualIRR: 0.10, OpexBundled: false, DurationMonths: 84,
		})
		if err != nil {
			t.Fatalf("CalculateEsco() returned unexpected error: %v", err)
		}
		bundled, err := simulation.CalculateEsco(calc, simulation.EscoParameters{
			TargetAnnualIRR: 0.10, OpexBundled: true, DurationMonths: 84,
		})
		if err != nil {
			t.Fatalf("CalculateEsco() returned unexpected error: %v", err)
		}

		if bundled.MonthlyOpexDt != 0 {
			t.Errorf("Bundled offer leaves no client OPEX, got %f", bundled.MonthlyOpexDt)
		}
		if math.Abs(bundled.TotalMonthlyCostDt-unbundled.TotalMonthlyCostDt) > 1e-9 {
			t.Errorf("Bundling moves OPEX into the fee without changing the total: %f vs %f",
				bundled.TotalMonthlyCostDt, unbundled.TotalMonthlyCostDt)
		}
	})
}
