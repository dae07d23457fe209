package simulation_test

import (
	"math"
	"testing"

	"github.com/joya-energy/solar-simulation-backend/internal/simulation"
)

// TestAmortizedPayment_FullAmortization verifies the loan fully amortizes.
//
// WHY: the credit and leasing offers promise a zero balance at month 84; a
// payment formula that over- or under-shoots would misprice every solution.
func TestAmortizedPayment_FullAmortization(t *testing.T) {
	tests := []struct {
		name       string
		principal  float64
		annualRate float64
		months     int
	}{
		{name: "typical credit", principal: 100000, annualRate: 0.08, months: 84},
		{name: "small leasing base", principal: 25000, annualRate: 0.095, months: 84},
		{name: "short term", principal: 60000, annualRate: 0.06, months: 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monthlyRate := simulation.MonthlyRateFromAnnual(tt.annualRate)
			payment, err := simulation.AmortizedPayment(tt.principal, monthlyRate, tt.months)
			if err != nil {
				t.Fatalf("AmortizedPayment() returned unexpected error: %v", err)
			}

			// Replay the schedule: interest accrues, the payment lands, the
			// balance must reach zero at the last month.
			balance := tt.principal
			for m := 0; m < tt.months; m++ {
				balance = balance*(1+monthlyRate) - payment
			}

			if math.Abs(balance) > 1e-6 {
				t.Errorf("Expected zero balance after %d months, got %.9f", tt.months, balance)
			}
		})
	}
}

// TestAmortizedPayment_ZeroRate verifies the straight-line fallback.
//
// WHY: a zero interest rate must not divide by zero; the payment degrades to
// principal over term.
func TestAmortizedPayment_ZeroRate(t *testing.T) {
	payment, err := simulation.AmortizedPayment(84000, 0, 84)
	if err != nil {
		t.Fatalf("AmortizedPayment() returned unexpected error: %v", err)
	}

	if payment != 1000 {
		t.Errorf("Expected straight-line payment of 1000, got %f", payment)
	}
}

func TestAmortizedPayment_InvalidDuration(t *testing.T) {
	if _, err := simulation.AmortizedPayment(1000, 0.01, 0); err == nil {
		t.Error("Expected error for zero duration, got nil")
	}
}

// TestEffectiveMonthlyRate verifies the compounding identity (1+m)^12 = 1+a.
func TestEffectiveMonthlyRate(t *testing.T) {
	annual := 0.12
	monthly := simulation.EffectiveMonthlyRate(annual)

	compounded := math.Pow(1+monthly, 12) - 1
	if math.Abs(compounded-annual) > 1e-12 {
		t.Errorf("Expected monthly rate to compound back to %f, got %f", annual, compounded)
	}
}
