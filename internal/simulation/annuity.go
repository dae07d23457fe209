// Package simulation implements the financial and energy calculation core:
// consumption estimation, PV production simulation, the four financing
// calculators, the multi-year economic projector and the comparator that ties
// them together. Every function here is pure and synchronous; configuration
// is passed in explicitly.
package simulation

import (
	"math"

	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
)

// MonthsPerYear is the number of monthly periods in a year.
const MonthsPerYear = 12

// AmortizedPayment computes the level monthly payment that fully amortizes a
// principal over the given number of months at the given monthly rate, using
// the standard annuity formula payment = P*r / (1 - (1+r)^-n). A zero rate
// falls back to straight-line repayment rather than dividing by zero.
func AmortizedPayment(principal, monthlyRate float64, months int) (float64, error) {
	if months <= 0 {
		return 0, apperrors.ErrNonPositiveDuration
	}
	if principal == 0 {
		return 0, nil
	}
	if monthlyRate == 0 {
		return principal / float64(months), nil
	}
	return principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(months))), nil
}

// MonthlyRateFromAnnual converts a nominal annual rate to its monthly rate by
// simple division, the convention used by Tunisian credit and leasing offers.
func MonthlyRateFromAnnual(annualRate float64) float64 {
	return annualRate / MonthsPerYear
}

// EffectiveMonthlyRate converts an effective annual rate to the equivalent
// compounded monthly rate, (1+annual)^(1/12) - 1. Investor return targets use
// this convention.
func EffectiveMonthlyRate(annualRate float64) float64 {
	return math.Pow(1+annualRate, 1.0/MonthsPerYear) - 1
}
