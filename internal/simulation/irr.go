package simulation

import (
	"math"

	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
)

// Bisection bounds and budget for the IRR solver. The lower bound stops short
// of -1 where the discount factor blows up.
const (
	irrLowerBound    = -0.99
	irrUpperBound    = 10.0
	irrTolerance     = 1e-7
	irrMaxIterations = 200
)

// NetPresentValue discounts a yearly cash-flow series at the given rate.
// cashflows[0] is the year-0 flow and is not discounted.
func NetPresentValue(rate float64, cashflows []float64) float64 {
	var npv float64
	for year, flow := range cashflows {
		npv += flow / math.Pow(1+rate, float64(year))
	}
	return npv
}

// InternalRateOfReturn solves for the discount rate at which the series' NPV
// is zero, by bisection over a bounded rate range. An investment series with
// one sign change after the initial outflow has a unique root in that range.
//
// A series whose NPV does not change sign across the range (for example all
// positive flows, as in an ESCO offer with no client investment) has no IRR;
// that is a defined terminal state reported as nil, not an error. A sign
// change that fails to converge within the iteration budget is a genuine
// calculation error.
func InternalRateOfReturn(cashflows []float64) (*float64, error) {
	low, high := irrLowerBound, irrUpperBound
	npvLow := NetPresentValue(low, cashflows)
	npvHigh := NetPresentValue(high, cashflows)

	if npvLow == 0 {
		return &low, nil
	}
	if npvHigh == 0 {
		return &high, nil
	}
	if npvLow*npvHigh > 0 {
		return nil, nil
	}

	for i := 0; i < irrMaxIterations; i++ {
		mid := (low + high) / 2
		npvMid := NetPresentValue(mid, cashflows)

		if math.Abs(npvMid) < irrTolerance || (high-low)/2 < irrTolerance {
			return &mid, nil
		}

		if npvLow*npvMid < 0 {
			high = mid
		} else {
			low = mid
			npvLow = npvMid
		}
	}

	return nil, apperrors.ErrSolverDiverged
}
