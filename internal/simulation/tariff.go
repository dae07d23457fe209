package simulation

// TariffResult is the outcome of billing a quantity of energy: the billed
// amount and the marginal rate applied to the last kWh.
type TariffResult struct {
	AmountDt             float64
	MarginalRateDtPerKwh float64
}

// TariffEngine turns monthly consumption into a billed amount. Tiered and
// time-of-use logic lives behind this interface; the projector only consumes
// its output shape.
type TariffEngine interface {
	// Bill returns the billed amount for one month of consumption.
	Bill(consumptionKwh float64) TariffResult

	// InvertBill returns the monthly consumption that produces the given
	// billed amount, the inverse of Bill. Used to recover a consumption
	// baseline from a measured bill.
	InvertBill(amountDt float64) float64
}

// TariffBracket is one tier of a progressive tariff: consumption up to
// UpToKwh (cumulative, per month) is billed at RateDtPerKwh.
type TariffBracket struct {
	UpToKwh      float64 // upper bound of the bracket; the last bracket is open-ended
	RateDtPerKwh float64
}

// TieredTariff is a progressive block tariff in the style of the STEG
// medium-voltage commercial schedule.
type TieredTariff struct {
	Brackets []TariffBracket
}

// DefaultTariff returns the STEG-style commercial tariff used when no
// category-specific tariff is configured.
func DefaultTariff() TieredTariff {
	return TieredTariff{
		Brackets: []TariffBracket{
			{UpToKwh: 200, RateDtPerKwh: 0.195},
			{UpToKwh: 500, RateDtPerKwh: 0.260},
			{UpToKwh: 0, RateDtPerKwh: 0.350},
		},
	}
}

// FlatRate builds a single-bracket tariff, handy for tests and for clients on
// a negotiated flat price.
func FlatRate(rateDtPerKwh float64) TieredTariff {
	return TieredTariff{Brackets: []TariffBracket{{UpToKwh: 0, RateDtPerKwh: rateDtPerKwh}}}
}

// Bill walks the brackets and accumulates the block charges.
func (t TieredTariff) Bill(consumptionKwh float64) TariffResult {
	if consumptionKwh <= 0 || len(t.Brackets) == 0 {
		return TariffResult{}
	}

	var amount float64
	var previousBound float64
	marginalRate := t.Brackets[len(t.Brackets)-1].RateDtPerKwh

	for _, bracket := range t.Brackets {
		upper := bracket.UpToKwh
		if upper == 0 || consumptionKwh <= upper {
			amount += (consumptionKwh - previousBound) * bracket.RateDtPerKwh
			marginalRate = bracket.RateDtPerKwh
			break
		}
		amount += (upper - previousBound) * bracket.RateDtPerKwh
		previousBound = upper
	}

	return TariffResult{AmountDt: amount, MarginalRateDtPerKwh: marginalRate}
}

// InvertBill recovers the consumption behind a billed amount by walking the
// brackets in reverse of Bill.
func (t TieredTariff) InvertBill(amountDt float64) float64 {
	if amountDt <= 0 || len(t.Brackets) == 0 {
		return 0
	}

	var previousBound float64
	remaining := amountDt

	for _, bracket := range t.Brackets {
		upper := bracket.UpToKwh
		if upper == 0 {
			return previousBound + remaining/bracket.RateDtPerKwh
		}
		bracketCost := (upper - previousBound) * bracket.RateDtPerKwh
		if remaining <= bracketCost {
			return previousBound + remaining/bracket.RateDtPerKwh
		}
		remaining -= bracketCost
		previousBound = upper
	}

	return previousBound
}
