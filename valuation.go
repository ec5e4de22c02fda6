package b3folio

import "fmt"

// ValueSeries maps each day of the analysis window to the total portfolio
// value on that day.
type ValueSeries map[Day]Money

// MissingPrice reports a failed price lookup during valuation: the ticker was
// held on that day but the table has no quote for it. The asset contributed
// zero to that day's total.
type MissingPrice struct {
	Ticker string
	Day    Day
}

func (e MissingPrice) Error() string {
	return fmt.Sprintf("no price for %s on %s", e.Ticker, e.Day)
}

// Value computes the daily portfolio value over the analysis window.
//
// days is the trading-day sequence, ranges the output of [Holdings] for that
// same sequence, prices the per-day quotes. Every day strictly before the
// first range is worth zero. Within each range the value is the sum over
// assets of quantity times that day's price. A zero quantity contributes
// zero without consulting the table at all; a missing price for a held asset
// contributes zero and is reported in the returned slice, it never aborts
// the series.
//
// The final day of the window is always computed explicitly from the last
// range's position, because that range's half-open interval excludes it (see
// [HoldingRange]). With no ranges the whole series is zero.
func Value(days []Day, assets []string, ranges []HoldingRange, prices *PriceTable) (ValueSeries, []MissingPrice) {
	series := make(ValueSeries, len(days))
	zero := M(0, prices.Currency())
	if len(ranges) == 0 {
		for _, day := range days {
			series[day] = zero
		}
		return series, nil
	}

	pos := make(map[Day]int, len(days))
	for i, day := range days {
		pos[day] = i
	}

	var missing []MissingPrice
	for i := 0; i < pos[ranges[0].From]; i++ {
		series[days[i]] = zero
	}
	for _, r := range ranges {
		for i := pos[r.From]; i < pos[r.To]; i++ {
			value, miss := dayValue(days[i], assets, r.Quantities, prices)
			series[days[i]] = value
			missing = append(missing, miss...)
		}
	}

	// The last day of the window sits outside the final range's half-open
	// interval; compute it from that range's position.
	last := days[len(days)-1]
	value, miss := dayValue(last, assets, ranges[len(ranges)-1].Quantities, prices)
	series[last] = value
	missing = append(missing, miss...)

	return series, missing
}

// dayValue sums quantity times price over assets for a single day.
func dayValue(day Day, assets []string, quantities map[string]Quantity, prices *PriceTable) (Money, []MissingPrice) {
	total := M(0, prices.Currency())
	var missing []MissingPrice
	for _, asset := range assets {
		quantity := quantities[asset]
		if quantity.IsZero() {
			continue
		}
		price, ok := prices.Get(asset, day)
		if !ok {
			missing = append(missing, MissingPrice{Ticker: asset, Day: day})
			continue
		}
		total = total.Add(price.Mul(quantity))
	}
	return total, missing
}
