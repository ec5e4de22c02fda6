package b3folio

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNoTransactions reports that a simulation targeted a day with no recorded
// transactions: there is nothing to rewrite.
var ErrNoTransactions = errors.New("no transactions on that day")

// ReplacementPriceError reports that the replacement ticker has no usable
// price on the target day, so the rewritten purchase quantity cannot be
// computed.
type ReplacementPriceError struct {
	Ticker string
	Day    Day
}

func (e *ReplacementPriceError) Error() string {
	return fmt.Sprintf("no usable price for replacement ticker %s on %s", e.Ticker, e.Day)
}

// SimulateSwap replays the transaction history as if, on one day, the money
// spent buying one ticker had bought another instead.
//
// Every transaction on day `on` whose ticker is `source` is rewritten on an
// independent copy of the set: its ticker becomes `replacement`, its buy
// price becomes the replacement's price on that day, and its buy quantity is
// recomputed so the amount spent is preserved (the quantity is usually
// fractional). Sell-side fields and all other transactions are untouched,
// and the caller's set is never modified.
//
// The rewritten history then goes through [Holdings] and [Value] again, with
// the replacement ticker added to the tracked assets, and the alternate
// series is returned along with any missing-price reports.
//
// Returns [ErrNoTransactions] when the day has no transactions, and a
// [ReplacementPriceError] when the replacement price is absent or zero; the
// price is checked before any quantity arithmetic.
func SimulateSwap(days []Day, assets []string, prices *PriceTable, transactions TransactionSet, on Day, source, replacement string) (ValueSeries, []MissingPrice, error) {
	if _, ok := transactions[on]; !ok {
		return nil, nil, fmt.Errorf("cannot simulate on %s: %w", on, ErrNoTransactions)
	}
	price, ok := prices.Get(replacement, on)
	if !ok || price.IsZero() {
		return nil, nil, &ReplacementPriceError{Ticker: replacement, Day: on}
	}

	alternate := transactions.Clone()
	for i, t := range alternate[on] {
		if t.Ticker != source {
			continue
		}
		amount := t.BuyPrice.Mul(t.BuyQuantity)
		t.Ticker = replacement
		t.BuyPrice = price
		t.BuyQuantity = amount.DivPrice(price)
		alternate[on][i] = t
	}

	if !slices.Contains(assets, replacement) {
		assets = append(slices.Clone(assets), replacement)
	}

	ranges := Holdings(days, assets, alternate)
	series, missing := Value(days, assets, ranges, prices)
	return series, missing, nil
}
