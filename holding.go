package b3folio

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// HoldingRange describes a constant position held over the half-open interval
// of days [From, To).
//
// Ranges produced by [Holdings] are contiguous and in increasing date order:
// each range's To is the next range's From. The last range is the exception:
// its To is left at the final day of the analysis window, which therefore
// falls outside its half-open interval. [Value] compensates by computing that
// final day explicitly from the last range. Keep both sides of that contract
// in sync.
type HoldingRange struct {
	From       Day // inclusive
	To         Day // exclusive
	Quantities map[string]Quantity
}

// Quantity returns the position held for ticker during the range. Tickers
// never traded report zero.
func (r HoldingRange) Quantity(ticker string) Quantity { return r.Quantities[ticker] }

// String returns a compact form of the range for logs.
func (r HoldingRange) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s, %s)", r.From, r.To)
	tickers := make([]string, 0, len(r.Quantities))
	for ticker := range r.Quantities {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	for _, ticker := range tickers {
		fmt.Fprintf(&b, " %s=%s", ticker, r.Quantities[ticker])
	}
	return b.String()
}

// Holdings reconstructs the position held each day from the transaction
// history.
//
// days is the non-empty, strictly increasing sequence of trading days under
// analysis; it must contain every day referenced by the transactions. assets
// lists the tickers to seed each range with (at quantity zero); transactions
// for tickers outside that list are still applied, the ticker is simply
// tracked from its first trade.
//
// The result starts with a range covering the days before the first
// transaction, with every quantity at zero (degenerate, From == To, when the
// first transaction falls on days[0]), followed by one range per transaction
// day carrying the cumulative position. An empty transaction set yields no
// ranges at all: the portfolio was never invested.
func Holdings(days []Day, assets []string, transactions TransactionSet) []HoldingRange {
	txDays := transactions.Days()
	if len(txDays) == 0 {
		return nil
	}

	last := days[len(days)-1]
	ranges := make([]HoldingRange, 0, len(txDays)+1)

	current := make(map[string]Quantity, len(assets))
	for _, asset := range assets {
		current[asset] = Q(0)
	}
	ranges = append(ranges, HoldingRange{From: days[0], To: txDays[0], Quantities: current})

	for i, on := range txDays {
		next := maps.Clone(current)
		for _, t := range transactions[on] {
			next[t.Ticker] = next[t.Ticker].Add(t.BuyQuantity).Sub(t.SellQuantity)
		}
		to := last
		if i+1 < len(txDays) {
			to = txDays[i+1]
		}
		ranges = append(ranges, HoldingRange{From: on, To: to, Quantities: next})
		current = next
	}
	return ranges
}
