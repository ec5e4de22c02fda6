package b3folio

import (
	"maps"
	"slices"
)

// PriceTable holds per-day prices for a set of tickers.
//
// The table is sparse: a (ticker, day) pair may be absent, typically because
// the asset did not trade that session. Lookups report absence instead of
// failing, callers decide how to degrade.
type PriceTable struct {
	cur    string
	prices map[string]map[Day]Money
}

// NewPriceTable returns a new empty price table quoting in the given currency.
func NewPriceTable(currency string) *PriceTable {
	return &PriceTable{
		cur:    currency,
		prices: make(map[string]map[Day]Money),
	}
}

// Currency returns the quoting currency of the table.
func (p *PriceTable) Currency() string { return p.cur }

// Has reports whether the table holds any price for ticker.
func (p *PriceTable) Has(ticker string) bool {
	_, ok := p.prices[ticker]
	return ok
}

// Append records the price of a ticker on a given day, overwriting any
// previous value for that day.
func (p *PriceTable) Append(ticker string, day Day, price Money) {
	days, ok := p.prices[ticker]
	if !ok {
		days = make(map[Day]Money)
		p.prices[ticker] = days
	}
	days[day] = price
}

// Get reads a single value from the table for a given (ticker, day).
func (p *PriceTable) Get(ticker string, day Day) (Money, bool) {
	days, ok := p.prices[ticker]
	if !ok {
		return Money{}, false
	}
	price, ok := days[day]
	return price, ok
}

// Tickers returns the tickers present in the table, in increasing order.
func (p *PriceTable) Tickers() []string {
	return slices.Sorted(maps.Keys(p.prices))
}

// Days returns the distinct days quoted for any ticker, in increasing order.
func (p *PriceTable) Days() []Day {
	seen := make(map[Day]struct{})
	for _, days := range p.prices {
		for day := range days {
			seen[day] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Len returns the total number of (ticker, day) prices in the table.
func (p *PriceTable) Len() int {
	n := 0
	for _, days := range p.prices {
		n += len(days)
	}
	return n
}
