package b3folio

import (
	"fmt"
	"maps"
	"slices"
)

// Transaction records a single buy/sell event for one ticker on one day.
//
// A day may carry several transactions, for one or several tickers. Values
// are immutable by convention: the reconstruction reads them, and the
// simulation works on copies, never on the caller's records.
type Transaction struct {
	Ticker       string
	Day          Day
	BuyQuantity  Quantity
	SellQuantity Quantity
	BuyPrice     Money
	SellPrice    Money
}

// Equal reports whether both transactions have the same fields.
func (t Transaction) Equal(o Transaction) bool {
	return t.Ticker == o.Ticker &&
		t.Day == o.Day &&
		t.BuyQuantity.Equal(o.BuyQuantity) &&
		t.SellQuantity.Equal(o.SellQuantity) &&
		t.BuyPrice.Equal(o.BuyPrice) &&
		t.SellPrice.Equal(o.SellPrice)
}

// String returns a human-readable form with prices fixed to two decimals.
func (t Transaction) String() string {
	return fmt.Sprintf("[ticker=%s day=%s buy=%s sell=%s buyPrice=%s sellPrice=%s]",
		t.Ticker, t.Day, t.BuyQuantity, t.SellQuantity, t.BuyPrice.Fixed(), t.SellPrice.Fixed())
}

// TransactionSet indexes transactions by the day they were executed on.
// Only days with at least one transaction are present as keys.
type TransactionSet map[Day][]Transaction

// Append records a transaction under its day.
func (s TransactionSet) Append(txs ...Transaction) {
	for _, t := range txs {
		s[t.Day] = append(s[t.Day], t)
	}
}

// Days returns the distinct transaction days in increasing order.
//
// Day values sort chronologically as plain strings, so this is a string sort.
func (s TransactionSet) Days() []Day {
	return slices.Sorted(maps.Keys(s))
}

// Tickers returns the distinct tickers present in at least one transaction,
// in increasing order.
func (s TransactionSet) Tickers() []string {
	seen := make(map[string]struct{})
	for _, txs := range s {
		for _, t := range txs {
			seen[t.Ticker] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Clone returns a deep copy of the set. The copy owns its day slices, so
// mutating a cloned transaction never aliases back into the original.
func (s TransactionSet) Clone() TransactionSet {
	c := make(TransactionSet, len(s))
	for day, txs := range s {
		c[day] = slices.Clone(txs)
	}
	return c
}
