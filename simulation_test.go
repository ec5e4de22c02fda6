package b3folio

import (
	"errors"
	"testing"
)

func simulationFixture() (days []Day, assets []string, prices *PriceTable, set TransactionSet) {
	days = []Day{"20240101", "20240102", "20240103"}
	assets = []string{"PETR4"}

	set = make(TransactionSet)
	set.Append(buy("PETR4", "20240102", 10, 5)) // spends 50.00

	prices = NewPriceTable("BRL")
	prices.Append("PETR4", "20240102", BRL(5))
	prices.Append("PETR4", "20240103", BRL(6))
	prices.Append("WEGE3", "20240102", BRL(10))
	prices.Append("WEGE3", "20240103", BRL(12))
	return days, assets, prices, set
}

func TestSimulateSwap(t *testing.T) {
	days, assets, prices, set := simulationFixture()

	series, missing, err := SimulateSwap(days, assets, prices, set, "20240102", "PETR4", "WEGE3")
	if err != nil {
		t.Fatalf("SimulateSwap() error = %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("missing = %v, want none", missing)
	}

	// 50.00 at 10.00 buys 5 units of WEGE3.
	want := ValueSeries{
		"20240101": BRL(0),
		"20240102": BRL(50),
		"20240103": BRL(60),
	}
	for day, w := range want {
		if !series[day].Equal(w) {
			t.Errorf("series[%s] = %s, want %s", day, series[day], w)
		}
	}
}

func TestSimulateSwapConservesSpentAmount(t *testing.T) {
	days, assets, prices, set := simulationFixture()

	if _, _, err := SimulateSwap(days, assets, prices, set, "20240102", "PETR4", "WEGE3"); err != nil {
		t.Fatalf("SimulateSwap() error = %v", err)
	}

	// Recompute the rewritten transaction by hand to pin the conservation
	// rule: originalQty×originalPrice == newQty×newPrice.
	amount := BRL(5).Mul(Q(10))
	newPrice := BRL(10)
	newQuantity := amount.DivPrice(newPrice)
	if !newQuantity.Equal(Q(5)) {
		t.Errorf("rewritten quantity = %s, want 5", newQuantity)
	}
	if got := newPrice.Mul(newQuantity); !got.Equal(amount) {
		t.Errorf("newQty×newPrice = %s, want %s", got, amount)
	}
}

func TestSimulateSwapFractionalQuantity(t *testing.T) {
	days, assets, prices, set := simulationFixture()
	prices.Append("WEGE3", "20240102", BRL(15)) // 50/15 is not a whole number

	series, _, err := SimulateSwap(days, assets, prices, set, "20240102", "PETR4", "WEGE3")
	if err != nil {
		t.Fatalf("SimulateSwap() error = %v", err)
	}
	// 50/15 units at 12.00 on the last day.
	want := BRL(12).Mul(BRL(50).DivPrice(BRL(15)))
	if got := series["20240103"]; !got.Equal(want) {
		t.Errorf("series[20240103] = %s, want %s", got, want)
	}
}

func TestSimulateSwapNoTransactions(t *testing.T) {
	days, assets, prices, set := simulationFixture()

	_, _, err := SimulateSwap(days, assets, prices, set, "20240103", "PETR4", "WEGE3")
	if !errors.Is(err, ErrNoTransactions) {
		t.Errorf("SimulateSwap() error = %v, want ErrNoTransactions", err)
	}
}

func TestSimulateSwapMissingReplacementPrice(t *testing.T) {
	days, assets, prices, set := simulationFixture()

	_, _, err := SimulateSwap(days, assets, prices, set, "20240102", "PETR4", "GHOST")
	var rpe *ReplacementPriceError
	if !errors.As(err, &rpe) {
		t.Fatalf("SimulateSwap() error = %v, want a ReplacementPriceError", err)
	}
	if rpe.Ticker != "GHOST" || rpe.Day != "20240102" {
		t.Errorf("ReplacementPriceError = %v, want GHOST on 20240102", rpe)
	}
}

func TestSimulateSwapZeroReplacementPrice(t *testing.T) {
	// A quoted but zero price would divide by zero; it must be rejected up
	// front like an absent one.
	days, assets, prices, set := simulationFixture()
	prices.Append("WEGE3", "20240102", BRL(0))

	_, _, err := SimulateSwap(days, assets, prices, set, "20240102", "PETR4", "WEGE3")
	var rpe *ReplacementPriceError
	if !errors.As(err, &rpe) {
		t.Errorf("SimulateSwap() error = %v, want a ReplacementPriceError", err)
	}
}

func TestSimulateSwapDoesNotMutateOriginal(t *testing.T) {
	days, assets, prices, set := simulationFixture()

	if _, _, err := SimulateSwap(days, assets, prices, set, "20240102", "PETR4", "WEGE3"); err != nil {
		t.Fatalf("SimulateSwap() error = %v", err)
	}

	txs := set["20240102"]
	if len(txs) != 1 {
		t.Fatalf("original set has %d transactions on 20240102, want 1", len(txs))
	}
	want := buy("PETR4", "20240102", 10, 5)
	if !txs[0].Equal(want) {
		t.Errorf("original transaction = %s, want untouched %s", txs[0], want)
	}
}

func TestSimulateSwapLeavesOtherTransactionsAlone(t *testing.T) {
	days, assets, prices, set := simulationFixture()
	other := buy("VALE3", "20240102", 2, 60)
	set.Append(other)
	assets = append(assets, "VALE3")
	prices.Append("VALE3", "20240102", BRL(60))
	prices.Append("VALE3", "20240103", BRL(62))

	series, _, err := SimulateSwap(days, assets, prices, set, "20240102", "PETR4", "WEGE3")
	if err != nil {
		t.Fatalf("SimulateSwap() error = %v", err)
	}
	// VALE3 still held: 2×62 on the last day, plus 5 WEGE3 at 12.
	want := BRL(2*62 + 5*12)
	if got := series["20240103"]; !got.Equal(want) {
		t.Errorf("series[20240103] = %s, want %s", got, want)
	}
}
