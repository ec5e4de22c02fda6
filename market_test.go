package b3folio

import (
	"slices"
	"testing"
)

func TestPriceTable(t *testing.T) {
	table := NewPriceTable("BRL")
	table.Append("PETR4", "20240102", BRL(5))
	table.Append("PETR4", "20240103", BRL(6))
	table.Append("VALE3", "20240102", BRL(60))

	if got, ok := table.Get("PETR4", "20240103"); !ok || !got.Equal(BRL(6)) {
		t.Errorf("Get(PETR4, 20240103) = %s, %v, want 6.00, true", got, ok)
	}
	if _, ok := table.Get("PETR4", "20240104"); ok {
		t.Error("Get(PETR4, 20240104) reported a price for an absent day")
	}
	if _, ok := table.Get("GHOST", "20240102"); ok {
		t.Error("Get(GHOST, ...) reported a price for an unknown ticker")
	}
	if !table.Has("VALE3") || table.Has("GHOST") {
		t.Error("Has() misreports tracked tickers")
	}
	if got := table.Tickers(); !slices.Equal(got, []string{"PETR4", "VALE3"}) {
		t.Errorf("Tickers() = %v, want [PETR4 VALE3]", got)
	}
	if got := table.Days(); !slices.Equal(got, []Day{"20240102", "20240103"}) {
		t.Errorf("Days() = %v, want [20240102 20240103]", got)
	}
	if got := table.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestPriceTableOverwrite(t *testing.T) {
	table := NewPriceTable("BRL")
	table.Append("PETR4", "20240102", BRL(5))
	table.Append("PETR4", "20240102", BRL(5.5))
	if got, _ := table.Get("PETR4", "20240102"); !got.Equal(BRL(5.5)) {
		t.Errorf("Get() after overwrite = %s, want 5.50", got)
	}
	if got := table.Len(); got != 1 {
		t.Errorf("Len() after overwrite = %d, want 1", got)
	}
}
