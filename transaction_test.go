package b3folio

import (
	"slices"
	"strings"
	"testing"
)

func TestTransactionString(t *testing.T) {
	tx := buy("PETR4", "20240102", 10, 5)
	got := tx.String()
	want := "[ticker=PETR4 day=20240102 buy=10 sell=0 buyPrice=5.00 sellPrice=0.00]"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !strings.Contains(got, "5.00") {
		t.Errorf("String() = %q, prices should be fixed to two decimals", got)
	}
}

func TestTransactionEqual(t *testing.T) {
	a := buy("PETR4", "20240102", 10, 5)
	b := buy("PETR4", "20240102", 10, 5)
	if !a.Equal(b) {
		t.Errorf("Equal() = false for identical transactions %s and %s", a, b)
	}
	c := buy("PETR4", "20240102", 11, 5)
	if a.Equal(c) {
		t.Errorf("Equal() = true for %s and %s", a, c)
	}
}

func TestTransactionSetDays(t *testing.T) {
	set := make(TransactionSet)
	set.Append(
		buy("VALE3", "20240104", 1, 60),
		buy("PETR4", "20240102", 10, 5),
		sell("PETR4", "20240104", 5, 6),
	)

	want := []Day{"20240102", "20240104"}
	if got := set.Days(); !slices.Equal(got, want) {
		t.Errorf("Days() = %v, want %v", got, want)
	}
	if got := set.Tickers(); !slices.Equal(got, []string{"PETR4", "VALE3"}) {
		t.Errorf("Tickers() = %v, want [PETR4 VALE3]", got)
	}
}

func TestTransactionSetClone(t *testing.T) {
	set := make(TransactionSet)
	set.Append(buy("PETR4", "20240102", 10, 5))

	clone := set.Clone()
	clone["20240102"][0].Ticker = "VALE3"
	clone.Append(buy("ITUB4", "20240103", 1, 30))

	if got := set["20240102"][0].Ticker; got != "PETR4" {
		t.Errorf("original ticker = %s after mutating the clone, want PETR4", got)
	}
	if _, ok := set["20240103"]; ok {
		t.Error("appending to the clone leaked a day into the original set")
	}
}
