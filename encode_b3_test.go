package b3folio

import (
	"fmt"
	"strings"
	"testing"
)

// b3Line builds a minimal fixed-width quote line with the given fields at the
// documented offsets.
func b3Line(day, ticker string, cents int64) string {
	line := []byte(strings.Repeat(" ", 245))
	copy(line[0:2], "01")
	copy(line[b3DateStart:b3DateEnd], day)
	copy(line[b3TickerStart:b3TickerEnd], fmt.Sprintf("%-12s", ticker))
	copy(line[b3PriceStart:b3PriceEnd], fmt.Sprintf("%013d", cents))
	return string(line)
}

func TestDecodeB3History(t *testing.T) {
	input := strings.Join([]string{
		b3Line("20240102", "PETR4", 525),
		b3Line("20240102", "VALE3", 6000),
		b3Line("20240103", "PETR4", 550),
	}, "\n")

	table := NewPriceTable("BRL")
	err := table.DecodeB3History("COTAHIST_A2024.TXT", strings.NewReader(input), []string{"PETR4"})
	if err != nil {
		t.Fatalf("DecodeB3History() error = %v", err)
	}

	if got, ok := table.Get("PETR4", "20240102"); !ok || !got.Equal(BRL(5.25)) {
		t.Errorf("Get(PETR4, 20240102) = %s, %v, want 5.25, true", got, ok)
	}
	if got, ok := table.Get("PETR4", "20240103"); !ok || !got.Equal(BRL(5.50)) {
		t.Errorf("Get(PETR4, 20240103) = %s, %v, want 5.50, true", got, ok)
	}
	if table.Has("VALE3") {
		t.Error("VALE3 decoded although not among the requested assets")
	}
}

func TestDecodeB3HistoryFractionalVariant(t *testing.T) {
	// PETR4F is the fractional-market variation of PETR4; it contains the
	// requested ticker as a substring but must not be kept.
	input := b3Line("20240102", "PETR4F", 530) + "\n" + b3Line("20240102", "PETR4", 525)

	table := NewPriceTable("BRL")
	err := table.DecodeB3History("COTAHIST_A2024.TXT", strings.NewReader(input), []string{"PETR4"})
	if err != nil {
		t.Fatalf("DecodeB3History() error = %v", err)
	}
	if got, _ := table.Get("PETR4", "20240102"); !got.Equal(BRL(5.25)) {
		t.Errorf("Get(PETR4, 20240102) = %s, want the exact-match price 5.25", got)
	}
	if got := table.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1 (fractional variant discarded)", got)
	}
}

func TestDecodeB3HistoryShortLine(t *testing.T) {
	// A matching line too short to carry a price field is a format error.
	input := "  20240102  PETR4"
	table := NewPriceTable("BRL")
	err := table.DecodeB3History("bad.txt", strings.NewReader(input), []string{"PETR4"})
	if err == nil {
		t.Fatal("DecodeB3History() = nil error on a truncated quote line")
	}
	if !strings.Contains(err.Error(), "bad.txt") {
		t.Errorf("error %q should name the offending file", err)
	}
}
