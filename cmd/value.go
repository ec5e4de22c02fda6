package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/amello/b3folio"
	"github.com/amello/b3folio/renderer"
	"github.com/google/subcommands"
)

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	start string
	end   string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "display the daily portfolio value over a period" }
func (*valueCmd) Usage() string {
	return `b3f value [-s <day>] [-e <day>]

  Reconstructs the portfolio holdings from the user transaction files and
  displays the total portfolio value for every trading day of the period.
  Days are in YYYYMMDD form; the period defaults to the whole data set.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "First day of the period (YYYYMMDD)")
	f.StringVar(&c.end, "e", "", "Last day of the period (YYYYMMDD)")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	days, assets, transactions, prices, status := loadAnalysis(c.start, c.end)
	if status != subcommands.ExitSuccess {
		return status
	}

	report := b3folio.NewValueReport(days, assets, transactions, prices)
	for _, m := range report.Missing {
		log.Printf("warning: %v", m)
	}
	printMarkdown(renderer.SeriesMarkdown(report))
	return subcommands.ExitSuccess
}

// loadAnalysis assembles the inputs shared by the value and simulate
// commands: the trading-day window, the tracked assets, the transaction set
// and the price table.
func loadAnalysis(start, end string) (days []b3folio.Day, assets []string, transactions b3folio.TransactionSet, prices *b3folio.PriceTable, status subcommands.ExitStatus) {
	var startDay, endDay b3folio.Day
	var err error
	if start != "" {
		if startDay, err = b3folio.ParseDay(start); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil, nil, nil, nil, subcommands.ExitUsageError
		}
	}
	if end != "" {
		if endDay, err = b3folio.ParseDay(end); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil, nil, nil, nil, subcommands.ExitUsageError
		}
	}

	transactions, err = decodeTransactions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, nil, nil, nil, subcommands.ExitFailure
	}
	assets = transactions.Tickers()

	prices, err = decodePrices(assets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, nil, nil, nil, subcommands.ExitFailure
	}

	history, err := decodeIndex()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, nil, nil, nil, subcommands.ExitFailure
	}

	days = tradingDays(history, prices, startDay, endDay)
	if len(days) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no trading days in the selected period")
		return nil, nil, nil, nil, subcommands.ExitFailure
	}
	return days, assets, transactions, prices, subcommands.ExitSuccess
}
