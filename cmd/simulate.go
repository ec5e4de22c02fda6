package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/amello/b3folio"
	"github.com/amello/b3folio/renderer"
	"github.com/google/subcommands"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	day         string
	ticker      string
	replacement string
	start       string
	end         string
}

func (*simulateCmd) Name() string { return "simulate" }
func (*simulateCmd) Synopsis() string {
	return "replay history as if another ticker had been bought on a given day"
}
func (*simulateCmd) Usage() string {
	return `b3f simulate -d <day> -t <ticker> -r <replacement> [-s <day>] [-e <day>]

  Rewrites the purchases of <ticker> on <day> into purchases of
  <replacement> for the same amount of money, at that day's price, then
  displays the resulting daily portfolio value next to the actual one.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Day whose purchases to rewrite (YYYYMMDD)")
	f.StringVar(&c.ticker, "t", "", "Ticker bought on that day")
	f.StringVar(&c.replacement, "r", "", "Ticker to buy instead")
	f.StringVar(&c.start, "s", "", "First day of the period (YYYYMMDD)")
	f.StringVar(&c.end, "e", "", "Last day of the period (YYYYMMDD)")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.day == "" || c.ticker == "" || c.replacement == "" {
		fmt.Fprintln(os.Stderr, "Error: -d, -t and -r are all required")
		return subcommands.ExitUsageError
	}
	on, err := b3folio.ParseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	days, assets, transactions, prices, status := loadAnalysis(c.start, c.end)
	if status != subcommands.ExitSuccess {
		return status
	}

	report, err := b3folio.NewSimulationReport(days, assets, prices, transactions, on, c.ticker, c.replacement)
	if errors.Is(err, b3folio.ErrNoTransactions) {
		fmt.Fprintf(os.Stderr, "Nothing to simulate: %v\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, m := range report.Missing {
		log.Printf("warning: %v", m)
	}
	printMarkdown(renderer.SimulationMarkdown(report))
	return subcommands.ExitSuccess
}
