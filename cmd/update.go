package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/amello/b3folio"
	"github.com/google/subcommands"
)

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh the price cache from the raw B3 dumps" }
func (*updateCmd) Usage() string {
	return `b3f update

  Decodes the raw B3 history dumps for every ticker present in the user
  transaction files and stores the prices in the cache, so later commands
  do not have to read the dumps again.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transactions, err := decodeTransactions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	assets := transactions.Tickers()
	if len(assets) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no transactions found, nothing to cache.")
		return subcommands.ExitSuccess
	}

	table, err := decodeRawPrices(assets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	cache, err := b3folio.OpenPriceCache(*cacheFile, reportingCurrency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer cache.Close()

	if err := cache.Store(table); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Cached %d prices for %d tickers.\n", table.Len(), len(table.Tickers()))
	return subcommands.ExitSuccess
}
