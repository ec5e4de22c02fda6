// Package cmd implements the CLI application to analyse a B3 investment
// history.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/amello/b3folio"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&updateCmd{}, "data")
	c.Register(&indexCmd{}, "data")

	c.Register(&valueCmd{}, "reports")
	c.Register(&simulateCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var rawInputDir = flag.String("raw-input", "raw-input", "Directory holding the raw B3 history dumps (COTA*) and index files (IBOV*)")
var userInputDir = flag.String("user-input", "user-input", "Directory holding the user transaction files")
var cacheFile = flag.String("cache", filepath.Join("cache", "prices.db"), "Path to the price cache database")

// reportingCurrency is the quoting currency of every price in the B3 dumps.
const reportingCurrency = "BRL"

// decodeTransactions reads every file in the user input directory into a
// single transaction set.
func decodeTransactions() (b3folio.TransactionSet, error) {
	files, err := b3folio.FindTransactionFiles(*userInputDir)
	if err != nil {
		return nil, err
	}
	set := make(b3folio.TransactionSet)
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open transaction file %q: %w", file, err)
		}
		err = set.Decode(file, f)
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return set, nil
}

// decodeRawPrices parses the raw dumps for the given assets.
func decodeRawPrices(assets []string) (*b3folio.PriceTable, error) {
	files, err := b3folio.FindB3Files(*rawInputDir)
	if err != nil {
		return nil, err
	}
	table := b3folio.NewPriceTable(reportingCurrency)
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open raw input file %q: %w", file, err)
		}
		err = table.DecodeB3History(file, f, assets)
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return table, nil
}

// decodePrices loads the price table from the cache, falling back to the raw
// dumps when no cache exists yet.
func decodePrices(assets []string) (*b3folio.PriceTable, error) {
	if _, err := os.Stat(*cacheFile); errors.Is(err, fs.ErrNotExist) {
		return decodeRawPrices(assets)
	}
	cache, err := b3folio.OpenPriceCache(*cacheFile, reportingCurrency)
	if err != nil {
		return nil, err
	}
	defer cache.Close()
	return cache.Load()
}

// decodeIndex reads every index history file in the raw input directory.
func decodeIndex() (b3folio.IndexHistory, error) {
	files, err := b3folio.FindIndexFiles(*rawInputDir)
	if err != nil {
		return nil, err
	}
	history := make(b3folio.IndexHistory)
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open index file %q: %w", file, err)
		}
		err = history.Decode(file, f)
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return history, nil
}

// tradingDays returns the analysis day sequence: the index trading sessions
// when index data is available, otherwise the days quoted in the price
// table. start and end, when non-zero, clamp the window.
func tradingDays(history b3folio.IndexHistory, prices *b3folio.PriceTable, start, end b3folio.Day) []b3folio.Day {
	days := history.Days()
	if len(days) == 0 {
		days = prices.Days()
	}
	var window []b3folio.Day
	for _, day := range days {
		if start != "" && day.Before(start) {
			continue
		}
		if end != "" && day.After(end) {
			continue
		}
		window = append(window, day)
	}
	return window
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		// degraded but readable
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
