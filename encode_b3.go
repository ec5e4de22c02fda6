package b3folio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file decodes the raw stock history dumps published on the B3 website
// (COTAHIST files). Each quote line is fixed-column ASCII; prices are
// integers scaled by 100.

// Fixed column offsets of a COTAHIST quote line.
const (
	b3DateStart   = 2
	b3DateEnd     = 10
	b3TickerStart = 12
	b3TickerEnd   = 24
	b3PriceStart  = 95
	b3PriceEnd    = 108
)

// b3FilePrefix selects the raw dump files inside the raw input directory.
const b3FilePrefix = "COTA"

// DecodeB3History reads a raw B3 history dump and appends, for each of the
// given assets, the day's average price to the table. filename is for error
// messages only.
//
// A ticker in its canonical form (say ABEV3, BPAC11) may appear in the dump
// under market variations such as the fractional market (ABEV3F, BPAC11F);
// only exact matches are kept.
func (p *PriceTable) DecodeB3History(filename string, r io.Reader, assets []string) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := scanner.Text()
		for _, asset := range assets {
			if !strings.Contains(txt, asset) {
				continue
			}
			ticker, day, price, err := decodeB3Line(txt)
			if err != nil {
				return fmt.Errorf("format error in %q on line %d: %w", filename, line, err)
			}
			if ticker == asset {
				p.Append(ticker, day, price)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading %q: %w", filename, err)
	}
	return nil
}

// decodeB3Line extracts the ticker, day and average price from a quote line.
func decodeB3Line(line string) (ticker string, day Day, price Money, err error) {
	if len(line) < b3PriceEnd {
		return "", "", Money{}, fmt.Errorf("quote line too short: %d columns", len(line))
	}
	ticker = strings.TrimSpace(line[b3TickerStart:b3TickerEnd])
	day, err = ParseDay(line[b3DateStart:b3DateEnd])
	if err != nil {
		return "", "", Money{}, err
	}
	cents, err := strconv.ParseInt(strings.TrimSpace(line[b3PriceStart:b3PriceEnd]), 10, 64)
	if err != nil {
		return "", "", Money{}, fmt.Errorf("invalid price field: %w", err)
	}
	// Prices in the dump are scaled by 100.
	price = M(decimal.New(cents, -2), "BRL")
	return ticker, day, price, nil
}

// FindB3Files returns the raw dump files under dir, identified by the COTA
// name prefix. Hidden files are ignored.
func FindB3Files(dir string) ([]string, error) {
	return findFiles(dir, b3FilePrefix)
}

// findFiles lists the non-hidden regular files under dir whose name starts
// with prefix (any file when prefix is empty).
func findFiles(dir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read input directory %q: %w", dir, err)
	}
	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}
