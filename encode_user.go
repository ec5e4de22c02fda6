package b3folio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// This file decodes the user's own transaction history: plain text files,
// one transaction per line, whitespace separated fields in the order
// ticker, date (YYYY-MM-DD), buy quantity, sell quantity, buy price,
// sell price. Prices may carry a leading currency marker ($ or R$).

// userDayFormat is the date form used in user transaction files.
const userDayFormat = "2006-01-02"

// Decode reads transactions from r and appends them to the set. filename is
// for error messages only. Blank lines are skipped.
func (s TransactionSet) Decode(filename string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" {
			continue
		}
		t, err := decodeTransactionLine(txt)
		if err != nil {
			return fmt.Errorf("format error in %q on line %d: %w", filename, line, err)
		}
		s.Append(t)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading %q: %w", filename, err)
	}
	return nil
}

// decodeTransactionLine parses one whitespace-separated transaction line.
func decodeTransactionLine(line string) (Transaction, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 6 {
		return Transaction{}, fmt.Errorf("want 6 fields (ticker date buy sell buyPrice sellPrice), got %d", len(tokens))
	}

	on, err := time.Parse(userDayFormat, tokens[1])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid date %q want format %q: %w", tokens[1], userDayFormat, err)
	}

	buyQuantity, err := ParseQuantity(tokens[2])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid buy quantity %q: %w", tokens[2], err)
	}
	sellQuantity, err := ParseQuantity(tokens[3])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid sell quantity %q: %w", tokens[3], err)
	}
	buyPrice, err := parsePrice(tokens[4])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid buy price %q: %w", tokens[4], err)
	}
	sellPrice, err := parsePrice(tokens[5])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid sell price %q: %w", tokens[5], err)
	}

	return Transaction{
		Ticker:       tokens[0],
		Day:          Day(on.Format(DayFormat)),
		BuyQuantity:  buyQuantity,
		SellQuantity: sellQuantity,
		BuyPrice:     buyPrice,
		SellPrice:    sellPrice,
	}, nil
}

// parsePrice parses a price field, stripping an optional leading currency
// marker.
func parsePrice(token string) (Money, error) {
	token = strings.TrimPrefix(token, "R$")
	token = strings.TrimPrefix(token, "$")
	q, err := ParseQuantity(token)
	if err != nil {
		return Money{}, err
	}
	return M(q.value, "BRL"), nil
}

// FindTransactionFiles returns the user transaction files under dir. Hidden
// files are ignored.
func FindTransactionFiles(dir string) ([]string, error) {
	return findFiles(dir, "")
}
