package b3folio

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // SQLite driver
)

// PriceCache persists parsed prices in a small SQLite database, so the raw
// exchange dumps only have to be decoded once. Prices are stored as an
// integer number of centavos, the same scaling the dumps use.
type PriceCache struct {
	db  *sql.DB
	cur string
}

const createPricesTable = `
CREATE TABLE IF NOT EXISTS prices (
	ticker TEXT NOT NULL,
	day    TEXT NOT NULL,
	cents  INTEGER NOT NULL,
	PRIMARY KEY (ticker, day)
)`

// OpenPriceCache opens (creating if needed) the cache database at path.
// The parent directory is created when missing. currency is the quoting
// currency of the cached prices.
func OpenPriceCache(path, currency string) (*PriceCache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("could not create cache directory %q: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open price cache %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not reach price cache %q: %w", path, err)
	}
	if _, err := db.Exec(createPricesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not initialize price cache %q: %w", path, err)
	}
	return &PriceCache{db: db, cur: currency}, nil
}

// Close releases the underlying database.
func (c *PriceCache) Close() error { return c.db.Close() }

// Len returns the number of cached (ticker, day) prices.
func (c *PriceCache) Len() (int, error) {
	var n int
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM prices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("could not count cached prices: %w", err)
	}
	return n, nil
}

// Store upserts every price of the table into the cache, atomically.
func (c *PriceCache) Store(table *PriceTable) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("could not start cache transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO prices (ticker, day, cents) VALUES (?, ?, ?)
		ON CONFLICT (ticker, day) DO UPDATE SET cents = excluded.cents`)
	if err != nil {
		return fmt.Errorf("could not prepare cache statement: %w", err)
	}
	defer stmt.Close()

	for _, ticker := range table.Tickers() {
		for day, price := range table.prices[ticker] {
			cents := price.value.Shift(2).IntPart()
			if _, err := stmt.Exec(ticker, string(day), cents); err != nil {
				return fmt.Errorf("could not cache price for %s on %s: %w", ticker, day, err)
			}
		}
	}
	return tx.Commit()
}

// Load reads the whole cache back into a price table.
func (c *PriceCache) Load() (*PriceTable, error) {
	rows, err := c.db.Query(`SELECT ticker, day, cents FROM prices ORDER BY ticker, day`)
	if err != nil {
		return nil, fmt.Errorf("could not read price cache: %w", err)
	}
	defer rows.Close()

	table := NewPriceTable(c.cur)
	for rows.Next() {
		var ticker, day string
		var cents int64
		if err := rows.Scan(&ticker, &day, &cents); err != nil {
			return nil, fmt.Errorf("could not scan cached price: %w", err)
		}
		table.Append(ticker, Day(day), M(decimal.New(cents, -2), c.cur))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read price cache: %w", err)
	}
	return table, nil
}
