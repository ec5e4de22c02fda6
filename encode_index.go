package b3folio

import (
	"encoding/csv"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

// This file decodes market-index history files (IBOV): CSV with a header
// line and the fields date, opening, closing, variation, minimum, maximum,
// volume. Dates are DD/MM/YYYY; integer fields use '.' as a thousands
// separator; the variation uses a comma decimal.

// indexFilePrefix selects the index files inside the raw input directory.
const indexFilePrefix = "IBOV"

// indexDayFormat is the date form used in index CSV files.
const indexDayFormat = "02/01/2006"

// IndexDay holds one trading session of market-index data.
type IndexDay struct {
	Opening   int64
	Closing   int64
	Variation float64
	Minimum   int64
	Maximum   int64
	Volume    int64
}

// IndexHistory maps each trading session to its index data. Its day keys
// double as the trading calendar for the analysis window.
type IndexHistory map[Day]IndexDay

// Days returns the trading sessions in increasing order.
func (h IndexHistory) Days() []Day {
	return slices.Sorted(maps.Keys(h))
}

// Decode reads an index CSV file and merges its sessions into the history.
// filename is for error messages only. The first line is a header and is
// skipped. Numeric fields that fail to parse are left at zero, the session
// is still recorded.
func (h IndexHistory) Decode(filename string, r io.Reader) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("format error in %q: %w", filename, err)
		}
		line++
		if line == 1 {
			continue // header
		}
		if len(record) < 6 {
			return fmt.Errorf("format error in %q on line %d: want at least 6 fields, got %d", filename, line, len(record))
		}

		on, err := time.Parse(indexDayFormat, record[0])
		if err != nil {
			return fmt.Errorf("format error in %q on line %d: invalid date %q: %w", filename, line, record[0], err)
		}

		idd := IndexDay{
			Opening:   indexInt(record[1]),
			Closing:   indexInt(record[2]),
			Variation: indexFloat(record[3]),
			Minimum:   indexInt(record[4]),
			Maximum:   indexInt(record[5]),
		}
		if len(record) > 6 {
			idd.Volume = indexInt(record[6])
		}
		h[Day(on.Format(DayFormat))] = idd
	}
}

// indexInt parses an integer field with '.' thousands separators, zero when
// unparseable.
func indexInt(field string) int64 {
	v, err := strconv.ParseInt(strings.ReplaceAll(field, ".", ""), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// indexFloat parses a comma-decimal field, zero when unparseable.
func indexFloat(field string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(field, ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// FindIndexFiles returns the index history files under dir, identified by
// the IBOV name prefix. Hidden files are ignored.
func FindIndexFiles(dir string) ([]string, error) {
	return findFiles(dir, indexFilePrefix)
}
