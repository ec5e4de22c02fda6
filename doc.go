// Package b3folio reconstructs an investor's asset holdings and daily
// portfolio value from a history of buy/sell transactions and per-day prices
// parsed out of B3 (the Brazilian stock exchange) raw history dumps.
//
// The pipeline runs in two stages: [Holdings] turns a transaction history
// into a sequence of [HoldingRange], each describing a constant position over
// an interval of trading days, and [Value] turns those ranges plus a
// [PriceTable] into a day-by-day [ValueSeries] of total portfolio value.
// [SimulateSwap] branches off that pipeline to replay history with one day's
// purchase redirected to a different ticker, preserving the amount spent.
package b3folio
