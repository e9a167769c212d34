// Package coinmarket turns cryptocurrency ticker data into display rows for
// a terminal table.
//
// The pipeline is short and linear:
//   - A Source fetches the top ranked Tickers from a remote market API.
//   - A Formatter maps every Ticker to a Row: the three percentage changes are
//     classified as positive or negative Growth, and the four monetary fields
//     are converted from BaseCurrency into the display currency through a
//     Converter, then formatted with two decimals and thousands separators.
//   - The renderer package prints the Rows as a borderless colorized table.
//
// Rows are computed concurrently but always come back in the Source order.
// A single conversion failure fails the whole batch.
//
// This package is the foundation of the `cmt` command-line tool.
package coinmarket
