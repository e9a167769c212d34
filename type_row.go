package coinmarket

// NumColumns is the number of cells in a displayed row.
const NumColumns = 10

// Row is the display projection of a Ticker: conversions are done, money
// fields are formatted in the display currency.
//
// Field order is the column order of the table.
type Row struct {
	Rank      Rank
	Name      string
	Symbol    string
	Change1h  Growth
	Change24h Growth
	Change7d  Growth
	Price     string
	MarketCap string
	Supply    string
	Volume    string
}

// Cells returns the row cells in column order, percentage changes are
// rendered by style.
func (r Row) Cells(style func(Growth) string) []string {
	return []string{
		r.Rank.String(),
		r.Name,
		r.Symbol,
		style(r.Change1h),
		style(r.Change24h),
		style(r.Change7d),
		r.Price,
		r.MarketCap,
		r.Supply,
		r.Volume,
	}
}
