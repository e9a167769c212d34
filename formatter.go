package coinmarket

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// BaseCurrency is the currency every Source quotes its monetary fields in.
const BaseCurrency = "USD"

// Converter converts an amount between two currencies.
type Converter interface {
	Convert(ctx context.Context, amount Amount, from, to string) (Amount, error)
}

// Identity is the Converter that only knows that a currency is worth itself.
type Identity struct{}

func (Identity) Convert(_ context.Context, amount Amount, from, to string) (Amount, error) {
	if from != to {
		return NaN(), fmt.Errorf("no rate to convert %s to %s", from, to)
	}
	return amount, nil
}

// Formatter maps Tickers to display Rows in Currency.
type Formatter struct {
	Converter Converter
	Currency  string // display currency, BaseCurrency if empty.
}

func (f Formatter) currency() string {
	if f.Currency == "" {
		return BaseCurrency
	}
	return f.Currency
}

// FormatRow converts and formats a single ticker.
//
// Each monetary field is converted on its own, the first conversion error is
// returned as is and no partial row is produced.
func (f Formatter) FormatRow(ctx context.Context, t Ticker) (Row, error) {
	row := Row{
		Rank:      t.Rank,
		Name:      t.Name,
		Symbol:    t.Symbol,
		Change1h:  ClassifyGrowth(t.PercentChange1h),
		Change24h: ClassifyGrowth(t.PercentChange24h),
		Change7d:  ClassifyGrowth(t.PercentChange7d),
	}

	fields := []struct {
		name  string
		value string
		dst   *string
	}{
		{"price", t.PriceUSD, &row.Price},
		{"market cap", t.MarketCapUSD, &row.MarketCap},
		{"supply", t.AvailableSupply, &row.Supply},
		{"volume", t.Volume24hUSD, &row.Volume},
	}
	for _, field := range fields {
		amount, err := f.Converter.Convert(ctx, ParseAmount(field.value), BaseCurrency, f.currency())
		if err != nil {
			return Row{}, fmt.Errorf("cannot convert %s of %s: %w", field.name, t.Symbol, err)
		}
		*field.dst = FormatCurrency(amount)
	}
	return row, nil
}

// FormatRows formats all tickers concurrently, one goroutine per ticker.
//
// Rows are returned in the tickers order whatever the completion order is.
// The first error cancels the remaining work and no rows are returned.
func (f Formatter) FormatRows(ctx context.Context, tickers []Ticker) ([]Row, error) {
	rows := make([]Row, len(tickers))
	g, ctx := errgroup.WithContext(ctx)
	for i, t := range tickers {
		g.Go(func() error {
			row, err := f.FormatRow(ctx, t)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
