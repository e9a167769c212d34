package coinmarket

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Source is a remote ticker data source.
//
// Tickers returns at most limit tickers, most capitalized first.
type Source interface {
	Tickers(ctx context.Context, limit int) ([]Ticker, error)
}

// Ticker is a market record as received from a data source.
//
// Numeric fields are kept as the decimal strings the source sent, they are
// only parsed when formatted.
type Ticker struct {
	Name             string `json:"name"`
	Symbol           string `json:"symbol"`
	Rank             Rank   `json:"rank"`
	PriceUSD         string `json:"price_usd"`
	MarketCapUSD     string `json:"market_cap_usd"`
	Volume24hUSD     string `json:"24h_volume_usd"`
	AvailableSupply  string `json:"available_supply"`
	PercentChange1h  string `json:"percent_change_1h"`
	PercentChange24h string `json:"percent_change_24h"`
	PercentChange7d  string `json:"percent_change_7d"`
}

// Rank is the market capitalization ordinal of a ticker, 1 being the largest.
type Rank int

func (r Rank) String() string { return strconv.Itoa(int(r)) }

// UnmarshalJSON accepts both a number and a quoted number, some APIs send
// `"rank": "1"`.
func (r *Rank) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*r = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid rank %s: %w", data, err)
	}
	*r = Rank(n)
	return nil
}

// MarshalJSON always writes a number.
func (r Rank) MarshalJSON() ([]byte, error) { return json.Marshal(int(r)) }
