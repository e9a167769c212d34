// Package coinmarketcap fetches tickers from the CoinMarketCap Pro API.
//
// The API needs a key, see https://coinmarketcap.com/api/. It is read from
// the CMC_PRO_API_KEY environment variable by the cmt command.
package coinmarketcap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/etnz/coinmarket"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the CoinMarketCap Pro API root.
const DefaultBaseURL = "https://pro-api.coinmarketcap.com"

// EnvAPIKey is the environment variable holding the API key.
const EnvAPIKey = "CMC_PRO_API_KEY"

// ErrNoAPIKey is returned when the client is created without a key.
var ErrNoAPIKey = errors.New("coinmarketcap: missing API key, set " + EnvAPIKey)

// Client is a coinmarket.Source backed by the CoinMarketCap listings.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// New returns a Client on the default base URL.
func New(apiKey string, client *http.Client) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	return &Client{BaseURL: DefaultBaseURL, APIKey: apiKey, HTTP: client}, nil
}

type status struct {
	Timestamp    string `json:"timestamp"`
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	CreditCount  int    `json:"credit_count"`
}

type quote struct {
	Price            decimal.NullDecimal `json:"price"`
	Volume24h        decimal.NullDecimal `json:"volume_24h"`
	PercentChange1h  decimal.NullDecimal `json:"percent_change_1h"`
	PercentChange24h decimal.NullDecimal `json:"percent_change_24h"`
	PercentChange7d  decimal.NullDecimal `json:"percent_change_7d"`
	MarketCap        decimal.NullDecimal `json:"market_cap"`
}

type listing struct {
	ID                int                 `json:"id"`
	Name              string              `json:"name"`
	Symbol            string              `json:"symbol"`
	CMCRank           coinmarket.Rank     `json:"cmc_rank"`
	CirculatingSupply decimal.NullDecimal `json:"circulating_supply"`
	Quote             map[string]quote    `json:"quote"`
}

type listings struct {
	Status status    `json:"status"`
	Data   []listing `json:"data"`
}

// Tickers returns the top limit listings in rank order, quoted in
// coinmarket.BaseCurrency.
func (c *Client) Tickers(ctx context.Context, limit int) ([]coinmarket.Ticker, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit %d", limit)
	}
	q := url.Values{}
	q.Set("start", "1")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("convert", coinmarket.BaseCurrency)
	addr := c.BaseURL + "/v1/cryptocurrency/listings/latest?" + q.Encode()

	header := http.Header{}
	header.Set("X-CMC_PRO_API_KEY", c.APIKey)

	var content listings
	if err := coinmarket.GetJSON(ctx, c.HTTP, addr, header, &content); err != nil {
		return nil, fmt.Errorf("coinmarketcap: %w", err)
	}
	if content.Status.ErrorCode != 0 {
		return nil, fmt.Errorf("coinmarketcap: %s (code %d)", content.Status.ErrorMessage, content.Status.ErrorCode)
	}

	result := make([]coinmarket.Ticker, 0, len(content.Data))
	for _, l := range content.Data {
		usd, ok := l.Quote[coinmarket.BaseCurrency]
		if !ok {
			return nil, fmt.Errorf("coinmarketcap: no %s quote for %s", coinmarket.BaseCurrency, l.Symbol)
		}
		result = append(result, coinmarket.Ticker{
			Name:             l.Name,
			Symbol:           l.Symbol,
			Rank:             l.CMCRank,
			PriceUSD:         str(usd.Price),
			MarketCapUSD:     str(usd.MarketCap),
			Volume24hUSD:     str(usd.Volume24h),
			AvailableSupply:  str(l.CirculatingSupply),
			PercentChange1h:  percent(usd.PercentChange1h),
			PercentChange24h: percent(usd.PercentChange24h),
			PercentChange7d:  percent(usd.PercentChange7d),
		})
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// str returns the decimal string, "" for null.
func str(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

// percent returns the change with two decimals like the legacy ticker did.
func percent(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}
