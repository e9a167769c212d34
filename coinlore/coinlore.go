// Package coinlore fetches tickers from the CoinLore public API.
//
// CoinLore needs no API key and still serves the legacy ticker format where
// every number is a string, which makes it the default source.
package coinlore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/etnz/coinmarket"
	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the CoinLore API root.
const DefaultBaseURL = "https://api.coinlore.net/api"

// pageSize is the maximum number of tickers served per request.
const pageSize = 100

// Client is a coinmarket.Source backed by CoinLore.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a Client on the default base URL.
func New(client *http.Client) *Client {
	return &Client{BaseURL: DefaultBaseURL, HTTP: client}
}

// ticker is the CoinLore ticker payload.
//
//	{
//	  "id": "90",
//	  "symbol": "BTC",
//	  "name": "Bitcoin",
//	  "nameid": "bitcoin",
//	  "rank": 1,
//	  "price_usd": "6456.52",
//	  "percent_change_24h": "-1.47",
//	  "percent_change_1h": "0.05",
//	  "percent_change_7d": "-1.07",
//	  "market_cap_usd": "111586042785.56",
//	  "volume24": 3997655362.9586,
//	  "csupply": "17282687.00",
//	  ...
//	}
type ticker struct {
	Symbol           string          `json:"symbol"`
	Name             string          `json:"name"`
	Rank             coinmarket.Rank `json:"rank"`
	PriceUSD         string          `json:"price_usd"`
	PercentChange1h  string          `json:"percent_change_1h"`
	PercentChange24h string          `json:"percent_change_24h"`
	PercentChange7d  string          `json:"percent_change_7d"`
	MarketCapUSD     string          `json:"market_cap_usd"`
	Volume24         json.Number     `json:"volume24"`
	CirculatingSupp  string          `json:"csupply"`
}

type page struct {
	Data []ticker `json:"data"`
}

// Tickers returns the top limit tickers in rank order.
func (c *Client) Tickers(ctx context.Context, limit int) ([]coinmarket.Ticker, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit %d", limit)
	}
	result := make([]coinmarket.Ticker, 0, limit)
	for start := 0; len(result) < limit; start += pageSize {
		n := min(pageSize, limit-len(result))
		data, err := c.page(ctx, start, n)
		if err != nil {
			return nil, err
		}
		for _, t := range data {
			result = append(result, coinmarket.Ticker{
				Name:             t.Name,
				Symbol:           t.Symbol,
				Rank:             t.Rank,
				PriceUSD:         t.PriceUSD,
				MarketCapUSD:     t.MarketCapUSD,
				Volume24hUSD:     t.Volume24.String(),
				AvailableSupply:  t.CirculatingSupp,
				PercentChange1h:  t.PercentChange1h,
				PercentChange24h: t.PercentChange24h,
				PercentChange7d:  t.PercentChange7d,
			})
		}
		if len(data) < n {
			break // no more tickers
		}
	}
	if len(result) > limit {
		result = result[:limit]
	}
	logrus.Debugf("coinlore: %d tickers", len(result))
	return result, nil
}

func (c *Client) page(ctx context.Context, start, limit int) ([]ticker, error) {
	q := url.Values{}
	q.Set("start", strconv.Itoa(start))
	q.Set("limit", strconv.Itoa(limit))
	addr := c.BaseURL + "/tickers/?" + q.Encode()

	var content page
	if err := coinmarket.GetJSON(ctx, c.HTTP, addr, nil, &content); err != nil {
		return nil, fmt.Errorf("coinlore: %w", err)
	}
	return content.Data, nil
}
