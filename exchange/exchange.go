// Package exchange converts amounts between currencies using a public
// exchange rate API (https://open.er-api.com).
package exchange

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/coinmarket"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// DefaultBaseURL is the exchange rate API root.
const DefaultBaseURL = "https://open.er-api.com/v6"

// Client is a coinmarket.Converter.
//
// Every conversion looks the rate up, concurrent lookups of the same pair
// share a single request.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	flight  singleflight.Group
}

// New returns a Client on the default base URL.
func New(client *http.Client) *Client {
	return &Client{BaseURL: DefaultBaseURL, HTTP: client}
}

/*
latest returns the rates of a base currency.

	{
	  "result": "success",
	  "base_code": "USD",
	  "time_last_update_unix": 1760832151,
	  "rates": {
	    "USD": 1,
	    "AED": 3.6725,
	    "EUR": 0.857,
	    ...
	  }
	}
*/
func (c *Client) latest(ctx context.Context, base string) (any, error) {
	var jobj any
	if err := coinmarket.GetJSON(ctx, c.HTTP, c.BaseURL+"/latest/"+base, nil, &jobj); err != nil {
		return nil, fmt.Errorf("error retrieving %s rates: %w", base, err)
	}
	result, err := jsonpath.Get("$.result", jobj)
	if err != nil {
		return nil, fmt.Errorf("error reading %s rates: %w", base, err)
	}
	if result != "success" {
		kind, _ := jsonpath.Get(`$["error-type"]`, jobj)
		return nil, fmt.Errorf("error retrieving %s rates: %v", base, kind)
	}
	return jobj, nil
}

// Rate returns how many `to` one `from` is worth.
func (c *Client) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	v, err, _ := c.flight.Do(from+"/"+to, func() (any, error) {
		jobj, err := c.latest(ctx, from)
		if err != nil {
			return nil, err
		}
		jval, err := jsonpath.Get("$.rates."+to, jobj)
		if err != nil {
			return nil, fmt.Errorf("no rate for %s/%s", from, to)
		}
		val, ok := jval.(float64)
		if !ok || val <= 0 {
			return nil, fmt.Errorf("invalid rate for %s/%s: %v", from, to, jval)
		}
		return decimal.NewFromFloat(val), nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return v.(decimal.Decimal), nil
}

// Convert implements coinmarket.Converter. Converting a currency to itself
// does not need a lookup.
func (c *Client) Convert(ctx context.Context, amount coinmarket.Amount, from, to string) (coinmarket.Amount, error) {
	if from == to {
		return amount, nil
	}
	rate, err := c.Rate(ctx, from, to)
	if err != nil {
		return coinmarket.NaN(), err
	}
	return amount.Mul(rate), nil
}

// Currencies returns the sorted codes base can be converted to.
func (c *Client) Currencies(ctx context.Context, base string) ([]string, error) {
	jobj, err := c.latest(ctx, base)
	if err != nil {
		return nil, err
	}
	jval, err := jsonpath.Get("$.rates", jobj)
	if err != nil {
		return nil, fmt.Errorf("error reading %s rates: %w", base, err)
	}
	rates, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("error reading %s rates: not an object", base)
	}
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}
