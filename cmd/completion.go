package cmd

import (
	"github.com/etnz/coinmarket/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// currencyHints are suggested for -currency, any ISO code is accepted.
var currencyHints = predict.Set{"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD", "CNY", "KRW", "INR", "BRL"}

// Completion returns the shell completion tree of cmt.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"top":        {},
			"currencies": {},
			"assist":     {Args: predict.Something},
			"topic":      {Args: predict.Set(append(topics, "readme"))},
			"help":       {},
			"flags":      {},
			"commands":   {},
		},
		Flags: map[string]complete.Predictor{
			"limit":    predict.Something,
			"currency": currencyHints,
			"provider": predict.Set{providerCoinLore, providerCoinMarketCap},
			"timeout":  predict.Something,
			"v":        predict.Nothing,
		},
	}
}
