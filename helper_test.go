package coinmarket

// bitcoin is the reference ticker used across tests.
var bitcoin = Ticker{
	Name:             "Bitcoin",
	Symbol:           "BTC",
	Rank:             1,
	PriceUSD:         "6000.5",
	MarketCapUSD:     "100000000",
	Volume24hUSD:     "5000000",
	AvailableSupply:  "17000000",
	PercentChange1h:  "-1.2",
	PercentChange24h: "3.4",
	PercentChange7d:  "-0.5",
}

// ticker is a helper for tests to create a ticker with only a rank and a price.
func ticker(rank int, symbol, price string) Ticker {
	return Ticker{
		Name:             symbol,
		Symbol:           symbol,
		Rank:             Rank(rank),
		PriceUSD:         price,
		MarketCapUSD:     price,
		Volume24hUSD:     price,
		AvailableSupply:  price,
		PercentChange1h:  "0.00",
		PercentChange24h: "0.00",
		PercentChange7d:  "0.00",
	}
}
