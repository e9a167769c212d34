package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// TableFunc returns the market table in markdown for a display currency and
// a number of tickers.
type TableFunc func(ctx context.Context, currency string, limit int) (string, error)

// MarketTable is the Function giving the model access to the market table.
type MarketTable struct {
	Table    TableFunc
	Currency string // default currency
	Limit    int    // default limit
}

func (m *MarketTable) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "market_table",
		Description: "Returns the current cryptocurrency market table: rank, name, symbol, price changes over 1h, 24h and 7d in percent, price, market capitalization, circulating supply and 24h volume.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"currency": {
					Type:        genai.TypeString,
					Description: fmt.Sprintf("ISO 4217 code of the display currency, defaults to %s.", m.Currency),
				},
				"limit": {
					Type:        genai.TypeInteger,
					Description: fmt.Sprintf("Number of top ranked coins, defaults to %d.", m.Limit),
				},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The market table in markdown.",
		},
	}
}

func (m *MarketTable) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	name := m.Declaration().Name
	currency, limit := m.Currency, m.Limit
	if v, ok := args["currency"]; ok {
		s, ok := v.(string)
		if !ok {
			return failure(id, name, fmt.Sprintf("invalid currency type %T, expected string", v))
		}
		currency = s
	}
	if v, ok := args["limit"]; ok {
		f, ok := v.(float64)
		if !ok {
			return failure(id, name, fmt.Sprintf("invalid limit type %T, expected a number", v))
		}
		limit = int(f)
	}

	table, err := m.Table(ctx, currency, limit)
	if err != nil {
		return failure(id, name, err.Error())
	}
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": table},
	}
}

// NewAnalyst returns the expert answering the user about the market.
func NewAnalyst(functions ...Function) *Expert {
	return &Expert{
		Name:      "Analyst",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: Declarations(functions...)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a cryptocurrency market analyst answering questions in a terminal.

			Read the market table with the market_table function before answering any
			question about prices, ranks or changes, do not rely on your memory for figures.
			Quote the figures you use. Answer in short markdown.
			You never give financial advice.
			`}}},
		},
		Library: NewLibrary(functions...),
	}
}
