package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/coinmarket"
	"github.com/etnz/coinmarket/exchange"
	"github.com/etnz/coinmarket/renderer"
	"github.com/google/subcommands"
)

type currenciesCmd struct{}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "list the supported display currencies" }
func (*currenciesCmd) Usage() string {
	return `cmt currencies

  Lists the currencies prices can be converted to, with their symbol.
`
}

func (c *currenciesCmd) SetFlags(f *flag.FlagSet) {}

func (c *currenciesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rates := exchange.New(coinmarket.NewClient(0))
	r := lipgloss.NewRenderer(os.Stdout)
	if err := printCurrencies(ctx, os.Stdout, r, rates); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printCurrencies prints the ISO currencies rates can convert to.
func printCurrencies(ctx context.Context, w io.Writer, r *lipgloss.Renderer, rates *exchange.Client) error {
	codes, err := rates.Currencies(ctx, coinmarket.BaseCurrency)
	if err != nil {
		return err
	}
	var rows [][]string
	for _, code := range codes {
		if !coinmarket.IsCurrency(code) {
			continue // the service also lists non ISO codes
		}
		rows = append(rows, []string{code, coinmarket.Grapheme(code)})
	}
	header := []string{r.NewStyle().Bold(true).Render("Code"), r.NewStyle().Bold(true).Render("Symbol")}
	return renderer.Grid(w, r.NewStyle().Padding(0, 1), header, rows)
}
