package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/coinmarket"
	"github.com/etnz/coinmarket/renderer"
	"github.com/google/subcommands"
)

// topCmd prints the market table.
type topCmd struct{}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "print the top ranked coins (default command)" }
func (*topCmd) Usage() string {
	return `cmt [-limit <n>] [-currency <code>] [-provider <name>] [top]

  Prints the top ranked cryptocurrencies as a table, with prices, market
  capitalizations, supplies and volumes converted to the display currency.
  This is the command run when no subcommand is given.
`
}

func (c *topCmd) SetFlags(f *flag.FlagSet) {}

func (c *topCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return Top(ctx)
}

// Top prints the market table configured by the global flags.
func Top(ctx context.Context) subcommands.ExitStatus {
	cur, err := checkFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	client := coinmarket.NewClient(0)
	source, err := newSource(client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	r := lipgloss.NewRenderer(os.Stdout)
	if err := printTable(ctx, os.Stdout, r, source, newConverter(cur, client), cur, *limit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// marketRows fetches the tickers and formats them in cur.
func marketRows(ctx context.Context, source coinmarket.Source, conv coinmarket.Converter, cur string, limit int) ([]coinmarket.Row, error) {
	tickers, err := source.Tickers(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch tickers: %w", err)
	}
	rows, err := coinmarket.Formatter{Converter: conv, Currency: cur}.FormatRows(ctx, tickers)
	if err != nil {
		return nil, fmt.Errorf("cannot format tickers: %w", err)
	}
	return rows, nil
}

// printTable prints the market table on w. Nothing is printed unless every
// row could be computed.
func printTable(ctx context.Context, w io.Writer, r *lipgloss.Renderer, source coinmarket.Source, conv coinmarket.Converter, cur string, limit int) error {
	var err error
	werr := renderer.ConditionalBlock(w, func(bw io.Writer) bool {
		var rows []coinmarket.Row
		rows, err = marketRows(ctx, source, conv, cur, limit)
		if err != nil {
			return false
		}
		err = renderer.Render(bw, renderer.NewLayout(cur, r), rows)
		return err == nil
	})
	if err != nil {
		return err
	}
	return werr
}
