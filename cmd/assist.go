package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/coinmarket"
	"github.com/etnz/coinmarket/agent"
	"github.com/etnz/coinmarket/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant about the market" }
func (*assistCmd) Usage() string {
	return `cmt assist [<question>]

  Starts an interactive session with an AI assistant that reads the market
  table on demand. The question, if any, is asked first.
  Requires GEMINI_API_KEY or GOOGLE_API_KEY.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cur, err := checkFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	httpClient := coinmarket.NewClient(0)
	source, err := newSource(httpClient)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	table := &agent.MarketTable{
		Currency: cur,
		Limit:    *limit,
		Table: func(ctx context.Context, code string, n int) (string, error) {
			code = coinmarket.NormalizeCurrency(code)
			if !coinmarket.IsCurrency(code) {
				return "", fmt.Errorf("unknown currency %q", code)
			}
			if n <= 0 {
				return "", fmt.Errorf("invalid limit %d, must be positive", n)
			}
			ctx, cancel := withTimeout(ctx)
			defer cancel()
			rows, err := marketRows(ctx, source, newConverter(code, httpClient), code, n)
			if err != nil {
				return "", err
			}
			return renderer.Markdown(code, rows), nil
		},
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(table))
	a.Format = markdown
	if err := a.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
