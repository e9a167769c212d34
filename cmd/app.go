// Package cmd implements the cmt command-line application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/etnz/coinmarket"
	"github.com/etnz/coinmarket/coinlore"
	"github.com/etnz/coinmarket/coinmarketcap"
	"github.com/etnz/coinmarket/exchange"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&topCmd{}, "market")
	c.Register(&currenciesCmd{}, "market")
	c.Register(&assistCmd{}, "market")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	limit    = flag.Int("limit", 20, "Maximum number of ranked tickers to fetch.")
	currency = flag.String("currency", coinmarket.BaseCurrency, "Display currency, an ISO 4217 code.")
	provider = flag.String("provider", providerCoinLore, "Ticker provider: coinlore or coinmarketcap.")
	timeout  = flag.Duration("timeout", 0, "Deadline for the whole run, 0 means no deadline.")
	Verbose  = flag.Bool("v", false, "Log debug information to stderr.")
)

// Environment variables providing the global flags defaults. They are also
// passed to extensions.
const (
	EnvLimit    = "CMT_LIMIT"
	EnvCurrency = "CMT_CURRENCY"
	EnvProvider = "CMT_PROVIDER"
	EnvTimeout  = "CMT_TIMEOUT"
	EnvVerbose  = "CMT_VERBOSE"
)

// envFlags maps flag names to their environment variable.
var envFlags = map[string]string{
	"limit":    EnvLimit,
	"currency": EnvCurrency,
	"provider": EnvProvider,
	"timeout":  EnvTimeout,
	"v":        EnvVerbose,
}

const (
	providerCoinLore      = "coinlore"
	providerCoinMarketCap = "coinmarketcap"
)

// Setup must be called after flag.Parse(). It loads the .env file, applies
// environment defaults to the flags not set on the command line and
// configures the logs.
func Setup() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}
	if err := applyEnv(flag.CommandLine, os.LookupEnv); err != nil {
		return err
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// applyEnv sets the flags of fs that were not set explicitly from their
// environment variable.
func applyEnv(fs *flag.FlagSet, lookup func(string) (string, bool)) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for name, env := range envFlags {
		if set[name] || fs.Lookup(name) == nil {
			continue
		}
		v, ok := lookup(env)
		if !ok {
			continue
		}
		if err := fs.Set(name, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, v, err)
		}
	}
	return nil
}

// displayCurrency returns the validated -currency flag.
func displayCurrency() (string, error) {
	cur := coinmarket.NormalizeCurrency(*currency)
	if !coinmarket.IsCurrency(cur) {
		return "", fmt.Errorf("unknown currency %q", *currency)
	}
	return cur, nil
}

// checkFlags validates the global flags, it returns the display currency.
func checkFlags() (string, error) {
	if *limit <= 0 {
		return "", fmt.Errorf("invalid limit %d, must be positive", *limit)
	}
	switch *provider {
	case providerCoinLore, providerCoinMarketCap:
	default:
		return "", fmt.Errorf("unsupported provider %q", *provider)
	}
	return displayCurrency()
}

// newSource returns the source selected by the -provider flag.
func newSource(client *http.Client) (coinmarket.Source, error) {
	switch *provider {
	case providerCoinLore:
		return coinlore.New(client), nil
	case providerCoinMarketCap:
		return coinmarketcap.New(os.Getenv(coinmarketcap.EnvAPIKey), client)
	}
	return nil, fmt.Errorf("unsupported provider %q", *provider)
}

// newConverter returns the converter from coinmarket.BaseCurrency to cur.
func newConverter(cur string, client *http.Client) coinmarket.Converter {
	if cur == coinmarket.BaseCurrency {
		return coinmarket.Identity{}
	}
	return exchange.New(client)
}

// withTimeout applies the -timeout flag to ctx.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if *timeout > 0 {
		return context.WithTimeout(ctx, *timeout)
	}
	return context.WithCancel(ctx)
}
