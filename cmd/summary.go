package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davral/etfpulse"
	"github.com/davral/etfpulse/date"
	"github.com/davral/etfpulse/kurv"
	"github.com/davral/etfpulse/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	etf string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the classification summary of an enriched ETF" }
func (*summaryCmd) Usage() string {
	return `etp summary -etf <SYM>

  Displays the per-classification summary of an enriched holdings file:
  positions, quantities and market value for stocks, covered calls,
  cash-secured puts and long options.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.etf, "etf", "", "ETF ticker symbol to summarize, e.g. KYLD")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.etf == "" {
		fmt.Fprintln(os.Stderr, "Error: -etf is required")
		return subcommands.ExitUsageError
	}

	etf := strings.ToUpper(c.etf)
	path := dataFile(kurv.EnrichedName(etf))
	in, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: no enriched holdings for %s, run 'etp pull -etf %s' first: %v\n", etf, etf, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	holdings, err := etfpulse.DecodeHoldings(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	// re-derive the classifications, the file stores them for humans
	holdings.Enrich(etf)

	report := etfpulse.NewSummaryReport(holdings, date.Today())
	printMarkdown(renderer.RenderSummary(renderer.NewSummary(report)))

	return subcommands.ExitSuccess
}
