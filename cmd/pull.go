package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davral/etfpulse/date"
	"github.com/davral/etfpulse/kurv"
	"github.com/google/subcommands"
)

// pullCmd holds the flags for the 'pull' subcommand.
type pullCmd struct {
	etf string
}

func (*pullCmd) Name() string     { return "pull" }
func (*pullCmd) Synopsis() string { return "download and enrich the holdings of a covered-call ETF" }
func (*pullCmd) Usage() string {
	return `etp pull -etf <SYM>

  Downloads the issuer's daily holdings file, archives a dated copy, drops
  the cash lines, decodes the option tickers and writes the classified
  holdings to enriched_<SYM>.csv in the output directory.

Usage Examples:
$ etp pull -etf KYLD

`
}

func (c *pullCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.etf, "etf", "", "ETF ticker symbol to pull, e.g. KYLD")
}

func (c *pullCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.etf == "" {
		fmt.Fprintln(os.Stderr, "Error: -etf is required")
		return subcommands.ExitUsageError
	}
	if _, err := ensureOutputDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	raw, err := kurv.Fetch(c.etf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	archive := dataFile(kurv.ArchiveName(c.etf, date.Today()))
	if err := os.WriteFile(archive, raw, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error archiving holdings to %q: %v\n", archive, err)
		return subcommands.ExitFailure
	}

	return enrich(bytes.NewReader(raw), strings.ToUpper(c.etf))
}
