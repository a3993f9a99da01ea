package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davral/etfpulse"
	"github.com/davral/etfpulse/kurv"
	"github.com/google/subcommands"
)

// enrichCmd holds the flags for the 'enrich' subcommand.
type enrichCmd struct {
	etf string
}

func (*enrichCmd) Name() string     { return "enrich" }
func (*enrichCmd) Synopsis() string { return "decode and classify a local holdings file" }
func (*enrichCmd) Usage() string {
	return `etp enrich -etf <SYM> <holdings.csv>

  Runs the same pipeline as 'pull' over a local holdings file, without any
  network access: drops the cash lines, decodes the option tickers and
  writes the classified holdings to enriched_<SYM>.csv.

Usage Examples:
$ etp enrich -etf KYLD data/2025-08-29_KYLD_holdings.csv

`
}

func (c *enrichCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.etf, "etf", "", "ETF ticker symbol the file belongs to, e.g. KYLD")
}

func (c *enrichCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.etf == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -etf and a holdings file are required")
		return subcommands.ExitUsageError
	}
	if _, err := ensureOutputDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening holdings file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	return enrich(in, strings.ToUpper(c.etf))
}

// enrich runs the decode/filter/classify pipeline over a holdings file and
// writes the enriched output of the given ETF.
func enrich(r io.Reader, etf string) subcommands.ExitStatus {
	holdings, err := etfpulse.DecodeHoldings(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	securities := holdings.FilterSecurities()
	securities.Enrich(etf)

	path := dataFile(kurv.EnrichedName(etf))
	out, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := etfpulse.EncodeHoldings(out, securities); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Enriched %d of %d holdings into %s\n", securities.Len(), holdings.Len(), path)
	return subcommands.ExitSuccess
}
