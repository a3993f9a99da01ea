package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/davral/etfpulse"
	"github.com/davral/etfpulse/cboe"
	"github.com/davral/etfpulse/date"
	"github.com/davral/etfpulse/renderer"
	"github.com/davral/etfpulse/yfin"
	"github.com/google/subcommands"
)

// latestWeeklys is the screener output file other commands read.
const latestWeeklys = "weeklys_latest.csv"

// weeklysCmd holds the flags for the 'weeklys' subcommand.
type weeklysCmd struct {
	skipIV bool
	top    int
}

func (*weeklysCmd) Name() string     { return "weeklys" }
func (*weeklysCmd) Synopsis() string { return "screen the weekly options universe for wheel candidates" }
func (*weeklysCmd) Usage() string {
	return `etp weeklys [-skip-iv] [-top <n>]

  Downloads the Cboe available weeklys list, fetches price, volume, moving
  averages, valuation ratios and ATM implied volatility for every underlying,
  and writes the results to weeklys_enriched_<date>.csv and ` + latestWeeklys + `.
  The top candidates are printed as a table, up-trending names first.

Usage Examples:
$ etp weeklys -skip-iv -top 30

`
}

func (c *weeklysCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.skipIV, "skip-iv", false, "Skip the implied volatility fetch (one extra request per ticker)")
	f.IntVar(&c.top, "top", 20, "Number of candidates to print, 0 for all")
}

func (c *weeklysCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := ensureOutputDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	raw, err := cboe.Fetch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	archive := dataFile(cboe.ArchiveName(date.Today()))
	if err := os.WriteFile(archive, raw, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error archiving the weeklys list to %q: %v\n", archive, err)
		return subcommands.ExitFailure
	}

	listings, err := cboe.Parse(bytes.NewReader(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	universe := make([]etfpulse.Underlying, 0, len(listings))
	for _, l := range listings {
		universe = append(universe, etfpulse.Underlying{Ticker: l.Ticker, Name: l.Name})
	}

	rows := etfpulse.Screen(universe, func(symbol string) (etfpulse.Metrics, error) {
		return yfin.FetchMetrics(symbol, !c.skipIV)
	})

	dated := fmt.Sprintf("weeklys_enriched_%s.csv", date.Today())
	for _, name := range []string{dated, latestWeeklys} {
		if status := writeWeeklys(dataFile(name), rows); status != subcommands.ExitSuccess {
			return status
		}
	}
	fmt.Printf("Screened %d of %d underlyings into %s\n", len(rows), len(universe), dataFile(dated))

	view := renderer.NewWeeklys(date.Today(), rows, c.top)
	printMarkdown(renderer.RenderWeeklys(view))

	return subcommands.ExitSuccess
}

func writeWeeklys(path string, rows []etfpulse.WeeklyRow) subcommands.ExitStatus {
	out, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := etfpulse.EncodeWeeklys(out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
