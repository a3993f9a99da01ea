// Package kurv downloads the daily holdings files published by Kurv for
// its covered-call ETFs.
package kurv

import (
	"fmt"
	"strings"

	"github.com/davral/etfpulse"
	"github.com/davral/etfpulse/date"
)

// holdingsURL is the issuer's daily holdings endpoint, one file per ETF.
const holdingsURL = "https://web.services.kurvinvest.com/etfdata/%s/holdings.csv"

// Fetch downloads the published holdings file for the given ETF symbol.
// The response is cached on disk for the day.
func Fetch(etf string) ([]byte, error) {
	addr := fmt.Sprintf(holdingsURL, strings.ToUpper(etf))
	content, err := etfpulse.Wget(etfpulse.DailyClient(), addr, "")
	if err != nil {
		return nil, fmt.Errorf("cannot download holdings for %s: %w", strings.ToUpper(etf), err)
	}
	return content, nil
}

// ArchiveName returns the file name of the dated archive copy kept next to
// the enriched output, e.g. "2025-08-29_KYLD_holdings.csv".
func ArchiveName(etf string, on date.Date) string {
	return fmt.Sprintf("%s_%s_holdings.csv", on, strings.ToUpper(etf))
}

// EnrichedName returns the file name of the enriched output for an ETF.
func EnrichedName(etf string) string {
	return fmt.Sprintf("enriched_%s.csv", strings.ToUpper(etf))
}
