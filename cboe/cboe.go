// Package cboe downloads and parses the CBOE "available weeklys" list, the
// universe of underlyings with weekly option expirations.
package cboe

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/davral/etfpulse"
	"github.com/davral/etfpulse/date"
)

const downloadURL = "https://www.cboe.com/available_weeklys/get_csv_download/"

// the CBOE endpoint rejects the default Go user agent.
const userAgent = "Mozilla/5.0"

// Listing is one underlying of the available-weeklys list.
type Listing struct {
	Ticker string
	Name   string
}

// Fetch downloads the raw available-weeklys CSV. The response is cached on
// disk for the day.
func Fetch() ([]byte, error) {
	content, err := etfpulse.Wget(etfpulse.DailyClient(), downloadURL, userAgent)
	if err != nil {
		return nil, fmt.Errorf("cannot download the CBOE weeklys list: %w", err)
	}
	return content, nil
}

// Parse extracts the ticker/name pairs from the raw CBOE file.
//
// The file is not a clean table: it interleaves section banners, column
// headers and expiration-calendar rows with the listings. A row counts as a
// listing when it has at least two cells, a non-empty first cell that is
// not a banner, and a second cell that does not look like a date.
func Parse(r io.Reader) ([]Listing, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	byTicker := make(map[string]string)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot parse the CBOE weeklys list: %w", err)
		}
		if len(record) < 2 {
			continue
		}
		ticker := strings.ToUpper(strings.TrimSpace(record[0]))
		name := strings.TrimSpace(record[1])
		if ticker == "" || strings.Contains(ticker, "AVAILABLE WEEKLYS") || strings.Contains(ticker, "TICKER") {
			continue
		}
		if looksLikeDate(name) {
			continue
		}
		byTicker[ticker] = name
	}

	listings := make([]Listing, 0, len(byTicker))
	for ticker, name := range byTicker {
		listings = append(listings, Listing{Ticker: ticker, Name: name})
	}
	sort.Slice(listings, func(i, j int) bool { return listings[i].Ticker < listings[j].Ticker })
	return listings, nil
}

// looksLikeDate spots the expiration-calendar cells, e.g. "11/28/25".
func looksLikeDate(s string) bool {
	if !strings.Contains(s, "/") || len(s) > 10 {
		return false
	}
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// ArchiveName returns the file name of the dated raw copy, e.g.
// "raw_weeklys_2025-08-29.csv".
func ArchiveName(on date.Date) string {
	return fmt.Sprintf("raw_weeklys_%s.csv", on)
}
