package cboe

import (
	"strings"
	"testing"

	"github.com/davral/etfpulse/date"
)

const sampleWeeklys = `AVAILABLE WEEKLYS - EXCHANGE TRADED PRODUCTS (ETF/ETN),
Ticker,Name
SPY,SPDR S&P 500 ETF Trust
qqq,Invesco QQQ Trust
,orphan name
STANDARD EXPIRATIONS,11/21/25
AAPL,Apple Inc.
AAPL,Apple Inc
shortrow
MSFT,Microsoft Corporation
`

func TestParse(t *testing.T) {
	listings, err := Parse(strings.NewReader(sampleWeeklys))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got := make(map[string]string)
	for _, l := range listings {
		got[l.Ticker] = l.Name
	}
	if _, ok := got["STANDARD EXPIRATIONS"]; ok {
		t.Errorf("calendar row was kept: %v", listings)
	}
	if _, ok := got["TICKER"]; ok {
		t.Errorf("header row was kept")
	}
	if len(listings) != 4 {
		t.Fatalf("Parse() kept %d listings, want 4: %v", len(listings), listings)
	}
	if got["QQQ"] != "Invesco QQQ Trust" {
		t.Errorf("tickers are not upper-cased: %v", listings)
	}
	if got["AAPL"] != "Apple Inc" {
		t.Errorf("duplicate ticker: got %q, the last row should win", got["AAPL"])
	}
	// sorted by ticker
	for i := 1; i < len(listings); i++ {
		if listings[i-1].Ticker > listings[i].Ticker {
			t.Errorf("listings are not sorted: %v", listings)
		}
	}
}

func TestArchiveName(t *testing.T) {
	if got, want := ArchiveName(date.New(2025, 8, 29)), "raw_weeklys_2025-08-29.csv"; got != want {
		t.Errorf("ArchiveName() = %q, want %q", got, want)
	}
}
