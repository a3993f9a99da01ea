package etfpulse

import (
	"strings"
	"testing"
)

const sampleHoldings = `Date,Account,StockTicker,CUSIP,SecurityName,Shares,Price,MarketValue,Weightings,NetAssets,SharesOutstanding,CreationUnits,Ticker,Quantity,Description
08/28/2025,KYLD,BWXT,05605H100,BWX TECHNOLOGIES INC,300,180.25,54075.00,5.12%,1056000.00,40000,25000,BWXT,300,BWX TECHNOLOGIES INC
08/28/2025,KYLD,BWXT,05605H100,BWXT 12/19/2025 195 C,-12,4.20,-5040.00,-0.48%,1056000.00,40000,25000,BWXT 251219 C 00195000,-12,BWXT US 12/19/25 C195
08/28/2025,KYLD,,,"Cash & Other",0,1.00,12000.00,1.14%,1056000.00,40000,25000,,0,CASH COLLATERAL
`

func TestDecodeHoldings(t *testing.T) {
	h, err := DecodeHoldings(strings.NewReader(sampleHoldings))
	if err != nil {
		t.Fatalf("DecodeHoldings() error = %v", err)
	}
	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	var rows []*Holding
	for row := range h.All() {
		rows = append(rows, row)
	}

	if rows[0].Ticker != "BWXT" {
		t.Errorf("Ticker = %q, want BWXT", rows[0].Ticker)
	}
	if !rows[1].Quantity.Equal(Q(-12)) {
		t.Errorf("Quantity = %s, want -12", rows[1].Quantity)
	}
	if rows[1].Description != "BWXT US 12/19/25 C195" {
		t.Errorf("Description = %q", rows[1].Description)
	}
	// passthrough columns survive untouched
	if rows[0].Fields["CUSIP"] != "05605H100" {
		t.Errorf("Fields[CUSIP] = %q, want 05605H100", rows[0].Fields["CUSIP"])
	}
	if rows[2].Fields["MarketValue"] != "12000.00" {
		t.Errorf("Fields[MarketValue] = %q, want 12000.00", rows[2].Fields["MarketValue"])
	}
}

func TestDecodeHoldingsMissingColumn(t *testing.T) {
	const noQuantity = "Ticker,Description\nBWXT,BWX TECHNOLOGIES INC\n"
	if _, err := DecodeHoldings(strings.NewReader(noQuantity)); err == nil {
		t.Errorf("DecodeHoldings() accepted a file without a Quantity column")
	}
}

func TestDecodeHoldingsCoercesQuantity(t *testing.T) {
	const junkQuantity = "Ticker,Quantity,Description\nBWXT,n/a,BWX TECHNOLOGIES INC\n"
	h, err := DecodeHoldings(strings.NewReader(junkQuantity))
	if err != nil {
		t.Fatalf("DecodeHoldings() error = %v", err)
	}
	for row := range h.All() {
		if !row.Quantity.IsZero() {
			t.Errorf("Quantity = %s, want coerced to 0", row.Quantity)
		}
	}
}

func TestEncodeHoldings(t *testing.T) {
	h, err := DecodeHoldings(strings.NewReader(sampleHoldings))
	if err != nil {
		t.Fatalf("DecodeHoldings() error = %v", err)
	}
	h = h.FilterSecurities()
	h.Enrich("KYLD")

	var b strings.Builder
	if err := EncodeHoldings(&b, h); err != nil {
		t.Fatalf("EncodeHoldings() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 { // header + two security rows, cash filtered out
		t.Fatalf("encoded %d lines, want 3:\n%s", len(lines), b.String())
	}

	wantHeader := "ETF,Ticker,Put/Call,Strike,Expiration,Classification," +
		"Date,Account,StockTicker,CUSIP,SecurityName,Shares,Price,MarketValue,Weightings,NetAssets,SharesOutstanding,CreationUnits,Quantity,Description"
	if lines[0] != wantHeader {
		t.Errorf("header = %q\nwant     %q", lines[0], wantHeader)
	}

	if !strings.HasPrefix(lines[1], "KYLD,BWXT,,,,Stock,") {
		t.Errorf("stock row = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "KYLD,BWXT251219C00195000,C,195,2025-12-19,CC,") {
		t.Errorf("covered call row = %q", lines[2])
	}
}
