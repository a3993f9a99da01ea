package etfpulse

import (
	"strings"
	"testing"

	"github.com/davral/etfpulse/date"
)

func TestNewSummaryReport(t *testing.T) {
	const file = `Ticker,Quantity,Description,MarketValue
BWXT,300,BWX TECHNOLOGIES INC,54000.00
NVDA,100,NVIDIA CORP,18000.00
BWXT251219C00195000,-12,BWXT US 12/19/25 C195,"-5,040.00"
NVDA250919P00100000,-3,NVDA US 09/19/25 P100,(900.00)
AAPL260116C00250000,2,AAPL US 01/16/26 C250,340.00
`
	h, err := DecodeHoldings(strings.NewReader(file))
	if err != nil {
		t.Fatalf("DecodeHoldings() error = %v", err)
	}
	h.Enrich("KYLD")

	report := NewSummaryReport(h, date.New(2025, 8, 29))
	if report.ETF != "KYLD" {
		t.Errorf("ETF = %q, want KYLD", report.ETF)
	}
	if !report.HasValue {
		t.Fatalf("HasValue = false, the file carries a MarketValue column")
	}

	want := map[Classification]struct {
		positions int
		value     Money
	}{
		Stock:          {2, M(72000, "USD")},
		CoveredCall:    {1, M(-5040, "USD")},
		CashSecuredPut: {1, M(-900, "USD")},
		LongCall:       {1, M(340, "USD")},
	}
	if len(report.Lines) != len(want) {
		t.Fatalf("got %d summary lines, want %d", len(report.Lines), len(want))
	}
	for _, line := range report.Lines {
		w, ok := want[line.Class]
		if !ok {
			t.Errorf("unexpected class %q", line.Class)
			continue
		}
		if line.Positions != w.positions {
			t.Errorf("%s: Positions = %d, want %d", line.Class, line.Positions, w.positions)
		}
		if !line.MarketValue.Equal(w.value) {
			t.Errorf("%s: MarketValue = %s, want %s", line.Class, line.MarketValue, w.value)
		}
	}

	if wantTotal := M(66400, "USD"); !report.TotalValue.Equal(wantTotal) {
		t.Errorf("TotalValue = %s, want %s", report.TotalValue, wantTotal)
	}
}

func TestNewSummaryReportNoValueColumn(t *testing.T) {
	const file = "Ticker,Quantity,Description\nBWXT,300,BWX TECHNOLOGIES INC\n"
	h, err := DecodeHoldings(strings.NewReader(file))
	if err != nil {
		t.Fatalf("DecodeHoldings() error = %v", err)
	}
	h.Enrich("KYLD")
	report := NewSummaryReport(h, date.Today())
	if report.HasValue {
		t.Errorf("HasValue = true without a market value column")
	}
	if len(report.Lines) != 1 || report.Lines[0].Class != Stock {
		t.Errorf("Lines = %+v, want a single Stock line", report.Lines)
	}
}
