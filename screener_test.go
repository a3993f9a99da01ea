package etfpulse

import (
	"strings"
	"testing"

	"github.com/davral/etfpulse/date"
)

func f(v float64) *float64 { return &v }

func TestTrendOf(t *testing.T) {
	tests := []struct {
		price, sma50, sma200 float64
		want                 Trend
	}{
		{price: 110, sma50: 100, sma200: 90, want: TrendUp},
		{price: 80, sma50: 90, sma200: 100, want: TrendDown},
		{price: 95, sma50: 100, sma200: 90, want: TrendSideways},
		{price: 100, sma50: 100, sma200: 90, want: TrendSideways}, // equality is not a stack
		// all three must be known and positive
		{price: 110, sma50: 0, sma200: 90, want: TrendSideways},
		{price: 0, sma50: 100, sma200: 90, want: TrendSideways},
	}
	for _, tc := range tests {
		if got := TrendOf(tc.price, tc.sma50, tc.sma200); got != tc.want {
			t.Errorf("TrendOf(%v, %v, %v) = %s, want %s", tc.price, tc.sma50, tc.sma200, got, tc.want)
		}
	}
}

func TestNewWeeklyRow(t *testing.T) {
	earnings := date.New(2025, 11, 4)
	m := Metrics{
		Price:        184.5,
		AvgVolume:    52_340_000,
		IV:           f(55.2341),
		SMA50:        f(178.123),
		SMA200:       f(150.987),
		PriceToSales: f(7.4567),
		ForwardPE:    f(28.912),
		Earnings:     &earnings,
	}
	row := NewWeeklyRow("NVDA", "NVIDIA Corporation", m)

	if row.Trend != TrendUp {
		t.Errorf("Trend = %s, want UP", row.Trend)
	}
	if row.IV != "55.2" {
		t.Errorf("IV = %q, want 55.2", row.IV)
	}
	if row.SMA50 != "178.12" || row.SMA200 != "150.99" {
		t.Errorf("SMAs = %q/%q", row.SMA50, row.SMA200)
	}
	if row.PriceToSales != "7.46" || row.ForwardPE != "28.91" {
		t.Errorf("valuation = %q/%q", row.PriceToSales, row.ForwardPE)
	}
	if row.AvgVolume != 52.34 {
		t.Errorf("AvgVolume = %v, want 52.34", row.AvgVolume)
	}
	if row.Earnings != "2025-11-04" {
		t.Errorf("Earnings = %q", row.Earnings)
	}
}

func TestNewWeeklyRowDegradesToNA(t *testing.T) {
	row := NewWeeklyRow("XYZ", "Xyz Corp", Metrics{Price: 10})
	if row.IV != "N/A" || row.SMA50 != "N/A" || row.SMA200 != "N/A" ||
		row.PriceToSales != "N/A" || row.ForwardPE != "N/A" || row.Earnings != "N/A" {
		t.Errorf("missing metrics not degraded to N/A: %+v", row)
	}
	if row.Trend != TrendSideways {
		t.Errorf("Trend = %s, want SIDEWAYS without averages", row.Trend)
	}
}

func TestWeeklysRoundTrip(t *testing.T) {
	rows := []WeeklyRow{
		NewWeeklyRow("NVDA", "NVIDIA Corporation", Metrics{Price: 184.5, AvgVolume: 52_340_000, IV: f(55.2)}),
		NewWeeklyRow("F", "Ford Motor Company", Metrics{Price: 11.2}),
	}

	var b strings.Builder
	if err := EncodeWeeklys(&b, rows); err != nil {
		t.Fatalf("EncodeWeeklys() error = %v", err)
	}
	if !strings.HasPrefix(b.String(), "Ticker,Name,Price,IV %,Trend,SMA 50,SMA 200,P/S,Fwd P/E,Avg Vol (M),Earnings") {
		t.Errorf("unexpected header: %q", strings.SplitN(b.String(), "\n", 2)[0])
	}

	back, err := DecodeWeeklys(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeWeeklys() error = %v", err)
	}
	if len(back) != 2 || back[0].Ticker != "NVDA" || back[1].Trend != TrendSideways {
		t.Errorf("round trip lost data: %+v", back)
	}
}
