package etfpulse

import (
	"fmt"
	"io"
	"log"
	"math"

	"github.com/davral/etfpulse/date"
	"github.com/gocarina/gocsv"
)

// Trend is the moving-average stacking of an underlying.
type Trend string

const (
	TrendUp       Trend = "UP"       // price > SMA50 > SMA200
	TrendDown     Trend = "DOWN"     // price < SMA50 < SMA200
	TrendSideways Trend = "SIDEWAYS" // anything else, or missing averages
)

// TrendOf applies the stacking rule. All three values must be positive for
// a verdict; a missing average keeps the trend sideways.
func TrendOf(price, sma50, sma200 float64) Trend {
	if price <= 0 || sma50 <= 0 || sma200 <= 0 {
		return TrendSideways
	}
	switch {
	case price > sma50 && sma50 > sma200:
		return TrendUp
	case price < sma50 && sma50 < sma200:
		return TrendDown
	default:
		return TrendSideways
	}
}

// Metrics holds the per-underlying inputs of the wheel screener. Pointer
// fields are nil when the provider could not supply them; the screener
// degrades those to "N/A" instead of dropping the ticker.
type Metrics struct {
	Price        float64
	AvgVolume    int // 3-month average daily volume, in shares
	IV           *float64 // ATM implied volatility, in percent
	SMA50        *float64
	SMA200       *float64
	PriceToSales *float64
	ForwardPE    *float64
	Earnings     *date.Date
}

// WeeklyRow is one line of the weekly screener output file. The column
// headers reproduce the historical file format verbatim.
type WeeklyRow struct {
	Ticker       string  `csv:"Ticker"`
	Name         string  `csv:"Name"`
	Price        float64 `csv:"Price"`
	IV           string  `csv:"IV %"`
	Trend        Trend   `csv:"Trend"`
	SMA50        string  `csv:"SMA 50"`
	SMA200       string  `csv:"SMA 200"`
	PriceToSales string  `csv:"P/S"`
	ForwardPE    string  `csv:"Fwd P/E"`
	AvgVolume    float64 `csv:"Avg Vol (M)"` // in millions of shares
	Earnings     string  `csv:"Earnings"`
}

// NewWeeklyRow formats the metrics of one underlying into a screener row.
func NewWeeklyRow(ticker, name string, m Metrics) WeeklyRow {
	row := WeeklyRow{
		Ticker:       ticker,
		Name:         name,
		Price:        m.Price,
		IV:           naRound(m.IV, 1),
		SMA50:        naRound(m.SMA50, 2),
		SMA200:       naRound(m.SMA200, 2),
		PriceToSales: naRound(m.PriceToSales, 2),
		ForwardPE:    naRound(m.ForwardPE, 2),
		AvgVolume:    round(float64(m.AvgVolume)/1e6, 2),
		Earnings:     "N/A",
	}
	sma50, sma200 := 0.0, 0.0
	if m.SMA50 != nil {
		sma50 = *m.SMA50
	}
	if m.SMA200 != nil {
		sma200 = *m.SMA200
	}
	row.Trend = TrendOf(m.Price, sma50, sma200)
	if m.Earnings != nil {
		row.Earnings = m.Earnings.String()
	}
	return row
}

// naRound renders an optional metric, "N/A" when missing or zero (a zero
// valuation ratio means the provider had no figure).
func naRound(v *float64, places int) string {
	if v == nil || *v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.*f", places, *v)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Underlying is one candidate of the screener universe.
type Underlying struct {
	Ticker string
	Name   string
}

// MetricsFunc fetches the screener metrics of one underlying.
type MetricsFunc func(symbol string) (Metrics, error)

// Screen collects one WeeklyRow per underlying. A ticker whose metrics
// cannot be fetched at all is logged and skipped; partial metrics degrade
// inside the row instead.
func Screen(universe []Underlying, fetch MetricsFunc) []WeeklyRow {
	rows := make([]WeeklyRow, 0, len(universe))
	for i, u := range universe {
		log.Printf("screening %s (%d/%d)", u.Ticker, i+1, len(universe))
		m, err := fetch(u.Ticker)
		if err != nil {
			log.Printf("skipping %s: %v", u.Ticker, err)
			continue
		}
		rows = append(rows, NewWeeklyRow(u.Ticker, u.Name, m))
	}
	return rows
}

// EncodeWeeklys writes the screener table to 'w' in the historical CSV format.
func EncodeWeeklys(w io.Writer, rows []WeeklyRow) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("cannot write weeklys file: %w", err)
	}
	return nil
}

// DecodeWeeklys reads a screener table back, e.g. to feed the assist agent.
func DecodeWeeklys(r io.Reader) ([]WeeklyRow, error) {
	var rows []WeeklyRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("cannot read weeklys file: %w", err)
	}
	return rows, nil
}
