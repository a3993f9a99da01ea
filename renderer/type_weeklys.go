package renderer

import (
	"fmt"
	"sort"

	"github.com/davral/etfpulse"
	"github.com/davral/etfpulse/date"
)

// Weeklys is the renderable view of a weekly screener run.
type Weeklys struct {
	Date  string
	Count int // candidates screened, before any limit

	Rows []WeeklysRow
}

// WeeklysRow is one screened underlying, pre-formatted.
type WeeklysRow struct {
	Ticker       string
	Name         string
	Price        string
	IV           string
	Trend        string
	SMA50        string
	SMA200       string
	PriceToSales string
	ForwardPE    string
	AvgVolume    string
	Earnings     string
}

// NewWeeklys builds the renderable view of a screener run. Up-trending
// rows come first, the original order is kept otherwise. A positive
// limit caps the number of rows shown; zero keeps everything.
func NewWeeklys(on date.Date, rows []etfpulse.WeeklyRow, limit int) *Weeklys {
	w := &Weeklys{
		Date:  on.String(),
		Count: len(rows),
	}

	sorted := make([]etfpulse.WeeklyRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Trend == etfpulse.TrendUp && sorted[j].Trend != etfpulse.TrendUp
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	for _, row := range sorted {
		w.Rows = append(w.Rows, WeeklysRow{
			Ticker:       row.Ticker,
			Name:         row.Name,
			Price:        fmt.Sprintf("%.2f", row.Price),
			IV:           row.IV,
			Trend:        string(row.Trend),
			SMA50:        row.SMA50,
			SMA200:       row.SMA200,
			PriceToSales: row.PriceToSales,
			ForwardPE:    row.ForwardPE,
			AvgVolume:    fmt.Sprintf("%.2f", row.AvgVolume),
			Earnings:     row.Earnings,
		})
	}
	return w
}
