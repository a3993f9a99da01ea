// Package yfin fetches the per-underlying market metrics of the wheel
// screener from Yahoo Finance.
package yfin

import (
	"fmt"
	"log"
	"math"
	"net/url"
	"time"

	"github.com/davral/etfpulse"
	"github.com/davral/etfpulse/date"
	"github.com/montanaflynn/stats"
	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/piquette/finance-go/options"
)

// smaWindow is the number of daily closes averaged for the short moving average.
const smaWindow = 50

// FetchMetrics collects the wheel metrics for one underlying.
//
// The quote is the only mandatory part: without it there is no price and the
// ticker is worth nothing to the screener. Every other sub-fetch (history,
// option chain, fundamentals) degrades to an absent metric on failure, so a
// thinly covered ticker still gets a row.
func FetchMetrics(symbol string, withIV bool) (etfpulse.Metrics, error) {
	q, err := equity.Get(symbol)
	if err != nil {
		return etfpulse.Metrics{}, fmt.Errorf("cannot get quote for %s: %w", symbol, err)
	}

	m := etfpulse.Metrics{
		Price:     q.RegularMarketPrice,
		AvgVolume: q.AverageDailyVolume3Month,
	}
	if q.TwoHundredDayAverage > 0 {
		v := q.TwoHundredDayAverage
		m.SMA200 = &v
	}
	if q.ForwardPE > 0 {
		v := q.ForwardPE
		m.ForwardPE = &v
	}
	if q.EarningsTimestampStart > 0 {
		d := date.FromUnix(int64(q.EarningsTimestampStart))
		m.Earnings = &d
	}

	// The quote carries no 50-day average, compute it from one year of
	// daily closes instead.
	if sma, err := fetchSMA50(symbol); err != nil {
		log.Printf("no price history for %s: %v", symbol, err)
	} else {
		m.SMA50 = &sma
	}

	if ps, err := fetchPriceToSales(symbol); err != nil {
		log.Printf("no price/sales for %s: %v", symbol, err)
	} else if ps > 0 {
		m.PriceToSales = &ps
	}

	if withIV {
		if iv, err := fetchATMVolatility(symbol, m.Price); err != nil {
			log.Printf("no option chain for %s: %v", symbol, err)
		} else {
			m.IV = &iv
		}
	}
	return m, nil
}

// fetchSMA50 averages the last smaWindow daily closes.
func fetchSMA50(symbol string) (float64, error) {
	now := time.Now()
	start := now.AddDate(-1, 0, 0)
	iter := chart.Get(&chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Interval: datetime.OneDay,
	})

	var closes []float64
	for iter.Next() {
		closes = append(closes, iter.Bar().Close.InexactFloat64())
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	if len(closes) < smaWindow {
		return 0, fmt.Errorf("only %d daily closes, want %d", len(closes), smaWindow)
	}
	return stats.Mean(closes[len(closes)-smaWindow:])
}

// fetchATMVolatility returns the implied volatility, in percent, of the
// at-the-money call on the nearest expiration.
func fetchATMVolatility(symbol string, price float64) (float64, error) {
	if price <= 0 {
		return 0, fmt.Errorf("no reference price for %s", symbol)
	}
	iter := options.GetStraddle(symbol)

	var chain []finance.Straddle
	for iter.Next() {
		chain = append(chain, *iter.Straddle())
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}

	iv, ok := atmVolatility(chain, price)
	if !ok {
		return 0, fmt.Errorf("no call contracts for %s", symbol)
	}
	return iv, nil
}

// atmVolatility picks the call whose strike is closest to the reference
// price and returns its implied volatility in percent. A zero strike or a
// zero IV means the exchange published nothing for that contract; such
// rows are skipped, as are put-only straddles.
func atmVolatility(chain []finance.Straddle, price float64) (float64, bool) {
	var iv float64
	found := false
	best := math.MaxFloat64
	for _, s := range chain {
		if s.Call == nil || s.Call.ImpliedVolatility <= 0 || s.Strike <= 0 {
			continue
		}
		if d := math.Abs(s.Strike - price); d < best {
			best = d
			iv = s.Call.ImpliedVolatility * 100
			found = true
		}
	}
	return iv, found
}

// fetchPriceToSales scrapes the trailing price/sales ratio from the Yahoo
// quoteSummary endpoint; the quote API does not carry it.
func fetchPriceToSales(symbol string) (float64, error) {
	addr := fmt.Sprintf(
		"https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=summaryDetail",
		url.PathEscape(symbol))

	var jobj any
	if err := etfpulse.Jwget(etfpulse.DailyClient(), addr, &jobj); err != nil {
		return 0, err
	}
	return jsonNumber(jobj, "$.quoteSummary.result[0].summaryDetail.priceToSalesTrailing12Months.raw")
}
