package etfpulse

import (
	"strings"

	"github.com/davral/etfpulse/date"
)

// SummaryReport aggregates an enriched holdings table per classification.
type SummaryReport struct {
	ETF  string
	Date date.Date

	Lines []SummaryLine

	// TotalValue is only meaningful when the input file carried a
	// recognizable market value column; HasValue says so.
	TotalValue Money
	HasValue   bool
}

// SummaryLine is the aggregate of all holdings sharing one classification.
type SummaryLine struct {
	Class       Classification
	Positions   int
	Quantity    Quantity
	MarketValue Money
}

// marketValueColumns are the header spellings seen across issuer files.
var marketValueColumns = []string{"MarketValue", "Market Value", "Market Value ($)", "MarketValue($)"}

// NewSummaryReport builds the per-classification aggregate of an enriched
// table. Totals are in USD, the currency of every issuer file seen so far.
func NewSummaryReport(h *Holdings, on date.Date) *SummaryReport {
	report := &SummaryReport{Date: on}

	valueColumn := ""
	for _, name := range h.Columns() {
		for _, known := range marketValueColumns {
			if strings.EqualFold(name, known) {
				valueColumn = name
			}
		}
	}

	byClass := make(map[Classification]*SummaryLine)
	for row := range h.All() {
		if report.ETF == "" {
			report.ETF = row.ETF
		}
		line, ok := byClass[row.Class]
		if !ok {
			line = &SummaryLine{Class: row.Class}
			byClass[row.Class] = line
		}
		line.Positions++
		line.Quantity = line.Quantity.Add(row.Quantity)
		if valueColumn != "" {
			if m, err := ParseMoney(row.Fields[valueColumn], "USD"); err == nil {
				line.MarketValue = line.MarketValue.Add(m)
				report.TotalValue = report.TotalValue.Add(m)
				report.HasValue = true
			}
		}
	}

	// fixed display order, absent classes skipped
	for _, class := range Classifications {
		if line, ok := byClass[class]; ok {
			report.Lines = append(report.Lines, *line)
		}
	}
	return report
}
