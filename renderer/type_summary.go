package renderer

import (
	"github.com/davral/etfpulse"
)

// Summary is the renderable view of a classification summary report.
// Numbers are pre-formatted so the templates stay dumb.
type Summary struct {
	ETF  string
	Date string

	Rows []SummaryRow

	HasValue bool
	Total    string
}

// SummaryRow is one classification line of the summary table.
type SummaryRow struct {
	Label     string
	Positions int
	Quantity  string
	Value     string
}

// labels spells the classifications out for the report.
var labels = map[etfpulse.Classification]string{
	etfpulse.Stock:          "Stock",
	etfpulse.CoveredCall:    "Covered Call (CC)",
	etfpulse.CashSecuredPut: "Cash-Secured Put (CSP)",
	etfpulse.LongCall:       "Long Call",
	etfpulse.LongPut:        "Long Put",
}

// NewSummary builds the renderable view of a summary report.
func NewSummary(report *etfpulse.SummaryReport) *Summary {
	s := &Summary{
		ETF:      report.ETF,
		Date:     report.Date.String(),
		HasValue: report.HasValue,
	}
	if report.HasValue {
		s.Total = report.TotalValue.String()
	}
	for _, line := range report.Lines {
		row := SummaryRow{
			Label:     labels[line.Class],
			Positions: line.Positions,
			Quantity:  line.Quantity.String(),
		}
		if report.HasValue {
			row.Value = line.MarketValue.String()
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}
