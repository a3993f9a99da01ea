package etfpulse

import (
	"iter"
	"strings"
)

// Holding is one line of an ETF holdings file. Ticker, Quantity and
// Description are the typed columns the enrichment works on; every other
// input column is carried verbatim in Fields.
type Holding struct {
	Ticker      string
	Quantity    Quantity
	Description string
	Fields      map[string]string // passthrough cells, keyed by column name

	// enrichment outputs
	ETF    string
	Option *Option
	Class  Classification
}

// Holdings is a holdings table: the decoded rows plus the input column
// order, so the enriched file can reproduce the issuer's columns verbatim.
type Holdings struct {
	columns []string // passthrough column names, in input order
	rows    []*Holding
}

// Len returns the number of rows in the table.
func (h *Holdings) Len() int { return len(h.rows) }

// Columns returns the passthrough column names in input order.
func (h *Holdings) Columns() []string { return h.columns }

// All iterates over the rows in input order.
func (h *Holdings) All() iter.Seq[*Holding] {
	return func(yield func(*Holding) bool) {
		for _, row := range h.rows {
			if !yield(row) {
				return
			}
		}
	}
}

// cashKeywords mark the non-security lines of a holdings file: cash,
// collateral and other placeholders that carry no decodable ticker.
var cashKeywords = []string{
	"TREASURY", "CASH", "SWAP", "REPURCHASE", "RECEIVABLE", "DEPOSIT",
	"FUTURES", "CONTRACT", "MMKT",
}

// isSecurity reports whether the description describes an actual security
// line rather than cash or collateral.
func isSecurity(description string) bool {
	desc := strings.ToUpper(description)
	for _, kw := range cashKeywords {
		if strings.Contains(desc, kw) {
			return false
		}
	}
	return true
}

// FilterSecurities returns a new table keeping only the actual security
// lines; cash, treasury and other collateral rows are dropped.
func (h *Holdings) FilterSecurities() *Holdings {
	out := &Holdings{columns: h.columns}
	for _, row := range h.rows {
		if isSecurity(row.Description) {
			out.rows = append(out.rows, row)
		}
	}
	return out
}

// Enrich runs the one-pass enrichment over every row: the ticker is
// stripped of embedded spaces, its option code (if any) decoded, the line
// classified, and the owning ETF symbol stamped on. Rows are independent;
// no state is shared across them.
func (h *Holdings) Enrich(etf string) {
	for _, row := range h.rows {
		row.Ticker = StripTicker(row.Ticker)
		row.ETF = etf
		row.Option = ParseOptionTicker(row.Ticker)
		typ := NoOption
		if row.Option != nil {
			typ = row.Option.Type
		}
		row.Class = Classify(row.Quantity, typ)
	}
}
