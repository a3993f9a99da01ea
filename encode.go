package etfpulse

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"
)

// this file contains the CSV codec for holdings tables. Issuer files vary
// in their extra columns, so decoding keeps every unrecognized column as-is
// and encoding writes them back after the enrichment columns.

// the columns the pipeline requires from every issuer file.
const (
	colTicker      = "Ticker"
	colQuantity    = "Quantity"
	colDescription = "Description"
)

// enrichedColumns lead the output file, in this order; the passthrough
// columns follow in input order.
var enrichedColumns = []string{"ETF", "Ticker", "Put/Call", "Strike", "Expiration", "Classification"}

// DecodeHoldings decodes a holdings table from 'r'.
//
// The file must carry Ticker, Quantity and Description columns; anything
// else is kept verbatim. An unparseable quantity cell is coerced to zero
// rather than rejected, issuer files are messy.
func DecodeHoldings(r io.Reader) (*Holdings, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read holdings header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	for _, required := range []string{colTicker, colQuantity, colDescription} {
		if !slices.Contains(header, required) {
			return nil, fmt.Errorf("holdings file must contain a %q column", required)
		}
	}
	tickerIdx := slices.Index(header, colTicker)

	h := &Holdings{}
	// every input column except Ticker passes through, in input order.
	for i, name := range header {
		if i != tickerIdx {
			h.columns = append(h.columns, name)
		}
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read holdings row: %w", err)
		}
		row := &Holding{Fields: make(map[string]string, len(header))}
		for i, name := range header {
			if i >= len(record) {
				break
			}
			cell := record[i]
			switch name {
			case colTicker:
				row.Ticker = cell
				continue
			case colQuantity:
				if q, err := ParseQuantity(cell); err == nil {
					row.Quantity = q
				}
			case colDescription:
				row.Description = cell
			}
			row.Fields[name] = cell
		}
		h.rows = append(h.rows, row)
	}
	return h, nil
}

// EncodeHoldings writes the enriched table to 'w': the enrichment columns
// first, then every passthrough column in input order.
func EncodeHoldings(w io.Writer, h *Holdings) error {
	cw := csv.NewWriter(w)

	header := append(slices.Clone(enrichedColumns), h.columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write holdings header: %w", err)
	}

	for row := range h.All() {
		record := make([]string, 0, len(header))
		record = append(record, row.ETF, row.Ticker)
		record = append(record, optionCells(row.Option)...)
		record = append(record, string(row.Class))
		for _, name := range h.columns {
			record = append(record, row.Fields[name])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write holdings row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// optionCells renders the three decoded option fields, empty when absent.
func optionCells(o *Option) []string {
	if o == nil {
		return []string{"", "", ""}
	}
	cells := []string{o.Type.String(), "", ""}
	if o.Strike != nil {
		cells[1] = o.Strike.String()
	}
	if o.Expiration != nil {
		cells[2] = o.Expiration.String()
	}
	return cells
}
