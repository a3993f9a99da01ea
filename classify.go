package etfpulse

// Classification labels the strategy behind a single holding line.
type Classification string

const (
	Stock          Classification = "Stock"
	CoveredCall    Classification = "CC"
	CashSecuredPut Classification = "CSP"
	LongCall       Classification = "Long C"
	LongPut        Classification = "Long P"
)

// Classifications lists all labels in display order.
var Classifications = []Classification{Stock, CoveredCall, CashSecuredPut, LongCall, LongPut}

// Classify labels a holding from its signed quantity and option type.
//
// A short option position (negative quantity) is always a covered call or a
// cash-secured put, whatever else the line looks like. A line with no option
// type is a plain stock position. Everything else (quantity >= 0, zero
// included) is a long option of the matching side.
func Classify(quantity Quantity, typ OptionType) Classification {
	if typ != NoOption && quantity.IsNegative() {
		if typ == Call {
			return CoveredCall
		}
		return CashSecuredPut
	}
	if typ == NoOption {
		return Stock
	}
	if typ == Call {
		return LongCall
	}
	return LongPut
}
