package etfpulse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/davral/etfpulse/date"
	"github.com/shopspring/decimal"
)

// OptionType identifies the side of an option contract. The zero value
// means the line is not an option at all.
type OptionType byte

const (
	NoOption OptionType = 0
	Call     OptionType = 'C'
	Put      OptionType = 'P'
)

func (t OptionType) String() string {
	if t == NoOption {
		return ""
	}
	return string(byte(t))
}

// Option holds the fields embedded in a compact option code such as
// "BWXT251219C00195000": the expiration date, the call/put letter and the
// strike price (stored in issuer files as an integer scaled by 1000).
type Option struct {
	Expiration *date.Date       // nil when the six digits are not a real calendar date
	Type       OptionType       // always Call or Put on a decoded option
	Strike     *decimal.Decimal // nil when the strike digits overflow
}

// optionCode matches the option fields embedded in a ticker: a six digit
// YYMMDD expiration, the call/put letter, and the strike digits.
var optionCode = regexp.MustCompile(`(\d{6})([CP])(\d+)`)

// ParseOptionTicker decodes the option code embedded in a raw ticker.
//
// Interior spaces are stripped before matching, and the first match wins.
// A ticker with no embedded code is a plain equity holding and yields nil;
// this is never an error. On a match, an unparseable sub-field degrades to
// nil on its own: an impossible expiration like "999999" still returns the
// type and the strike.
func ParseOptionTicker(ticker string) *Option {
	m := optionCode.FindStringSubmatch(StripTicker(ticker))
	if m == nil {
		return nil
	}
	o := &Option{Type: OptionType(m[2][0])}
	if d, err := date.ParseCompact(m[1]); err == nil {
		o.Expiration = &d
	}
	if n, err := strconv.ParseInt(m[3], 10, 64); err == nil {
		strike := decimal.New(n, -3)
		o.Strike = &strike
	}
	return o
}

// StripTicker removes the embedded spaces issuer files carry in the middle
// of option tickers ("AAPL 240621 P 00150000").
func StripTicker(ticker string) string {
	return strings.ReplaceAll(ticker, " ", "")
}
