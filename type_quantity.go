package etfpulse

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity is an exact signed number of shares or option contracts.
// Negative values denote short positions.
type Quantity struct {
	value decimal.Decimal
}

func Q(value float64) Quantity { return Quantity{value: decimal.NewFromFloat(value)} }

// ParseQuantity parses a quantity cell from a holdings file.
func ParseQuantity(str string) (Quantity, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Equal(p Quantity) bool  { return q.value.Equal(p.value) }
func (q Quantity) Add(p Quantity) Quantity { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) IsNegative() bool       { return q.value.IsNegative() }
func (q Quantity) IsZero() bool           { return q.value.IsZero() }
func (q Quantity) String() string         { return q.value.String() }

// MarshalJSON implements the json.Marshaler interface.
func (q Quantity) MarshalJSON() ([]byte, error) { return q.value.MarshalJSON() }
func (q *Quantity) UnmarshalJSON(b []byte) error { return q.value.UnmarshalJSON(b) }
