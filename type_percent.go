package tripsplit

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percent is a share of a bill, in percent of the total.
type Percent struct {
	value decimal.Decimal
}

// P creates a Percent from any numeric value.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// ParsePercent parses a percentage that may carry a trailing percent sign,
// so both 30 and "30%" read as the same value.
func ParsePercent(s string) (Percent, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Percent{}, fmt.Errorf("invalid percentage %q: %w", s, err)
	}
	return Percent{value: v}, nil
}

func (p Percent) Add(q Percent) Percent { return Percent{value: p.value.Add(q.value)} }
func (p Percent) Equal(q Percent) bool  { return p.value.Equal(q.value) }
func (p Percent) IsZero() bool          { return p.value.IsZero() }
func (p Percent) IsPositive() bool      { return p.value.IsPositive() }
func (p Percent) IsNegative() bool      { return p.value.IsNegative() }
func (p Percent) IsHundred() bool       { return p.value.Equal(hundred) }

// Of returns the percentage of an amount, rounded to two decimal places.
func (p Percent) Of(m Money) Money {
	return Money{value: m.value.Mul(p.value).Div(hundred), cur: m.cur}.Round2()
}

func (p Percent) String() string {
	return p.value.String() + "%"
}
