package advisor

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
//
// An empty currency is weak: it takes the currency of the other operand in
// binary operations, so amounts read without a currency can be combined with
// amounts that have one.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a number and an ISO 4217 currency code.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: strings.ToUpper(currency)}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// ParseMoney parses "1250.50" or "1250.50 EUR".
func ParseMoney(s string) (Money, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return Money{}, fmt.Errorf("invalid amount %q want \"<amount> [currency]\"", s)
	}
	v, err := decimal.NewFromString(fields[0])
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	m := Money{value: v}
	if len(fields) == 2 {
		if !IsCurrency(fields[1]) {
			return Money{}, fmt.Errorf("invalid amount %q: unknown currency %q", s, fields[1])
		}
		m.cur = strings.ToUpper(fields[1])
	}
	return m, nil
}

// IsCurrency reports whether code is a known ISO 4217 currency code.
func IsCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(f decimal.Decimal) Money     { return Money{value: m.value.Mul(f), cur: m.cur} }

// Float returns the value as a float64, for the simulation code that works in floating point.
func (m Money) Float() float64 { return m.value.InexactFloat64() }

// Round rounds the value to the currency's minor unit (2 places when unknown).
func (m Money) Round() Money {
	places := int32(2)
	if m.cur != "" {
		places = int32(m.currency().Fraction)
	}
	return Money{value: m.value.Round(places), cur: m.cur}
}

// WithCurrency returns m in currency cur when m has no currency yet.
func (m Money) WithCurrency(cur string) Money {
	if m.cur == "" {
		m.cur = strings.ToUpper(cur)
	}
	return m
}

// Compatible reports whether m and n can be added.
func (m Money) Compatible(n Money) bool { return m.cur == "" || n.cur == "" || m.cur == n.cur }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// MarshalText writes "<amount> <currency>", or just the amount without currency.
func (m Money) MarshalText() ([]byte, error) {
	if m.cur == "" {
		return []byte(m.value.String()), nil
	}
	return []byte(m.value.String() + " " + m.cur), nil
}

// UnmarshalText is the inverse of MarshalText, see ParseMoney.
func (m *Money) UnmarshalText(text []byte) error {
	v, err := ParseMoney(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
