package pricing

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid money amount")

// Money is an amount in cents of the resort currency.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func MoneyFromUnits(units int64) Money {
	return Money{cents: units * 100}
}

// ParseMoney accepts decimal strings with up to two fractional digits.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	if !isDigits(intPart) || len(fracPart) > 2 || (fracPart != "" && !isDigits(fracPart)) {
		return Money{}, ErrInvalidAmount
	}
	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	var frac int64
	if fracPart != "" {
		frac, _ = strconv.ParseInt(fracPart, 10, 64)
		if len(fracPart) == 1 {
			frac *= 10
		}
	}
	cents := units*100 + frac
	if neg {
		cents = -cents
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Mul(n int64) Money {
	return Money{cents: m.cents * n}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings,
// since numeric columns are often serialized as strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = Money{}
		return nil
	}
	raw := string(bytes.Trim(data, `"`))
	parsed, err := ParseMoney(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return fmt.Errorf("%w: %s", ErrInvalidAmount, raw)
		}
		parsed = roundFloat(f)
	}
	*m = parsed
	return nil
}

func roundFloat(f float64) Money {
	if f < 0 {
		return Money{cents: -int64(-f*100 + 0.5)}
	}
	return Money{cents: int64(f*100 + 0.5)}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
