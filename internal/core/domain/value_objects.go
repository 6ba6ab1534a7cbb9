package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount the service accepts in a single field.
var MaxAmount = decimal.RequireFromString("9999999.00")

// Money is a non-negative monetary amount. The currency lives on the request,
// not on each amount.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errors.New("amount cannot be negative")
	}
	if amount.GreaterThan(MaxAmount) {
		return Money{}, fmt.Errorf("amount cannot exceed %s", MaxAmount.StringFixed(2))
	}
	return Money{amount: amount}, nil
}

// ParseMoney reads a decimal string such as "10", "10.5" or "1234.56".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return NewMoney(d)
}

// MustMoney is ParseMoney for literals known to be valid.
func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// String renders the amount with exactly two decimals and '.' as separator.
// Extra digits are rounded half to even, so "10.005" becomes "10.00" and
// "10.015" becomes "10.02".
func (m Money) String() string {
	return m.amount.StringFixedBank(2)
}

const dateLayout = "2006-01-02"

// Date is a calendar date without time of day.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) Time() time.Time {
	return d.t
}

// String renders the date as ISO-8601 (YYYY-MM-DD).
func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}
