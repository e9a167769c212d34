package coinmarket

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value in major units. Unlike a plain decimal it can be
// "not a number", which is what malformed source data turns into.
//
// The zero Amount is NaN.
type Amount struct {
	value decimal.Decimal
	valid bool
}

// A creates an Amount from a numeric value.
func A[T float64 | int | int64 | decimal.Decimal](value T) Amount {
	switch v := any(value).(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NaN()
		}
		return Amount{value: decimal.NewFromFloat(v), valid: true}
	case int:
		return Amount{value: decimal.NewFromInt(int64(v)), valid: true}
	case int64:
		return Amount{value: decimal.NewFromInt(v), valid: true}
	case decimal.Decimal:
		return Amount{value: v, valid: true}
	}
	return NaN()
}

// NaN returns the "not a number" Amount.
func NaN() Amount { return Amount{} }

// ParseAmount parses a decimal string. It never fails: anything that is not a
// number becomes NaN.
func ParseAmount(s string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return NaN()
	}
	return A(d)
}

func (a Amount) IsNaN() bool { return !a.valid }

// Decimal returns the amount value, ok is false for NaN.
func (a Amount) Decimal() (d decimal.Decimal, ok bool) { return a.value, a.valid }

// Mul multiplies the amount by a rate. NaN stays NaN.
func (a Amount) Mul(rate decimal.Decimal) Amount {
	if !a.valid {
		return a
	}
	return Amount{value: a.value.Mul(rate), valid: true}
}

func (a Amount) Equal(b Amount) bool {
	if !a.valid || !b.valid {
		return false // NaN is never equal to anything.
	}
	return a.value.Equal(b.value)
}

// String returns the amount formatted by FormatCurrency.
func (a Amount) String() string { return FormatCurrency(a) }

// display has two fraction digits, '.' as decimal separator and ',' between
// thousands whatever the currency is.
var display = money.NewFormatter(2, ".", ",", "", "1")

// maxCents is the largest amount that can be formatted in cents as an int64.
var maxCents = decimal.NewFromInt(math.MaxInt64).Shift(-2)

// FormatCurrency formats an amount with exactly two decimals and a comma every
// three digits: 1234567.891 is "1,234,567.89". NaN is "NaN".
func FormatCurrency(a Amount) string {
	if !a.valid {
		return "NaN"
	}
	rounded := a.value.Round(2)
	if rounded.Abs().GreaterThan(maxCents) {
		return groupThousands(rounded.StringFixed(2))
	}
	return display.Format(rounded.Shift(2).IntPart())
}

// groupThousands inserts ',' in the integer part of a fixed point string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	integer, fraction, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, c := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if fraction != "" {
		b.WriteByte('.')
		b.WriteString(fraction)
	}
	return sign + b.String()
}
