package valueobject

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money is a value object representing monetary amounts.
// It is immutable; all operations return new Money instances.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a new Money with the specified amount and currency
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if currency == "" {
		return Money{}, errors.New("currency cannot be empty")
	}
	return Money{
		amount:   amount,
		currency: currency,
	}, nil
}

// NewMoneyFromString creates Money from a string representation
func NewMoneyFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string: %w", err)
	}
	return NewMoney(d, currency)
}

// Zero returns zero money in the given currency
func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency
func (m Money) Currency() Currency {
	return m.currency
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative returns true if the amount is negative
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Add returns the sum of both amounts. Currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("cannot add money with different currencies: %s and %s", m.currency, other.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns the difference. Currencies must match.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("cannot subtract money with different currencies: %s and %s", m.currency, other.currency)
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Equals returns true if both Money values have the same amount and currency
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String returns a plain representation such as "1250.00 USD"
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(m.currency.Scale()), m.currency)
}

// Format renders the amount with the currency symbol using locale-aware
// grouping and decimal marks, e.g. "$1,234.50" for en-US.
func (m Money) Format(locale string) string {
	tag, err := ParseLocale(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return FormatAmount(m.amount, m.currency, tag)
}

// FormatAmount renders amount in currency for the given language tag. The
// integer and fraction digits are printed separately so amounts keep every
// digit regardless of magnitude.
func FormatAmount(amount decimal.Decimal, cur Currency, tag language.Tag) string {
	scale := cur.Scale()
	rounded := amount.Round(scale)
	abs := rounded.Abs()
	whole := abs.Truncate(0)

	p := message.NewPrinter(tag)
	var digits string
	if whole.LessThanOrEqual(maxGroupedAmount) {
		digits = p.Sprint(number.Decimal(whole.IntPart()))
	} else {
		digits = whole.String()
	}
	if scale > 0 {
		fraction := abs.Sub(whole).Shift(scale).IntPart()
		digits += decimalMark(p) + p.Sprint(number.Decimal(fraction,
			number.MinIntegerDigits(int(scale)), number.NoSeparator()))
	}

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	if symbolAfter(tag) {
		return sign + digits + " " + trimSymbol(cur.Symbol())
	}
	return sign + cur.Symbol() + digits
}

var maxGroupedAmount = decimal.NewFromInt(math.MaxInt64)

// decimalMark returns the locale's decimal separator
func decimalMark(p *message.Printer) string {
	sample := []rune(p.Sprint(number.Decimal(1.5, number.Scale(1))))
	if len(sample) < 3 {
		return "."
	}
	return string(sample[1 : len(sample)-1])
}

func trimSymbol(s string) string {
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}

// MarshalJSON implements json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   string   `json:"amount"`
		Currency Currency `json:"currency"`
	}{
		Amount:   m.amount.StringFixed(m.currency.Scale()),
		Currency: m.currency,
	})
}
