package valueobject

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	JPY Currency = "JPY"
	INR Currency = "INR"
	CHF Currency = "CHF"
	NZD Currency = "NZD"
	ZAR Currency = "ZAR"
)

// DefaultCurrency is used when no preference is stored
const DefaultCurrency = USD

// DefaultLocale is used when no preference is stored
const DefaultLocale = "en-US"

// currencySymbols is the symbol table used when rendering amounts
var currencySymbols = map[Currency]string{
	USD: "$",
	EUR: "€",
	GBP: "£",
	CAD: "CA$",
	AUD: "A$",
	JPY: "¥",
	INR: "₹",
	CHF: "CHF ",
	NZD: "NZ$",
	ZAR: "R",
}

// symbolAfterLanguages place the currency symbol after the amount
var symbolAfterLanguages = map[string]bool{
	"de": true,
	"fr": true,
	"es": true,
	"it": true,
	"nl": true,
	"pt": true,
	"pl": true,
	"sv": true,
}

// ParseCurrency validates an ISO 4217 code against the supported table
func ParseCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", fmt.Errorf("currency cannot be empty")
	}
	if _, err := currency.ParseISO(code); err != nil {
		return "", fmt.Errorf("invalid currency code %q: %w", code, err)
	}
	c := Currency(code)
	if _, ok := currencySymbols[c]; !ok {
		return "", fmt.Errorf("unsupported currency %q", code)
	}
	return c, nil
}

// IsSupportedCurrency reports whether code is in the supported table
func IsSupportedCurrency(code string) bool {
	_, err := ParseCurrency(code)
	return err == nil
}

// SupportedCurrencies returns supported currency codes in sorted order
func SupportedCurrencies() []Currency {
	out := make([]Currency, 0, len(currencySymbols))
	for c := range currencySymbols {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Symbol returns the display symbol for the currency
func (c Currency) Symbol() string {
	if s, ok := currencySymbols[c]; ok {
		return s
	}
	return string(c) + " "
}

// Scale returns the number of minor-unit digits for the currency
func (c Currency) Scale() int32 {
	unit, err := currency.ParseISO(string(c))
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}

// ParseLocale validates a BCP 47 locale tag
func ParseLocale(locale string) (language.Tag, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.Tag{}, fmt.Errorf("locale cannot be empty")
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Tag{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return tag, nil
}

func symbolAfter(tag language.Tag) bool {
	base, _ := tag.Base()
	return symbolAfterLanguages[base.String()]
}
