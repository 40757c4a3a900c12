// Package currencyutils parses user-entered amounts and formats amounts for
// display.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DisplayScale is the number of fraction digits shown for every amount.
const DisplayScale = 2

var currencyNoise = regexp.MustCompile(`[€$£¥₭\s]|LAK|CHF|EUR|USD|THB`)

// ParseAmount parses a user-entered amount into a decimal value.
// It handles "1,234.56", "1.234,56", "1234,56", "1'234.56" and strips
// currency codes and symbols.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount converts the supported input notations to the plain
// form decimal.NewFromString accepts.
func StandardizeAmount(amountStr string) string {
	s := currencyNoise.ReplaceAllString(amountStr, "")
	s = strings.ReplaceAll(s, "'", "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ".") < strings.LastIndex(s, ",") {
			// 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		parts := strings.Split(s, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	return s
}

// Formatter renders amounts with locale grouping and a fixed two-digit scale.
type Formatter struct {
	printer  *message.Printer
	currency string
}

// NewFormatter builds a Formatter for a BCP 47 locale tag such as "lo-LA".
// Unparseable tags fall back to the root locale.
func NewFormatter(locale, currency string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Formatter{
		printer:  message.NewPrinter(tag),
		currency: currency,
	}
}

// Number formats amount with grouping separators and two fraction digits.
func (f *Formatter) Number(amount decimal.Decimal) string {
	v, _ := amount.Round(DisplayScale).Float64()
	return f.printer.Sprint(number.Decimal(v, number.Scale(DisplayScale)))
}

// Amount formats amount followed by the currency label.
func (f *Formatter) Amount(amount decimal.Decimal) string {
	if f.currency == "" {
		return f.Number(amount)
	}
	return f.Number(amount) + " " + f.currency
}

// Signed formats amount with an explicit leading sign: "+" when positive is
// true, "-" otherwise. Used where the direction comes from the entry type.
func (f *Formatter) Signed(amount decimal.Decimal, positive bool) string {
	if positive {
		return "+" + f.Number(amount)
	}
	return "-" + f.Number(amount)
}

// Percent formats a percentage with one fraction digit, e.g. "62.5%".
func Percent(p decimal.Decimal) string {
	return p.StringFixed(1) + "%"
}

// Currency returns the configured currency label.
func (f *Formatter) Currency() string {
	return f.currency
}
