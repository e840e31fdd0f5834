// Package money converts between display strings and amounts stored as
// int64 paise.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Parse converts a user-entered rupee amount ("1234.56", "1,234.56") into
// paise. The thousands separators are stripped before parsing.
func Parse(s string) (int64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if clean == "" {
		return 0, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// Format renders paise as a localized rupee string, e.g. 123456789 ->
// "₹12,34,567.89" (Indian digit grouping).
func Format(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}

	return printer.Sprintf("%s₹%d.%02d", sign, paise/100, paise%100)
}

// String renders paise as a plain decimal rupee string with no symbol or
// grouping, e.g. 123456 -> "1234.56". The result round-trips through Parse.
func String(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}

	return fmt.Sprintf("%s%d.%02d", sign, paise/100, paise%100)
}

// Rupees returns the whole-rupee part of an amount, truncated toward zero.
func Rupees(paise int64) int64 {
	return paise / 100
}
