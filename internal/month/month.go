// Package month handles calendar-month bucketing: "YYYY-MM" keys, the
// effective date of an expense, and filtering expense lists down to a
// single month.
package month

import (
	"fmt"
	"strings"
	"time"

	"github.com/arand/kharcha/internal/expense"
)

// Key returns the "YYYY-MM" month key for t.
func Key(t time.Time) string {
	return t.Format("2006-01")
}

// ParseKey parses a "YYYY-MM" key into the first day of that month.
func ParseKey(key string) (time.Time, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(key))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing month key %q: %w", key, err)
	}

	return t, nil
}

// NextKey returns the key of the calendar month after key. A malformed key
// falls back to the month of now.
func NextKey(key string, now time.Time) string {
	t, err := ParseKey(key)
	if err != nil {
		return Key(now)
	}

	return Key(t.AddDate(0, 1, 0))
}

// Label renders a key as a human heading, e.g. "2024-03" -> "March 2024".
// Malformed keys are returned as-is.
func Label(key string) string {
	t, err := ParseKey(key)
	if err != nil {
		return key
	}

	return t.Format("January 2006")
}

// EffectiveDate resolves the date an expense counts against: the explicit
// Date field when it parses, otherwise the creation timestamp.
//
// TODO: the CreatedAt fallback also kicks in for garbage dates that slipped
// past validation; decide whether those should be surfaced instead.
func EffectiveDate(e expense.Expense) time.Time {
	if e.Date != "" {
		if t, err := time.Parse(time.DateOnly, e.Date); err == nil {
			return t
		}
	}

	return e.CreatedAt
}

// ExpenseKey returns the month key an expense belongs to.
func ExpenseKey(e expense.Expense) string {
	return Key(EffectiveDate(e))
}

// resolveReference turns a reference into the month it names. Accepted
// forms: "" (meaning now), a "YYYY-MM" key, or a "YYYY-MM-DD" date. Anything
// unparseable falls back to now rather than failing.
func resolveReference(reference string, now time.Time) time.Time {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return now
	}

	if t, err := ParseKey(reference); err == nil {
		return t
	}

	if t, err := time.Parse(time.DateOnly, reference); err == nil {
		return t
	}

	return now
}

// ExpensesIn selects the expenses whose effective date falls in the same
// calendar month as reference, preserving the input order. See
// resolveReference for the accepted reference forms.
func ExpensesIn(expenses []expense.Expense, reference string, now time.Time) []expense.Expense {
	ref := resolveReference(reference, now)

	var out []expense.Expense

	for _, e := range expenses {
		d := EffectiveDate(e)
		if d.Year() == ref.Year() && d.Month() == ref.Month() {
			out = append(out, e)
		}
	}

	return out
}

// TotalSpent sums the amounts of the given expenses.
func TotalSpent(expenses []expense.Expense) int64 {
	var total int64
	for _, e := range expenses {
		total += e.Amount
	}

	return total
}

// IsCompleted reports whether key is in the completed set.
func IsCompleted(key string, completed []string) bool {
	for _, c := range completed {
		if c == key {
			return true
		}
	}

	return false
}

// IsExpenseLocked reports whether e falls in a completed month and is
// therefore immutable.
func IsExpenseLocked(e expense.Expense, completed []string) bool {
	return IsCompleted(ExpenseKey(e), completed)
}
