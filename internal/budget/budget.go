// Package budget computes the monthly allocation figures: how income splits
// across the four buckets, what remains in each after spending, and the
// daily safe-to-spend amount.
package budget

import (
	"fmt"
	"math"
	"time"

	"github.com/arand/kharcha/internal/expense"
)

// Config holds the allocation fractions. The lifestyle share is never
// configured directly: it is whatever remains after the three fractions
// below, so the four buckets always sum exactly to income.
type Config struct {
	FixedExpensesPct float64 `json:"fixedExpensesPercentage"`
	SavingsPct       float64 `json:"savingsPercentage"`
	InvestmentPct    float64 `json:"investmentPercentage"`
}

// DefaultConfig is the 50/15/5 split (lifestyle gets the remaining 30%).
func DefaultConfig() Config {
	return Config{
		FixedExpensesPct: 0.50,
		SavingsPct:       0.15,
		InvestmentPct:    0.05,
	}
}

// Validate checks that each fraction is in [0,1] and that together they
// leave a non-negative lifestyle share.
func (c Config) Validate() error {
	for _, pct := range []float64{c.FixedExpensesPct, c.SavingsPct, c.InvestmentPct} {
		if math.IsNaN(pct) || pct < 0 || pct > 1 {
			return fmt.Errorf("allocation fraction %v out of range [0,1]", pct)
		}
	}

	if sum := c.FixedExpensesPct + c.SavingsPct + c.InvestmentPct; sum > 1 {
		return fmt.Errorf("allocation fractions sum to %v, must not exceed 1", sum)
	}

	return nil
}

// Budget holds the derived monthly figures, all in paise. Every field is a
// remaining balance; negative values signal overspend and are a legitimate
// state, not an error.
type Budget struct {
	MonthlyIncome        int64 `json:"monthlyIncome"`
	FixedExpenses        int64 `json:"fixedExpenses"`
	PlannedSavings       int64 `json:"plannedSavings"`
	InvestmentAllocation int64 `json:"investmentAllocation"`
	LifestyleBalance     int64 `json:"lifestyleBalance"`
	DailySafeToSpend     int64 `json:"dailySafeToSpend"`
}

// Allocations is the income split before any spending is subtracted.
type Allocations struct {
	FixedExpenses        int64
	PlannedSavings       int64
	InvestmentAllocation int64
	LifestyleBalance     int64
}

// Allocate splits income across the four buckets. Lifestyle is the exact
// residual, so the parts always sum to income regardless of rounding.
func Allocate(income int64, cfg Config) Allocations {
	fixed := roundShare(income, cfg.FixedExpensesPct)
	savings := roundShare(income, cfg.SavingsPct)
	invest := roundShare(income, cfg.InvestmentPct)

	return Allocations{
		FixedExpenses:        fixed,
		PlannedSavings:       savings,
		InvestmentAllocation: invest,
		LifestyleBalance:     income - fixed - savings - invest,
	}
}

func roundShare(income int64, pct float64) int64 {
	return int64(math.Round(float64(income) * pct))
}

// SpentByBucket sums expense amounts grouped by budget bucket. Buckets with
// no expenses are zero.
func SpentByBucket(expenses []expense.Expense) map[expense.Bucket]int64 {
	spent := map[expense.Bucket]int64{
		expense.BucketFixedExpenses:        0,
		expense.BucketPlannedSavings:       0,
		expense.BucketInvestmentAllocation: 0,
		expense.BucketLifestyleBalance:     0,
	}

	for _, e := range expenses {
		spent[expense.BucketFor(e.Category)] += e.Amount
	}

	return spent
}

// RemainingDays returns how many days of now's calendar month are left,
// counting today, floored at 1.
func RemainingDays(now time.Time) int {
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()

	remaining := lastDay - now.Day() + 1
	if remaining < 1 {
		remaining = 1
	}

	return remaining
}

// Calculate derives the full budget for one month of expenses. monthExpenses
// must already be filtered to the month under consideration; carryover is the
// cumulative surplus/deficit of prior completed months and only ever adjusts
// the lifestyle bucket. The daily safe-to-spend figure divides by the days
// left in now's month: it answers "how much can I spend today", so it uses
// the wall clock rather than the budget's reference month.
//
// Calculate is pure and idempotent; it raises no errors. Degenerate income
// (zero or negative) flows through and simply produces negative balances.
func Calculate(income int64, cfg Config, monthExpenses []expense.Expense, carryover int64, now time.Time) Budget {
	allocated := Allocate(income, cfg)
	spent := SpentByBucket(monthExpenses)

	lifestyle := allocated.LifestyleBalance - spent[expense.BucketLifestyleBalance] + carryover

	return Budget{
		MonthlyIncome:        income,
		FixedExpenses:        allocated.FixedExpenses - spent[expense.BucketFixedExpenses],
		PlannedSavings:       allocated.PlannedSavings - spent[expense.BucketPlannedSavings],
		InvestmentAllocation: allocated.InvestmentAllocation - spent[expense.BucketInvestmentAllocation],
		LifestyleBalance:     lifestyle,
		DailySafeToSpend:     lifestyle / int64(RemainingDays(now)),
	}
}
