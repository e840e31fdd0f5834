// Package insight derives a small fixed set of rule-based advisory messages
// from the current month's budget picture.
package insight

import (
	"fmt"
	"math"
	"time"

	"github.com/arand/kharcha/internal/budget"
	"github.com/arand/kharcha/internal/expense"
	"github.com/arand/kharcha/internal/month"
)

// Tone classifies how an insight should be presented.
type Tone string

const (
	ToneNeutral  Tone = "neutral"
	ToneWarning  Tone = "warning"
	TonePositive Tone = "positive"
)

// Insight is one advisory item. The set and order of insights is fixed;
// only messages and tones vary with the data.
type Insight struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Tone    Tone   `json:"tone"`
}

// Params are the inputs for one insights run. ReferenceMonth may be empty,
// meaning the month of Today.
type Params struct {
	Income         int64
	Config         budget.Config
	Expenses       []expense.Expense
	ReferenceMonth string
	Today          time.Time
}

const (
	rentThresholdPct  = 0.30
	trendThreshold    = 0.15
	healthyBufferPct  = 0.35
	daysInTrendWindow = 7
)

// Generate runs every rule and returns the insights in their fixed order.
// Degenerate inputs (zero income, no expenses) produce informative neutral
// messages; no rule can fail.
func Generate(p Params) []Insight {
	monthly := month.ExpensesIn(p.Expenses, p.ReferenceMonth, p.Today)
	spent := budget.SpentByBucket(monthly)
	allocated := budget.Allocate(p.Income, p.Config)

	return []Insight{
		rentThresholdInsight(p.Income, spent[expense.BucketFixedExpenses]),
		lifestyleTrendInsight(monthly, p.Today),
		projectedSavingsInsight(p.Income, allocated.PlannedSavings, spent[expense.BucketPlannedSavings]),
		budgetHealthInsight(p.Income, allocated.LifestyleBalance, spent[expense.BucketLifestyleBalance], month.TotalSpent(monthly)),
	}
}

func rentThresholdInsight(income, fixedSpent int64) Insight {
	in := Insight{
		ID:      "rent-threshold",
		Title:   "Rent vs income",
		Message: "Fixed expenses remain within the 30% rent guideline.",
		Tone:    ToneNeutral,
	}

	threshold := roundPct(income, rentThresholdPct)
	if income > 0 && fixedSpent > threshold {
		ratio := int(math.Round(float64(fixedSpent) / float64(income) * 100))
		in.Message = fmt.Sprintf("Fixed expenses are %d%% of income, which is above the 30%% rent threshold.", ratio)
		in.Tone = ToneWarning
	}

	return in
}

// WeeklyTrend compares lifestyle spend in the trailing 7-day window ending
// today against the 7 days before it, as a ratio change. A prior window with
// no spend reads as +100% when the current window has any, else 0%.
func WeeklyTrend(expenses []expense.Expense, today time.Time) float64 {
	endCurrent := startOfDay(today)
	startCurrent := endCurrent.AddDate(0, 0, -(daysInTrendWindow - 1))
	endPrevious := startCurrent.AddDate(0, 0, -1)
	startPrevious := endPrevious.AddDate(0, 0, -(daysInTrendWindow - 1))

	var current, previous int64

	for _, e := range expenses {
		if expense.BucketFor(e.Category) != expense.BucketLifestyleBalance {
			continue
		}

		d := startOfDay(month.EffectiveDate(e))
		switch {
		case !d.Before(startCurrent) && !d.After(endCurrent):
			current += e.Amount
		case !d.Before(startPrevious) && !d.After(endPrevious):
			previous += e.Amount
		}
	}

	if previous <= 0 {
		if current > 0 {
			return 1
		}

		return 0
	}

	return float64(current-previous) / float64(previous)
}

// lifestyleTrendInsight reads the weekly trend over the reference month's
// expenses only. Spend from before the month is invisible to the trend, so
// early-month windows compare against an empty prior week.
func lifestyleTrendInsight(monthly []expense.Expense, today time.Time) Insight {
	trend := WeeklyTrend(monthly, today)

	in := Insight{
		ID:      "lifestyle-trend",
		Title:   "Lifestyle spending trend",
		Message: "Lifestyle spending is stable week-over-week.",
		Tone:    ToneNeutral,
	}

	switch {
	case trend > trendThreshold:
		in.Message = "Lifestyle spending is trending upward versus the prior week."
		in.Tone = ToneWarning
	case trend < -trendThreshold:
		in.Message = "Lifestyle spending is easing compared to the prior week."
		in.Tone = TonePositive
	}

	return in
}

func projectedSavingsInsight(income, savingsAllocated, savingsSpent int64) Insight {
	in := Insight{
		ID:    "projected-savings",
		Title: "Projected monthly savings",
	}

	if income <= 0 {
		in.Message = "Set income to project monthly savings."
		in.Tone = ToneNeutral

		return in
	}

	projected := savingsAllocated - savingsSpent
	if projected < 0 {
		projected = 0
	}

	pct := int(math.Round(float64(projected) / float64(income) * 100))
	in.Message = fmt.Sprintf("%d%% of income remains for savings this month.", pct)

	if projected > 0 {
		in.Tone = TonePositive
	} else {
		in.Tone = ToneWarning
	}

	return in
}

func budgetHealthInsight(income, lifestyleAllocated, lifestyleSpent, totalSpent int64) Insight {
	in := Insight{
		ID:    "budget-health",
		Title: "Budget health status",
	}

	if income <= 0 {
		in.Message = "Add your income to evaluate overall budget health."
		in.Tone = ToneNeutral

		return in
	}

	remaining := lifestyleAllocated - lifestyleSpent

	switch {
	case remaining < 0:
		in.Message = "Lifestyle spending is running over the planned allocation."
		in.Tone = ToneWarning
	case totalSpent == 0 || float64(remaining) > float64(lifestyleAllocated)*healthyBufferPct:
		in.Message = "Spending is comfortably within the monthly plan."
		in.Tone = TonePositive
	default:
		in.Message = "Spending is close to plan. Monitor remaining lifestyle buffer."
		in.Tone = ToneNeutral
	}

	return in
}

func roundPct(amount int64, pct float64) int64 {
	return int64(math.Round(float64(amount) * pct))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
