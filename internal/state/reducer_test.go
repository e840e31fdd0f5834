package state

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arand/kharcha/internal/expense"
)

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func mustApply(t *testing.T, s State, action Action) State {
	t.Helper()

	next, err := Apply(s, action, testNow)
	require.NoError(t, err)

	return next
}

func TestApply_SetIncomeRecalculates(t *testing.T) {
	s := Default(testNow)

	next := mustApply(t, s, SetIncome{Amount: 5000000})

	assert.Equal(t, int64(5000000), next.Income)
	assert.Equal(t, int64(5000000), next.Budget.MonthlyIncome)
	// Default 50/15/5 split leaves 30% for lifestyle.
	assert.Equal(t, int64(1500000), next.Budget.LifestyleBalance)
}

func TestApply_AddExpensePrepends(t *testing.T) {
	s := mustApply(t, Default(testNow), SetIncome{Amount: 5000000})

	first := expense.New(expense.CreateParams{
		Amount: 1000, Description: "Chai", Category: expense.CategoryLifestyle, Date: "2024-03-10",
	}, testNow)
	second := expense.New(expense.CreateParams{
		Amount: 2000, Description: "Auto", Category: expense.CategoryLifestyle, Date: "2024-03-11",
	}, testNow)

	s = mustApply(t, s, AddExpense{Expense: first})
	s = mustApply(t, s, AddExpense{Expense: second})

	require.Len(t, s.Expenses, 2)
	assert.Equal(t, second.ID, s.Expenses[0].ID)
	assert.Equal(t, int64(1500000-3000), s.Budget.LifestyleBalance)
}

func TestApply_AddExpenseLockedMonth(t *testing.T) {
	s := Default(testNow)
	s.CompletedMonths = []string{"2024-01"}
	s = recalculated(s, testNow)

	locked := expense.New(expense.CreateParams{
		Amount: 1000, Description: "Late entry", Category: expense.CategoryOther, Date: "2024-01-15",
	}, testNow)

	next, err := Apply(s, AddExpense{Expense: locked}, testNow)

	require.ErrorIs(t, err, ErrMonthLocked)
	assert.Equal(t, s, next)
	assert.Empty(t, next.Expenses)
}

func TestApply_DeleteExpense(t *testing.T) {
	s := mustApply(t, Default(testNow), SetIncome{Amount: 5000000})

	e := expense.New(expense.CreateParams{
		Amount: 50000, Description: "Groceries", Category: expense.CategoryLifestyle, Date: "2024-03-12",
	}, testNow)
	s = mustApply(t, s, AddExpense{Expense: e})

	next := mustApply(t, s, DeleteExpense{ID: e.ID})

	assert.Empty(t, next.Expenses)
	assert.Equal(t, int64(1500000), next.Budget.LifestyleBalance)
}

func TestApply_DeleteUnknownIDIsNoop(t *testing.T) {
	s := Default(testNow)

	next, err := Apply(s, DeleteExpense{ID: uuid.New()}, testNow)

	require.NoError(t, err)
	assert.Equal(t, s, next)
}

func TestApply_DeleteLockedExpense(t *testing.T) {
	s := Default(testNow)

	e := expense.New(expense.CreateParams{
		Amount: 50000, Description: "January rent", Category: expense.CategoryFixedExpenses, Date: "2024-01-05",
	}, testNow)
	s = mustApply(t, s, AddExpense{Expense: e})
	s.CompletedMonths = []string{"2024-01"}

	next, err := Apply(s, DeleteExpense{ID: e.ID}, testNow)

	require.ErrorIs(t, err, ErrMonthLocked)
	assert.Len(t, next.Expenses, 1)
}

func TestApply_CompleteMonth(t *testing.T) {
	s := mustApply(t, Default(testNow), SetIncome{Amount: 5000000})

	e := expense.New(expense.CreateParams{
		Amount: 2000000, Description: "Rent", Category: expense.CategoryFixedExpenses, Date: "2024-03-01",
	}, testNow)
	s = mustApply(t, s, AddExpense{Expense: e})

	next := mustApply(t, s, CompleteMonth{})

	assert.Equal(t, "2024-04", next.CurrentMonth)
	assert.Equal(t, []string{"2024-03"}, next.CompletedMonths)
	require.Len(t, next.Snapshots, 1)
	assert.Equal(t, "2024-03", next.Snapshots[0].Month)
	assert.Equal(t, int64(5000000), next.Snapshots[0].Income)
	assert.Equal(t, int64(2000000), next.Snapshots[0].TotalSpent)
	assert.Equal(t, int64(3000000), next.Snapshots[0].Savings)
	assert.Equal(t, int64(3000000), next.CarryoverBalance)

	// The locked expense stays in the list; only the new month's budget
	// excludes it.
	assert.Len(t, next.Expenses, 1)
}

func TestApply_CompleteMonthTwiceIsNoop(t *testing.T) {
	s := mustApply(t, Default(testNow), SetIncome{Amount: 5000000})

	once := mustApply(t, s, CompleteMonth{})

	// Force the current month back to the completed one to simulate a
	// repeated complete request against the same month.
	repeat := once
	repeat.CurrentMonth = "2024-03"

	twice := mustApply(t, repeat, CompleteMonth{})

	assert.Equal(t, repeat, twice)
	assert.Len(t, twice.Snapshots, 1)
}

func TestApply_SnapshotsNewestFirst(t *testing.T) {
	s := mustApply(t, Default(testNow), SetIncome{Amount: 1000000})

	s = mustApply(t, s, CompleteMonth{}) // completes 2024-03
	s = mustApply(t, s, CompleteMonth{}) // completes 2024-04

	require.Len(t, s.Snapshots, 2)
	assert.Equal(t, "2024-04", s.Snapshots[0].Month)
	assert.Equal(t, "2024-03", s.Snapshots[1].Month)
	assert.Equal(t, []string{"2024-03", "2024-04"}, s.CompletedMonths)
}

func TestApply_CarryoverAccumulates(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	s := Default(jan)

	// January: no income, 500 rupees spent. Savings: -500.
	e := expense.New(expense.CreateParams{
		Amount: 50000, Description: "Overspend", Category: expense.CategoryLifestyle, Date: "2024-01-05",
	}, jan)

	var err error

	s, err = Apply(s, AddExpense{Expense: e}, jan)
	require.NoError(t, err)

	s, err = Apply(s, CompleteMonth{}, jan)
	require.NoError(t, err)
	assert.Equal(t, int64(-50000), s.CarryoverBalance)
	assert.Equal(t, "2024-02", s.CurrentMonth)

	// February: 1200 rupees income, nothing spent.
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	s, err = Apply(s, SetIncome{Amount: 120000}, feb)
	require.NoError(t, err)

	// February's lifestyle balance carries January's deficit: 30% of 1200
	// is 360, minus the 500 carried over.
	assert.Equal(t, int64(36000-50000), s.Budget.LifestyleBalance)

	s, err = Apply(s, CompleteMonth{}, feb)
	require.NoError(t, err)

	// -500 + 1200 = 700 rupees.
	assert.Equal(t, int64(70000), s.CarryoverBalance)
}

func TestApply_Reset(t *testing.T) {
	s := mustApply(t, Default(testNow), SetIncome{Amount: 5000000})
	s = mustApply(t, s, CompleteMonth{})

	next := mustApply(t, s, Reset{})

	assert.Equal(t, Default(testNow), next)
	assert.Zero(t, next.Income)
	assert.Empty(t, next.Snapshots)
	assert.Zero(t, next.CarryoverBalance)
	assert.Equal(t, "2024-03", next.CurrentMonth)
}

type bogusAction struct{}

func (bogusAction) isAction() {}

func TestApply_UnknownActionPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = Apply(Default(testNow), bogusAction{}, testNow)
	})
}
