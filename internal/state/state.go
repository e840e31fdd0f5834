// Package state owns the application aggregate: income, configuration, the
// expense list, and the month lifecycle. All mutation goes through reducer
// transitions so derived values are recomputed exactly once per change and
// never observed half-updated.
package state

import (
	"time"

	"github.com/arand/kharcha/internal/budget"
	"github.com/arand/kharcha/internal/expense"
	"github.com/arand/kharcha/internal/month"
)

// StorageKey is the well-known key the aggregate is persisted under.
const StorageKey = "appState"

// State is the whole application aggregate. Budget is derived and never
// trusted from storage; it is recomputed after every transition and on load.
type State struct {
	Income           int64             `json:"income"`
	Config           budget.Config     `json:"config"`
	Budget           budget.Budget     `json:"budget"`
	Expenses         []expense.Expense `json:"expenses"`
	CurrentMonth     string            `json:"currentMonth"`
	CompletedMonths  []string          `json:"completedMonths"`
	Snapshots        []month.Snapshot  `json:"snapshots"` // newest first
	CarryoverBalance int64             `json:"carryoverBalance"`
}

// Default returns the empty aggregate: no income, the 50/15/5 config, no
// expenses, the month of now as current, empty history.
func Default(now time.Time) State {
	s := State{
		Income:       0,
		Config:       budget.DefaultConfig(),
		CurrentMonth: month.Key(now),
	}

	return recalculated(s, now)
}

// recalculated returns s with its Budget recomputed for the current month.
func recalculated(s State, now time.Time) State {
	monthly := month.ExpensesIn(s.Expenses, s.CurrentMonth, now)
	s.Budget = budget.Calculate(s.Income, s.Config, monthly, s.CarryoverBalance, now)

	return s
}

// normalized fills zero-valued fields with their defaults. Used after
// deserializing a stored aggregate where fields may be missing.
func normalized(s State, now time.Time) State {
	if s.CurrentMonth == "" {
		s.CurrentMonth = month.Key(now)
	}

	if s.Config == (budget.Config{}) {
		s.Config = budget.DefaultConfig()
	}

	return recalculated(s, now)
}
