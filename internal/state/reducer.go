package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arand/kharcha/internal/budget"
	"github.com/arand/kharcha/internal/expense"
	"github.com/arand/kharcha/internal/month"
)

// ErrMonthLocked is returned when an expense mutation targets a completed
// month. The aggregate is left unchanged.
var ErrMonthLocked = errors.New("month is completed and locked")

// Action is a sealed set of aggregate transitions. Passing anything else to
// Apply is a contract violation between store and caller and panics.
type Action interface {
	isAction()
}

type SetIncome struct {
	Amount int64
}

type SetConfig struct {
	Config budget.Config
}

type AddExpense struct {
	Expense expense.Expense
}

type DeleteExpense struct {
	ID uuid.UUID
}

// Recalculate refreshes date-dependent derived values (remaining days in
// month) without changing stored fields. Dispatched when the UI regains
// focus and on load.
type Recalculate struct{}

type CompleteMonth struct{}

type Reset struct{}

func (SetIncome) isAction()     {}
func (SetConfig) isAction()     {}
func (AddExpense) isAction()    {}
func (DeleteExpense) isAction() {}
func (Recalculate) isAction()   {}
func (CompleteMonth) isAction() {}
func (Reset) isAction()         {}

// Apply is the single transition function: given the current aggregate and
// an action it returns the next aggregate. It never partially applies: on
// error the input state is returned untouched. Illegal lifecycle transitions
// (completing an already-completed month) are silent no-ops; locked-month
// expense mutations surface ErrMonthLocked so callers can report them.
func Apply(s State, action Action, now time.Time) (State, error) {
	switch a := action.(type) {
	case SetIncome:
		s.Income = a.Amount
		return recalculated(s, now), nil

	case SetConfig:
		s.Config = a.Config
		return recalculated(s, now), nil

	case AddExpense:
		if month.IsExpenseLocked(a.Expense, s.CompletedMonths) {
			return s, fmt.Errorf("%w: cannot add expense to %s", ErrMonthLocked, month.ExpenseKey(a.Expense))
		}

		s.Expenses = append([]expense.Expense{a.Expense}, s.Expenses...)

		return recalculated(s, now), nil

	case DeleteExpense:
		idx := -1

		for i, e := range s.Expenses {
			if e.ID == a.ID {
				idx = i
				break
			}
		}

		if idx < 0 {
			// Unknown id: nothing to do.
			return s, nil
		}

		if month.IsExpenseLocked(s.Expenses[idx], s.CompletedMonths) {
			return s, fmt.Errorf("%w: cannot delete expense from %s", ErrMonthLocked, month.ExpenseKey(s.Expenses[idx]))
		}

		s.Expenses = append(append([]expense.Expense{}, s.Expenses[:idx]...), s.Expenses[idx+1:]...)

		return recalculated(s, now), nil

	case Recalculate:
		return recalculated(s, now), nil

	case CompleteMonth:
		if month.IsCompleted(s.CurrentMonth, s.CompletedMonths) {
			return s, nil
		}

		snap := month.NewSnapshot(s.CurrentMonth, s.Income, s.Expenses, now)

		s.Snapshots = append([]month.Snapshot{snap}, s.Snapshots...)
		s.CompletedMonths = append(append([]string{}, s.CompletedMonths...), s.CurrentMonth)
		s.CurrentMonth = month.NextKey(s.CurrentMonth, now)
		s.CarryoverBalance += snap.Savings

		return recalculated(s, now), nil

	case Reset:
		return Default(now), nil

	default:
		panic(fmt.Sprintf("state: unknown action %T", action))
	}
}
