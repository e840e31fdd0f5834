package month

import (
	"time"

	"github.com/arand/kharcha/internal/expense"
)

// Snapshot is the immutable record of a completed month. Savings may be
// negative when the month overspent its income.
type Snapshot struct {
	Month       string    `json:"month"`
	Income      int64     `json:"income"`
	TotalSpent  int64     `json:"totalSpent"`
	Savings     int64     `json:"savings"`
	CompletedAt time.Time `json:"completedAt"`
}

// NewSnapshot captures the given month from the full expense list at
// completion time.
func NewSnapshot(key string, income int64, expenses []expense.Expense, now time.Time) Snapshot {
	spent := TotalSpent(ExpensesIn(expenses, key, now))

	return Snapshot{
		Month:       key,
		Income:      income,
		TotalSpent:  spent,
		Savings:     income - spent,
		CompletedAt: now,
	}
}
