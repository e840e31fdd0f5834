package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/arand/kharcha/internal/expense"
	"github.com/arand/kharcha/internal/money"
	"github.com/arand/kharcha/internal/month"
)

var expenseHeader = []string{"Date", "Description", "Category", "Amount"}

var snapshotHeader = []string{"Month", "Income", "Total Spent", "Savings", "Completed At"}

// Expenses writes the given expenses as CSV to w, newest entry first,
// in the same column layout the importer accepts.
func Expenses(w io.Writer, expenses []expense.Expense) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(expenseHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range expenses {
		record := []string{
			e.Date,
			e.Description,
			string(e.Category),
			money.String(e.Amount),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing expense %s: %w", e.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Snapshots writes completed month summaries as CSV to w.
func Snapshots(w io.Writer, snapshots []month.Snapshot) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(snapshotHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, s := range snapshots {
		record := []string{
			s.Month,
			money.String(s.Income),
			money.String(s.TotalSpent),
			money.String(s.Savings),
			s.CompletedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing snapshot %s: %w", s.Month, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
