package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arand/kharcha/internal/expense"
	"github.com/arand/kharcha/internal/export"
	"github.com/arand/kharcha/internal/month"
)

func TestExpenses(t *testing.T) {
	expenses := []expense.Expense{
		{
			ID:          uuid.New(),
			Amount:      124999,
			Description: "Groceries",
			Category:    expense.CategoryLifestyle,
			Date:        "2024-03-14",
		},
		{
			ID:          uuid.New(),
			Amount:      1500000,
			Description: "Rent",
			Category:    expense.CategoryFixedExpenses,
			Date:        "2024-03-01",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.Expenses(&buf, expenses))

	want := "Date,Description,Category,Amount\n" +
		"2024-03-14,Groceries,Lifestyle,1249.99\n" +
		"2024-03-01,Rent,Fixed Expenses,15000.00\n"
	assert.Equal(t, want, buf.String())
}

func TestExpenses_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Expenses(&buf, nil))
	assert.Equal(t, "Date,Description,Category,Amount\n", buf.String())
}

func TestSnapshots(t *testing.T) {
	completed := time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC)
	snapshots := []month.Snapshot{
		{
			Month:       "2024-03",
			Income:      5000000,
			TotalSpent:  3200000,
			Savings:     1800000,
			CompletedAt: completed,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.Snapshots(&buf, snapshots))

	want := "Month,Income,Total Spent,Savings,Completed At\n" +
		"2024-03,50000.00,32000.00,18000.00,2024-04-01 09:30:00\n"
	assert.Equal(t, want, buf.String())
}
