package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arand/kharcha/internal/expense"
	"github.com/arand/kharcha/internal/importer"
)

func TestParse_SimpleExport(t *testing.T) {
	input := strings.Join([]string{
		"Date,Description,Amount,Category",
		"2024-03-01,Rent,15000.00,Fixed Expenses",
		"2024-03-03,Groceries,2450.50,Lifestyle",
		"2024-03-05,Mutual fund SIP,5000,Investments",
	}, "\n")

	got, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, expense.CreateParams{
		Amount:      1500000,
		Description: "Rent",
		Category:    expense.CategoryFixedExpenses,
		Date:        "2024-03-01",
	}, got[0])

	assert.Equal(t, int64(245050), got[1].Amount)
	assert.Equal(t, expense.CategoryLifestyle, got[1].Category)
	assert.Equal(t, expense.CategoryInvestments, got[2].Category)
}

func TestParse_HeaderNotOnFirstLine(t *testing.T) {
	input := strings.Join([]string{
		"Account statement for March",
		"",
		"Txn Date,Narration,Withdrawal",
		"01/03/2024,ATM CASH,2000.00",
		"04/03/2024,SWIGGY ORDER,450.00",
	}, "\n")

	got, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Dates are normalized to YYYY-MM-DD and the missing category column
	// defaults to Other.
	assert.Equal(t, "2024-03-01", got[0].Date)
	assert.Equal(t, expense.CategoryOther, got[0].Category)
	assert.Equal(t, "SWIGGY ORDER", got[1].Description)
}

func TestParse_SkipsUnusableRows(t *testing.T) {
	input := strings.Join([]string{
		"Date,Description,Amount",
		"2024-03-01,Valid,100.00",
		"not-a-date,Footer total,9999.00",
		"2024-03-02,,50.00",
		"2024-03-03,Refund,-250.00",
		"2024-03-04,Zero,0",
	}, "\n")

	got, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Valid", got[0].Description)
}

func TestParse_CategoryAliases(t *testing.T) {
	type testCase struct {
		name string
		raw  string
		want expense.Category
	}

	tests := []testCase{
		{name: "Exact", raw: "Savings", want: expense.CategorySavings},
		{name: "CaseInsensitive", raw: "lifestyle", want: expense.CategoryLifestyle},
		{name: "RentAlias", raw: "rent", want: expense.CategoryFixedExpenses},
		{name: "InvestmentSingular", raw: "investment", want: expense.CategoryInvestments},
		{name: "Unknown", raw: "Miscellaneous", want: expense.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "Date,Description,Amount,Category\n2024-03-01,Thing,10.00," + tt.raw

			got, err := importer.NewParser().Parse(strings.NewReader(input))
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Category)
		})
	}
}

func TestParse_NoHeader(t *testing.T) {
	_, err := importer.NewParser().Parse(strings.NewReader("just,some,cells\n1,2,3\n"))
	assert.Error(t, err)
}

func TestParse_ThousandsSeparatedAmounts(t *testing.T) {
	input := "Date,Description,Amount\n2024-03-01,TV,\"1,24,999.00\"\n"

	got, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(12499900), got[0].Amount)
}
