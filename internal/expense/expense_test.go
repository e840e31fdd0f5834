package expense_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arand/kharcha/internal/expense"
)

func TestBucketFor(t *testing.T) {
	type testCase struct {
		name     string
		category expense.Category
		want     expense.Bucket
	}

	tests := []testCase{
		{name: "FixedExpenses", category: expense.CategoryFixedExpenses, want: expense.BucketFixedExpenses},
		{name: "Savings", category: expense.CategorySavings, want: expense.BucketPlannedSavings},
		{name: "Investments", category: expense.CategoryInvestments, want: expense.BucketInvestmentAllocation},
		{name: "Lifestyle", category: expense.CategoryLifestyle, want: expense.BucketLifestyleBalance},
		{name: "Other", category: expense.CategoryOther, want: expense.BucketLifestyleBalance},
		{name: "UnknownDefaultsToLifestyle", category: expense.Category("Subscriptions"), want: expense.BucketLifestyleBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expense.BucketFor(tt.category))
			// Deterministic: a second call agrees with the first.
			assert.Equal(t, expense.BucketFor(tt.category), expense.BucketFor(tt.category))
		})
	}
}

func TestValidateParams(t *testing.T) {
	valid := expense.CreateParams{
		Amount:      150000,
		Description: "Rent",
		Category:    expense.CategoryFixedExpenses,
		Date:        "2024-03-01",
	}

	type testCase struct {
		name    string
		mutate  func(p *expense.CreateParams)
		wantErr bool
	}

	tests := []testCase{
		{name: "Valid", mutate: func(p *expense.CreateParams) {}, wantErr: false},
		{name: "ZeroAmount", mutate: func(p *expense.CreateParams) { p.Amount = 0 }, wantErr: true},
		{name: "NegativeAmount", mutate: func(p *expense.CreateParams) { p.Amount = -500 }, wantErr: true},
		{name: "BlankDescription", mutate: func(p *expense.CreateParams) { p.Description = "   " }, wantErr: true},
		{name: "UnknownCategory", mutate: func(p *expense.CreateParams) { p.Category = "Misc" }, wantErr: true},
		{name: "EmptyDate", mutate: func(p *expense.CreateParams) { p.Date = "" }, wantErr: true},
		{name: "GarbageDate", mutate: func(p *expense.CreateParams) { p.Date = "not-a-date" }, wantErr: true},
		{name: "WrongDateLayout", mutate: func(p *expense.CreateParams) { p.Date = "01-03-2024" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid
			tt.mutate(&params)

			err := expense.ValidateParams(params)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, expense.ErrValidation)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC)
	params := expense.CreateParams{
		Amount:      3000,
		Description: "Dinner",
		Category:    expense.CategoryLifestyle,
		Date:        "2024-03-10",
	}

	e := expense.New(params, now)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, params.Amount, e.Amount)
	assert.Equal(t, params.Description, e.Description)
	assert.Equal(t, params.Category, e.Category)
	assert.Equal(t, params.Date, e.Date)
	assert.Equal(t, now, e.CreatedAt)
}
