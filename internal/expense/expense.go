package expense

import (
	"time"

	"github.com/google/uuid"
)

// Category is the user-facing spending category of an expense.
type Category string

const (
	CategoryFixedExpenses Category = "Fixed Expenses"
	CategorySavings       Category = "Savings"
	CategoryInvestments   Category = "Investments"
	CategoryLifestyle     Category = "Lifestyle"
	CategoryOther         Category = "Other"
)

// Categories returns every selectable category, in display order.
func Categories() []Category {
	return []Category{
		CategoryFixedExpenses,
		CategorySavings,
		CategoryInvestments,
		CategoryLifestyle,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFixedExpenses, CategorySavings, CategoryInvestments,
		CategoryLifestyle, CategoryOther:
		return true
	}

	return false
}

// Bucket is one of the four budget allocations a category maps onto.
type Bucket string

const (
	BucketFixedExpenses        Bucket = "fixed_expenses"
	BucketPlannedSavings       Bucket = "planned_savings"
	BucketInvestmentAllocation Bucket = "investment_allocation"
	BucketLifestyleBalance     Bucket = "lifestyle_balance"
)

// BucketFor maps a category onto its budget bucket. Lifestyle is the
// catch-all: any category without a dedicated allocation lands there.
func BucketFor(c Category) Bucket {
	switch c {
	case CategoryFixedExpenses:
		return BucketFixedExpenses
	case CategorySavings:
		return BucketPlannedSavings
	case CategoryInvestments:
		return BucketInvestmentAllocation
	default:
		return BucketLifestyleBalance
	}
}

// Expense represents a single logged expense. Expenses are immutable once
// created; corrections are delete-and-re-add.
type Expense struct {
	ID          uuid.UUID `json:"id"`
	Amount      int64     `json:"amount"` // Amount in paise
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	// Date is the user-intended transaction date in YYYY-MM-DD form. It is
	// kept as entered; consumers fall back to CreatedAt when it does not
	// parse.
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateParams holds the validated inputs for a new expense.
type CreateParams struct {
	Amount      int64
	Description string
	Category    Category
	Date        string
}

// New builds an Expense from already-validated params.
func New(params CreateParams, now time.Time) Expense {
	return Expense{
		ID:          uuid.New(),
		Amount:      params.Amount,
		Description: params.Description,
		Category:    params.Category,
		Date:        params.Date,
		CreatedAt:   now,
	}
}
