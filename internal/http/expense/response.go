package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/arand/kharcha/internal/expense"
)

type expenseResponse struct {
	ID          uuid.UUID        `json:"id"`
	Amount      int64            `json:"amount"`
	Description string           `json:"description"`
	Category    expense.Category `json:"category"`
	Date        string           `json:"date,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func toResponse(e expense.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		Amount:      e.Amount,
		Description: e.Description,
		Category:    e.Category,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}

func toResponseList(expenses []expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toResponse(e)
	}

	return resp
}
