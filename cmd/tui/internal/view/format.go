package view

import (
	"context"
	"time"

	"github.com/arand/kharcha/internal/money"
)

const dbTimeout = 5 * time.Second

// FormatAmount formats an amount stored as paise into a rupee string.
func FormatAmount(paise int64) string {
	return money.Format(paise)
}

// DbCtx returns a context with a standard timeout for storage operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
