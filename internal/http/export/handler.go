package export

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arand/kharcha/internal/export"
	"github.com/arand/kharcha/internal/state"
)

type Handler struct {
	svc *state.Service
}

func NewHandler(svc *state.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/expenses.csv", h.expenses)
	r.Get("/snapshots.csv", h.snapshots)
}

func (h *Handler) expenses(w http.ResponseWriter, r *http.Request) {
	st := h.svc.Current()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="expenses.csv"`)

	if err := export.Expenses(w, st.Expenses); err != nil {
		slog.Error("failed to write expense export", "error", err)
	}
}

func (h *Handler) snapshots(w http.ResponseWriter, r *http.Request) {
	st := h.svc.Current()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="snapshots.csv"`)

	if err := export.Snapshots(w, st.Snapshots); err != nil {
		slog.Error("failed to write snapshot export", "error", err)
	}
}
