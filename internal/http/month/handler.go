package month

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arand/kharcha/internal/month"
	"github.com/arand/kharcha/internal/state"
)

type Handler struct {
	svc *state.Service
}

func NewHandler(svc *state.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/current", h.current)
	r.Post("/complete", h.complete)
	r.Get("/snapshots", h.snapshots)
}

type currentMonthResponse struct {
	Month      string `json:"month"`
	Label      string `json:"label"`
	TotalSpent int64  `json:"totalSpent"`
	Completed  bool   `json:"completed"`
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	st := h.svc.Current()

	monthly := month.ExpensesIn(st.Expenses, st.CurrentMonth, time.Now())
	resp := currentMonthResponse{
		Month:      st.CurrentMonth,
		Label:      month.Label(st.CurrentMonth),
		TotalSpent: month.TotalSpent(monthly),
		Completed:  month.IsCompleted(st.CurrentMonth, st.CompletedMonths),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.CompleteMonth(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(st); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) snapshots(w http.ResponseWriter, r *http.Request) {
	st := h.svc.Current()

	snapshots := st.Snapshots
	if snapshots == nil {
		snapshots = []month.Snapshot{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(snapshots); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
