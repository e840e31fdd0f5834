package budget

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arand/kharcha/internal/budget"
	"github.com/arand/kharcha/internal/expense"
	"github.com/arand/kharcha/internal/state"
)

type Handler struct {
	svc *state.Service
}

func NewHandler(svc *state.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/income", h.setIncome)
	r.Put("/config", h.setConfig)
	r.Post("/reset", h.reset)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	st := h.svc.Current()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSummary(st)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type setIncomeRequest struct {
	Amount int64 `json:"amount"`
}

func (h *Handler) setIncome(w http.ResponseWriter, r *http.Request) {
	var req setIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := h.svc.SetIncome(r.Context(), req.Amount)
	if err != nil {
		if errors.Is(err, expense.ErrValidation) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSummary(st)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) setConfig(w http.ResponseWriter, r *http.Request) {
	var req budget.Config
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := h.svc.SetConfig(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSummary(st)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Reset(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSummary(st)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
