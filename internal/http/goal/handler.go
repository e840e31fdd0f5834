package goal

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arand/kharcha/internal/goal"
	"github.com/arand/kharcha/internal/state"
)

type Handler struct {
	goals *goal.Service
	svc   *state.Service
}

func NewHandler(goals *goal.Service, svc *state.Service) *Handler {
	return &Handler{goals: goals, svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.save)
}

type goalResponse struct {
	Goal goal.Goal `json:"goal"`
	Plan goal.Plan `json:"plan"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	g := h.goals.Get(r.Context())
	h.respond(w, g)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var g goal.Goal
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.goals.Save(r.Context(), g); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.respond(w, g)
}

func (h *Handler) respond(w http.ResponseWriter, g goal.Goal) {
	st := h.svc.Current()

	resp := goalResponse{
		Goal: g,
		Plan: goal.Evaluate(g, st.Budget.LifestyleBalance),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
