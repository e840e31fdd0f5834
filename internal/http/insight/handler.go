package insight

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arand/kharcha/internal/insight"
	"github.com/arand/kharcha/internal/state"
)

type Handler struct {
	svc *state.Service
}

func NewHandler(svc *state.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	st := h.svc.Current()

	insights := insight.Generate(insight.Params{
		Income:         st.Income,
		Config:         st.Config,
		Expenses:       st.Expenses,
		ReferenceMonth: st.CurrentMonth,
		Today:          time.Now(),
	})

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(insights); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
