package expense

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arand/kharcha/internal/expense"
	"github.com/arand/kharcha/internal/importer"
	"github.com/arand/kharcha/internal/month"
	"github.com/arand/kharcha/internal/state"
)

type Handler struct {
	svc    *state.Service
	parser *importer.Parser
}

func NewHandler(svc *state.Service, parser *importer.Parser) *Handler {
	return &Handler{svc: svc, parser: parser}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/{id}", h.delete)
}

// ImportRoutes registers the multipart CSV import endpoint. It lives on its
// own mount so the JSON content-type middleware does not apply to it.
func (h *Handler) ImportRoutes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type createExpenseRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.AddExpense(r.Context(), expense.CreateParams{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    expense.Category(req.Category),
		Date:        req.Date,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	st := h.svc.Current()

	expenses := st.Expenses
	if ref := r.URL.Query().Get("month"); ref != "" {
		expenses = month.ExpensesIn(expenses, ref, time.Now())
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(expenses)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if _, err := h.svc.DeleteExpense(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type importSuccessResponse struct {
	Imported int               `json:"imported"`
	Expenses []expenseResponse `json:"expenses"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.parser.Parse(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported, err := h.svc.ImportExpenses(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := importSuccessResponse{
		Imported: len(imported),
		Expenses: toResponseList(imported),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, state.ErrMonthLocked):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, expense.ErrValidation):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
