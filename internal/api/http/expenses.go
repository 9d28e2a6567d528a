package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Abinash-k/Freelance-Portal/internal/api/respond"
	"github.com/Abinash-k/Freelance-Portal/internal/model"
	"github.com/Abinash-k/Freelance-Portal/internal/services"
)

// ExpenseHandler provides HTTP transport for expense operations.
type ExpenseHandler struct {
	expenses *services.ExpenseService
}

func NewExpenseHandler(svc *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: svc}
}

type expenseRequest struct {
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	ReceiptURL  *string   `json:"receipt_url,omitempty"`
}

func (r expenseRequest) toModel(userID, id string) *model.Expense {
	return &model.Expense{
		ID:          id,
		UserID:      userID,
		Description: r.Description,
		Category:    r.Category,
		Amount:      r.Amount,
		Date:        r.Date,
		ReceiptURL:  r.ReceiptURL,
	}
}

// CreateExpense POST /api/users/{userId}/expenses
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	e, err := h.expenses.CreateExpense(r.Context(), req.toModel(userID, ""))
	if err != nil {
		writeServiceError(w, err, "expense")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, e)
}

// ListExpenses GET /api/users/{userId}/expenses
func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	es, err := h.expenses.ListExpenses(r.Context(), userID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"expenses": es, "count": len(es)})
}

// GetExpense GET /api/users/{userId}/expenses/{expenseId}
func (h *ExpenseHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	e, err := h.expenses.GetExpense(r.Context(), vars["userId"], vars["expenseId"])
	if err != nil {
		writeServiceError(w, err, "expense")
		return
	}
	respond.WriteJSON(w, http.StatusOK, e)
}

// UpdateExpense PUT /api/users/{userId}/expenses/{expenseId}
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	e, err := h.expenses.UpdateExpense(r.Context(), req.toModel(vars["userId"], vars["expenseId"]))
	if err != nil {
		writeServiceError(w, err, "expense")
		return
	}
	respond.WriteJSON(w, http.StatusOK, e)
}

// DeleteExpense DELETE /api/users/{userId}/expenses/{expenseId}
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.expenses.DeleteExpense(r.Context(), vars["userId"], vars["expenseId"]); err != nil {
		writeServiceError(w, err, "expense")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
