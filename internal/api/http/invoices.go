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

// InvoiceHandler provides HTTP transport for invoice operations.
type InvoiceHandler struct {
	invoices *services.InvoiceService
}

func NewInvoiceHandler(svc *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: svc}
}

type invoiceRequest struct {
	Title      string    `json:"title"`
	ClientName string    `json:"client_name"`
	Amount     float64   `json:"amount"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	DueDate    time.Time `json:"due_date"`
}

func (r invoiceRequest) toModel(userID, id string) *model.Invoice {
	return &model.Invoice{
		ID:         id,
		UserID:     userID,
		Title:      r.Title,
		ClientName: r.ClientName,
		Amount:     r.Amount,
		Content:    r.Content,
		Status:     r.Status,
		DueDate:    r.DueDate,
	}
}

// CreateInvoice POST /api/users/{userId}/invoices
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var req invoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	inv, err := h.invoices.CreateInvoice(r.Context(), req.toModel(userID, ""))
	if err != nil {
		writeServiceError(w, err, "invoice")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, inv)
}

// ListInvoices GET /api/users/{userId}/invoices
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	invs, err := h.invoices.ListInvoices(r.Context(), userID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"invoices": invs, "count": len(invs)})
}

// GetInvoice GET /api/users/{userId}/invoices/{invoiceId}
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	inv, err := h.invoices.GetInvoice(r.Context(), vars["userId"], vars["invoiceId"])
	if err != nil {
		writeServiceError(w, err, "invoice")
		return
	}
	respond.WriteJSON(w, http.StatusOK, inv)
}

// UpdateInvoice PUT /api/users/{userId}/invoices/{invoiceId}
func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req invoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	inv, err := h.invoices.UpdateInvoice(r.Context(), req.toModel(vars["userId"], vars["invoiceId"]))
	if err != nil {
		writeServiceError(w, err, "invoice")
		return
	}
	respond.WriteJSON(w, http.StatusOK, inv)
}

// DeleteInvoice DELETE /api/users/{userId}/invoices/{invoiceId}
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.invoices.DeleteInvoice(r.Context(), vars["userId"], vars["invoiceId"]); err != nil {
		writeServiceError(w, err, "invoice")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
