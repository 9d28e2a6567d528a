package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Abinash-k/Freelance-Portal/internal/api/respond"
	"github.com/Abinash-k/Freelance-Portal/internal/model"
	"github.com/Abinash-k/Freelance-Portal/internal/services"
)

// LeadHandler provides HTTP transport for lead operations.
type LeadHandler struct {
	leads *services.LeadService
}

func NewLeadHandler(svc *services.LeadService) *LeadHandler {
	return &LeadHandler{leads: svc}
}

type leadRequest struct {
	Name    string  `json:"name"`
	Company *string `json:"company,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Status  string  `json:"status"`
	Notes   *string `json:"notes,omitempty"`
}

// CreateLead POST /api/users/{userId}/leads
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var req leadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	l, err := h.leads.CreateLead(r.Context(), &model.Lead{
		UserID:  userID,
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Status:  req.Status,
		Notes:   req.Notes,
	})
	if err != nil {
		writeServiceError(w, err, "lead")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, l)
}

// ListLeads GET /api/users/{userId}/leads
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	ls, err := h.leads.ListLeads(r.Context(), userID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"leads": ls, "count": len(ls)})
}

// GetLead GET /api/users/{userId}/leads/{leadId}
func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	l, err := h.leads.GetLead(r.Context(), vars["userId"], vars["leadId"])
	if err != nil {
		writeServiceError(w, err, "lead")
		return
	}
	respond.WriteJSON(w, http.StatusOK, l)
}

// UpdateLead PUT /api/users/{userId}/leads/{leadId}
func (h *LeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req leadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	l, err := h.leads.UpdateLead(r.Context(), &model.Lead{
		ID:      vars["leadId"],
		UserID:  vars["userId"],
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Status:  req.Status,
		Notes:   req.Notes,
	})
	if err != nil {
		writeServiceError(w, err, "lead")
		return
	}
	respond.WriteJSON(w, http.StatusOK, l)
}

// DeleteLead DELETE /api/users/{userId}/leads/{leadId}
func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.leads.DeleteLead(r.Context(), vars["userId"], vars["leadId"]); err != nil {
		writeServiceError(w, err, "lead")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps domain errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error, entity string) {
	switch {
	case model.IsValidationError(err):
		respond.WriteBadRequest(w, err.Error())
	case model.IsNotFoundError(err):
		respond.WriteNotFound(w, entity+" not found")
	default:
		respond.WriteInternalError(w, err.Error())
	}
}
