package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Abinash-k/Freelance-Portal/internal/api/respond"
	"github.com/Abinash-k/Freelance-Portal/internal/model"
	"github.com/Abinash-k/Freelance-Portal/internal/services"
)

// BusinessHandler provides HTTP transport for the business profile.
type BusinessHandler struct {
	business *services.BusinessService
}

func NewBusinessHandler(svc *services.BusinessService) *BusinessHandler {
	return &BusinessHandler{business: svc}
}

type businessDetailsRequest struct {
	BusinessName string  `json:"business_name"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	Country      *string `json:"country,omitempty"`
	CurrencyCode *string `json:"currency_code,omitempty"`
	Website      *string `json:"website,omitempty"`
}

// SaveDetails PUT /api/users/{userId}/business-details
func (h *BusinessHandler) SaveDetails(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var req businessDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	b, err := h.business.SaveDetails(r.Context(), &model.BusinessDetails{
		UserID:       userID,
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Country:      req.Country,
		CurrencyCode: req.CurrencyCode,
		Website:      req.Website,
	})
	if err != nil {
		writeServiceError(w, err, "business details")
		return
	}
	respond.WriteJSON(w, http.StatusOK, b)
}

// GetDetails GET /api/users/{userId}/business-details
func (h *BusinessHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	b, err := h.business.GetDetails(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "business details")
		return
	}
	respond.WriteJSON(w, http.StatusOK, b)
}
