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

// ContractHandler provides HTTP transport for contract operations.
type ContractHandler struct {
	contracts *services.ContractService
}

func NewContractHandler(svc *services.ContractService) *ContractHandler {
	return &ContractHandler{contracts: svc}
}

type contractRequest struct {
	ClientName  string     `json:"client_name"`
	ProjectName string     `json:"project_name"`
	Value       *float64   `json:"value,omitempty"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

func (r contractRequest) toModel(userID, id string) *model.Contract {
	return &model.Contract{
		ID:          id,
		UserID:      userID,
		ClientName:  r.ClientName,
		ProjectName: r.ProjectName,
		Value:       r.Value,
		Status:      r.Status,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

// CreateContract POST /api/users/{userId}/contracts
func (h *ContractHandler) CreateContract(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var req contractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	c, err := h.contracts.CreateContract(r.Context(), req.toModel(userID, ""))
	if err != nil {
		writeServiceError(w, err, "contract")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, c)
}

// ListContracts GET /api/users/{userId}/contracts
func (h *ContractHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	cs, err := h.contracts.ListContracts(r.Context(), userID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"contracts": cs, "count": len(cs)})
}

// GetContract GET /api/users/{userId}/contracts/{contractId}
func (h *ContractHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	c, err := h.contracts.GetContract(r.Context(), vars["userId"], vars["contractId"])
	if err != nil {
		writeServiceError(w, err, "contract")
		return
	}
	respond.WriteJSON(w, http.StatusOK, c)
}

// UpdateContract PUT /api/users/{userId}/contracts/{contractId}
func (h *ContractHandler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req contractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	c, err := h.contracts.UpdateContract(r.Context(), req.toModel(vars["userId"], vars["contractId"]))
	if err != nil {
		writeServiceError(w, err, "contract")
		return
	}
	respond.WriteJSON(w, http.StatusOK, c)
}

// DeleteContract DELETE /api/users/{userId}/contracts/{contractId}
func (h *ContractHandler) DeleteContract(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.contracts.DeleteContract(r.Context(), vars["userId"], vars["contractId"]); err != nil {
		writeServiceError(w, err, "contract")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
