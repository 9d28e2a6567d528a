package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Abinash-k/Freelance-Portal/internal/api/respond"
	"github.com/Abinash-k/Freelance-Portal/internal/model"
	"github.com/Abinash-k/Freelance-Portal/internal/services"
)

// ProjectHandler provides HTTP transport for project operations.
type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(svc *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: svc}
}

type projectRequest struct {
	Name   string   `json:"name"`
	Status string   `json:"status"`
	Value  *float64 `json:"value,omitempty"`
}

// CreateProject POST /api/users/{userId}/projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	p, err := h.projects.CreateProject(r.Context(), &model.Project{
		UserID: userID,
		Name:   req.Name,
		Status: req.Status,
		Value:  req.Value,
	})
	if err != nil {
		writeServiceError(w, err, "project")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, p)
}

// ListProjects GET /api/users/{userId}/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	ps, err := h.projects.ListProjects(r.Context(), userID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"projects": ps, "count": len(ps)})
}

// UpdateProject PUT /api/users/{userId}/projects/{projectId}
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	p, err := h.projects.UpdateProject(r.Context(), &model.Project{
		ID:     vars["projectId"],
		UserID: vars["userId"],
		Name:   req.Name,
		Status: req.Status,
		Value:  req.Value,
	})
	if err != nil {
		writeServiceError(w, err, "project")
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// DeleteProject DELETE /api/users/{userId}/projects/{projectId}
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.projects.DeleteProject(r.Context(), vars["userId"], vars["projectId"]); err != nil {
		writeServiceError(w, err, "project")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
