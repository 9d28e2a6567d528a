// Package http provides HTTP transport for the portal services.
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

// MeetingHandler provides HTTP transport for meeting operations.
type MeetingHandler struct {
	meetings *services.MeetingService
}

func NewMeetingHandler(svc *services.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetings: svc}
}

type scheduleMeetingRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Duration    int      `json:"duration"`
	Attendees   []string `json:"attendees"`
	UserID      string   `json:"user_id"`
}

type scheduleMeetingResponse struct {
	Success bool           `json:"success,omitempty"`
	Meeting *model.Meeting `json:"meeting"`
	Warning string         `json:"warning,omitempty"`
}

// ScheduleMeeting POST /api/meetings/schedule
//
// Runs the provisioning pipeline. A dispatch failure still returns 200 with
// a warning because the meeting row is already committed by then.
func (h *MeetingHandler) ScheduleMeeting(w http.ResponseWriter, r *http.Request) {
	var req scheduleMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		respond.WriteBadRequest(w, "date must be an ISO 8601 timestamp")
		return
	}

	res, err := h.meetings.Schedule(r.Context(), services.ScheduleRequest{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Duration:    req.Duration,
		Attendees:   req.Attendees,
		UserID:      req.UserID,
	})
	if err != nil {
		if model.IsValidationError(err) {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}

	if res.Warning != "" {
		respond.WriteJSON(w, http.StatusOK, scheduleMeetingResponse{Meeting: res.Meeting, Warning: res.Warning})
		return
	}
	respond.WriteJSON(w, http.StatusOK, scheduleMeetingResponse{Success: true, Meeting: res.Meeting})
}

// ListMeetings GET /api/users/{userId}/meetings
func (h *MeetingHandler) ListMeetings(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	ms, err := h.meetings.ListMeetings(r.Context(), userID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"meetings": ms, "count": len(ms)})
}

// GetMeeting GET /api/users/{userId}/meetings/{meetingId}
func (h *MeetingHandler) GetMeeting(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	m, err := h.meetings.GetMeeting(r.Context(), vars["userId"], vars["meetingId"])
	if err != nil {
		if model.IsNotFoundError(err) {
			respond.WriteNotFound(w, "meeting not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, m)
}

// UpdateMeetingStatus PATCH /api/users/{userId}/meetings/{meetingId}/status
func (h *MeetingHandler) UpdateMeetingStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	m, err := h.meetings.UpdateMeetingStatus(r.Context(), vars["userId"], vars["meetingId"], req.Status)
	if err != nil {
		if model.IsValidationError(err) {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		if model.IsNotFoundError(err) {
			respond.WriteNotFound(w, "meeting not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, m)
}

// DeleteMeeting DELETE /api/users/{userId}/meetings/{meetingId}
func (h *MeetingHandler) DeleteMeeting(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.meetings.DeleteMeeting(r.Context(), vars["userId"], vars["meetingId"]); err != nil {
		if model.IsNotFoundError(err) {
			respond.WriteNotFound(w, "meeting not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
