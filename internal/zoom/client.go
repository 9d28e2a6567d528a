// Package zoom talks to the Zoom REST API: credential signing and meeting
// room allocation.
package zoom

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Abinash-k/Freelance-Portal/internal/model"
)

// meeting type code for a scheduled (non-instant) meeting.
const typeScheduled = 2

// RemoteMeeting is the provider-side resource created for a meeting. The ID
// is kept so a failed local insert can delete the remote room again.
type RemoteMeeting struct {
	ID      int64
	JoinURL string
}

// CreateMeetingParams are the caller-supplied fields of a room request.
type CreateMeetingParams struct {
	Topic     string
	StartTime time.Time
	Duration  int
}

// Client issues authenticated requests against the Zoom v2 API.
type Client struct {
	http *resty.Client
}

// NewClient creates a Zoom API client for the given base URL.
func NewClient(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "Zoom-api-Jwt-Request").
		SetTimeout(30 * time.Second)
	return &Client{http: c}
}

type meetingSettings struct {
	HostVideo        bool   `json:"host_video"`
	ParticipantVideo bool   `json:"participant_video"`
	JoinBeforeHost   bool   `json:"join_before_host"`
	WaitingRoom      bool   `json:"waiting_room"`
	AutoRecording    string `json:"auto_recording"`
}

type createMeetingRequest struct {
	Topic     string          `json:"topic"`
	Type      int             `json:"type"`
	StartTime string          `json:"start_time"`
	Duration  int             `json:"duration"`
	Timezone  string          `json:"timezone"`
	Settings  meetingSettings `json:"settings"`
}

type createMeetingResponse struct {
	ID      int64  `json:"id"`
	JoinURL string `json:"join_url"`
}

// Create allocates a scheduled meeting room and returns its join URL. A
// single attempt is made; any non-2xx status or transport failure is
// surfaced as an ExternalServiceError with the raw response body.
func (c *Client) Create(ctx context.Context, token string, p CreateMeetingParams) (*RemoteMeeting, error) {
	body := createMeetingRequest{
		Topic:     p.Topic,
		Type:      typeScheduled,
		StartTime: p.StartTime.UTC().Format(time.RFC3339),
		Duration:  p.Duration,
		Timezone:  "UTC",
		Settings: meetingSettings{
			HostVideo:        true,
			ParticipantVideo: true,
			JoinBeforeHost:   true,
			WaitingRoom:      false,
			AutoRecording:    "none",
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(&body).
		Post("/v2/users/me/meetings")
	if err != nil {
		return nil, &model.ExternalServiceError{Service: "zoom", Err: err}
	}
	if resp.IsError() {
		return nil, &model.ExternalServiceError{Service: "zoom", StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	var out createMeetingResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &model.ExternalServiceError{Service: "zoom", Err: fmt.Errorf("decode response: %w", err)}
	}
	if out.JoinURL == "" {
		return nil, &model.ExternalServiceError{Service: "zoom", StatusCode: resp.StatusCode(), Body: "response missing join_url"}
	}
	return &RemoteMeeting{ID: out.ID, JoinURL: out.JoinURL}, nil
}

// Delete removes a previously created meeting. It is the compensating
// action for Create when the local insert fails.
func (c *Client) Delete(ctx context.Context, token string, meetingID int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Delete(fmt.Sprintf("/v2/meetings/%d", meetingID))
	if err != nil {
		return &model.ExternalServiceError{Service: "zoom", Err: err}
	}
	if resp.IsError() {
		return &model.ExternalServiceError{Service: "zoom", StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}
