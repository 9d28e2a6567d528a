package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Abinash-k/Freelance-Portal/internal/api/validate"
	"github.com/Abinash-k/Freelance-Portal/internal/email"
	"github.com/Abinash-k/Freelance-Portal/internal/model"
	"github.com/Abinash-k/Freelance-Portal/internal/store"
	"github.com/Abinash-k/Freelance-Portal/internal/zoom"
)

// RoomCreator allocates and removes meeting rooms on the provider.
// Satisfied by *zoom.Client.
type RoomCreator interface {
	Create(ctx context.Context, token string, p zoom.CreateMeetingParams) (*zoom.RemoteMeeting, error)
	Delete(ctx context.Context, token string, meetingID int64) error
}

// InviteDispatcher fans invitation emails out to attendees.
// Satisfied by *email.Dispatcher.
type InviteDispatcher interface {
	Dispatch(ctx context.Context, inv email.Invitation) error
}

// MeetingService runs the meeting provisioning pipeline and the plain
// read/update flows the meetings pages use.
type MeetingService struct {
	store   store.Store
	issuer  zoom.CredentialIssuer
	rooms   RoomCreator
	invites InviteDispatcher
	log     zerolog.Logger
}

func NewMeetingService(s store.Store, issuer zoom.CredentialIssuer, rooms RoomCreator, invites InviteDispatcher, log zerolog.Logger) *MeetingService {
	return &MeetingService{store: s, issuer: issuer, rooms: rooms, invites: invites, log: log}
}

// ScheduleRequest is one scheduling attempt.
type ScheduleRequest struct {
	Title       string
	Description string
	Date        time.Time
	Duration    int
	Attendees   []string
	UserID      string
}

// ScheduleResult is the outcome of a successful (or succeeded-with-warning)
// pipeline invocation. Warning is set when the meeting was persisted but
// some invitations could not be delivered.
type ScheduleResult struct {
	Meeting *model.Meeting
	Warning string
}

func (r ScheduleRequest) validate() error {
	if err := validate.NonEmpty("title", r.Title); err != nil {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	if err := validate.NonEmpty("user_id", r.UserID); err != nil {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("%w: date is required", model.ErrValidation)
	}
	if err := validate.Positive("duration", r.Duration); err != nil {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	for _, a := range r.Attendees {
		if err := validate.Email(a); err != nil {
			return fmt.Errorf("%w: attendee: %v", model.ErrValidation, err)
		}
	}
	return nil
}

// Schedule executes the four pipeline stages in order: sign a provider
// credential, allocate the remote room, persist the meeting, then dispatch
// invitations. Stages one through three are fail-fast; a stage-three
// failure triggers the compensating delete of the room created in stage
// two. Invitation failures never roll the meeting back; they surface as a
// warning on the result.
func (s *MeetingService) Schedule(ctx context.Context, req ScheduleRequest) (*ScheduleResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	token, err := s.issuer.Token()
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.Create(ctx, token, zoom.CreateMeetingParams{
		Topic:     req.Title,
		StartTime: req.Date,
		Duration:  req.Duration,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("join_url", room.JoinURL).Str("title", req.Title).Msg("remote meeting created")

	var description *string
	if req.Description != "" {
		description = &req.Description
	}
	attendees := req.Attendees
	if attendees == nil {
		attendees = []string{}
	}
	meeting, err := s.store.Meetings().Create(ctx, &model.Meeting{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: description,
		Date:        req.Date.UTC(),
		Duration:    req.Duration,
		Attendees:   attendees,
		Location:    room.JoinURL,
		Status:      model.MeetingScheduled,
	})
	if err != nil {
		// Compensate: the remote room exists but the local record does not.
		// Best effort; a failed delete only leaks the remote resource.
		if delErr := s.rooms.Delete(ctx, token, room.ID); delErr != nil {
			s.log.Error().Err(delErr).Int64("remote_id", room.ID).Msg("compensating room delete failed")
		}
		return nil, &model.PersistenceError{Op: "meetings.Create", Err: err}
	}

	result := &ScheduleResult{Meeting: meeting}
	err = s.invites.Dispatch(ctx, email.Invitation{
		Attendees:   meeting.Attendees,
		Title:       meeting.Title,
		Description: req.Description,
		Date:        meeting.Date,
		Duration:    meeting.Duration,
		JoinURL:     meeting.Location,
	})
	if err != nil {
		var pde *model.PartialDispatchError
		if errors.As(err, &pde) {
			result.Warning = "meeting created but some invites were not delivered: " + pde.Error()
			return result, nil
		}
		// Dispatcher contract only yields PartialDispatchError, but treat
		// anything else the same way: the meeting is already committed.
		result.Warning = "meeting created but invites were not delivered: " + err.Error()
		return result, nil
	}
	return result, nil
}

func (s *MeetingService) GetMeeting(ctx context.Context, userID, meetingID string) (*model.Meeting, error) {
	return s.store.Meetings().Get(ctx, userID, meetingID)
}

func (s *MeetingService) ListMeetings(ctx context.Context, userID string) ([]*model.Meeting, error) {
	return s.store.Meetings().List(ctx, userID)
}

func (s *MeetingService) UpdateMeetingStatus(ctx context.Context, userID, meetingID, status string) (*model.Meeting, error) {
	switch status {
	case model.MeetingScheduled, model.MeetingCompleted, model.MeetingCancelled:
	default:
		return nil, fmt.Errorf("%w: invalid status %q", model.ErrValidation, status)
	}
	return s.store.Meetings().UpdateStatus(ctx, userID, meetingID, status)
}

func (s *MeetingService) DeleteMeeting(ctx context.Context, userID, meetingID string) error {
	return s.store.Meetings().Delete(ctx, userID, meetingID)
}
