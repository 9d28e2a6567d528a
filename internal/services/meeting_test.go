package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Abinash-k/Freelance-Portal/internal/email"
	"github.com/Abinash-k/Freelance-Portal/internal/model"
	"github.com/Abinash-k/Freelance-Portal/internal/store"
	"github.com/Abinash-k/Freelance-Portal/internal/zoom"
)

// --- pipeline stage mocks ---

type stubIssuer struct {
	token string
	err   error
}

func (s *stubIssuer) Token() (string, error) { return s.token, s.err }

type mockRooms struct {
	created   int
	deleted   []int64
	createErr error
	nextID    int64
}

func (m *mockRooms) Create(ctx context.Context, token string, p zoom.CreateMeetingParams) (*zoom.RemoteMeeting, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created++
	m.nextID++
	return &zoom.RemoteMeeting{ID: m.nextID, JoinURL: fmt.Sprintf("https://zoom.us/j/%d", m.nextID)}, nil
}

func (m *mockRooms) Delete(ctx context.Context, token string, meetingID int64) error {
	m.deleted = append(m.deleted, meetingID)
	return nil
}

type mockDispatcher struct {
	invitations []email.Invitation
	err         error
}

func (m *mockDispatcher) Dispatch(ctx context.Context, inv email.Invitation) error {
	m.invitations = append(m.invitations, inv)
	return m.err
}

// mockStore implements store.Store with an in-memory meetings table. The
// other entity accessors are unused by the pipeline.

type mockStore struct {
	meetings mockMeetings
}

func (s *mockStore) Meetings() store.Meetings               { return &s.meetings }
func (s *mockStore) Leads() store.Leads                     { return nil }
func (s *mockStore) Invoices() store.Invoices               { return nil }
func (s *mockStore) Contracts() store.Contracts             { return nil }
func (s *mockStore) Expenses() store.Expenses               { return nil }
func (s *mockStore) Projects() store.Projects               { return nil }
func (s *mockStore) BusinessDetails() store.BusinessDetails { return nil }

type mockMeetings struct {
	rows      []*model.Meeting
	createErr error
}

func (m *mockMeetings) Create(ctx context.Context, in *model.Meeting) (*model.Meeting, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	out := *in
	out.ID = uuid.New().String()
	out.CreatedAt = time.Now().UTC()
	out.UpdatedAt = out.CreatedAt
	m.rows = append(m.rows, &out)
	return &out, nil
}

func (m *mockMeetings) Get(ctx context.Context, userID, meetingID string) (*model.Meeting, error) {
	for _, r := range m.rows {
		if r.UserID == userID && r.ID == meetingID {
			return r, nil
		}
	}
	return nil, model.ErrNotFound
}

func (m *mockMeetings) List(ctx context.Context, userID string) ([]*model.Meeting, error) {
	var out []*model.Meeting
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockMeetings) UpdateStatus(ctx context.Context, userID, meetingID, status string) (*model.Meeting, error) {
	mt, err := m.Get(ctx, userID, meetingID)
	if err != nil {
		return nil, err
	}
	mt.Status = status
	return mt, nil
}

func (m *mockMeetings) Delete(ctx context.Context, userID, meetingID string) error {
	for i, r := range m.rows {
		if r.UserID == userID && r.ID == meetingID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return model.ErrNotFound
}

func newTestService(st *mockStore, rooms *mockRooms, disp *mockDispatcher) *MeetingService {
	return NewMeetingService(st, &stubIssuer{token: "tok"}, rooms, disp, zerolog.Nop())
}

func kickoffRequest() ScheduleRequest {
	return ScheduleRequest{
		Title:     "Kickoff",
		Date:      time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC),
		Duration:  30,
		Attendees: []string{"a@x.com", "b@x.com"},
		UserID:    "user-1",
	}
}

func TestSchedule_HappyPath(t *testing.T) {
	st := &mockStore{}
	rooms := &mockRooms{}
	disp := &mockDispatcher{}
	svc := newTestService(st, rooms, disp)

	res, err := svc.Schedule(context.Background(), kickoffRequest())
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if res.Warning != "" {
		t.Fatalf("unexpected warning: %q", res.Warning)
	}

	// exactly one persisted row whose location is the provider join URL
	if len(st.meetings.rows) != 1 {
		t.Fatalf("expected 1 persisted meeting, got %d", len(st.meetings.rows))
	}
	row := st.meetings.rows[0]
	if !strings.HasPrefix(row.Location, "https://zoom.us/j/") {
		t.Fatalf("location should be the provider join URL, got %q", row.Location)
	}
	if row.Status != model.MeetingScheduled {
		t.Fatalf("expected status scheduled, got %q", row.Status)
	}

	// dispatch received the persisted meeting's fields
	if len(disp.invitations) != 1 {
		t.Fatalf("expected 1 dispatch call, got %d", len(disp.invitations))
	}
	inv := disp.invitations[0]
	if len(inv.Attendees) != 2 || inv.JoinURL != row.Location || inv.Title != "Kickoff" {
		t.Fatalf("unexpected invitation: %+v", inv)
	}
}

func TestSchedule_RemoteCreationFails_NothingPersisted(t *testing.T) {
	st := &mockStore{}
	rooms := &mockRooms{createErr: &model.ExternalServiceError{Service: "zoom", StatusCode: 401, Body: "bad token"}}
	disp := &mockDispatcher{}
	svc := newTestService(st, rooms, disp)

	_, err := svc.Schedule(context.Background(), kickoffRequest())
	if !model.IsExternalServiceError(err) {
		t.Fatalf("expected external service error, got %v", err)
	}
	if len(st.meetings.rows) != 0 {
		t.Fatal("no meeting row may exist when room creation fails")
	}
	if len(disp.invitations) != 0 {
		t.Fatal("no invites may be dispatched when room creation fails")
	}
}

func TestSchedule_PersistFails_CompensatingDelete(t *testing.T) {
	st := &mockStore{meetings: mockMeetings{createErr: errors.New("connection reset")}}
	rooms := &mockRooms{}
	disp := &mockDispatcher{}
	svc := newTestService(st, rooms, disp)

	_, err := svc.Schedule(context.Background(), kickoffRequest())
	if !model.IsPersistenceError(err) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	// the remote room created in stage two must be deleted again
	if len(rooms.deleted) != 1 || rooms.deleted[0] != 1 {
		t.Fatalf("expected compensating delete of room 1, got %v", rooms.deleted)
	}
	if len(disp.invitations) != 0 {
		t.Fatal("no invites may be dispatched when the insert fails")
	}
}

func TestSchedule_IssuerFails_ShortCircuits(t *testing.T) {
	st := &mockStore{}
	rooms := &mockRooms{}
	svc := NewMeetingService(st, &stubIssuer{err: &model.ConfigurationError{Name: "zoom API key"}}, rooms, &mockDispatcher{}, zerolog.Nop())

	_, err := svc.Schedule(context.Background(), kickoffRequest())
	if !model.IsConfigurationError(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if rooms.created != 0 {
		t.Fatal("no network call may happen when credentials are missing")
	}
	if len(st.meetings.rows) != 0 {
		t.Fatal("no meeting row may exist when credentials are missing")
	}
}

func TestSchedule_PartialDispatch_WarnsButKeepsMeeting(t *testing.T) {
	st := &mockStore{}
	rooms := &mockRooms{}
	disp := &mockDispatcher{err: &model.PartialDispatchError{Failed: []string{"b@x.com", "d@x.com"}}}
	svc := newTestService(st, rooms, disp)

	req := kickoffRequest()
	req.Attendees = []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com"}

	res, err := svc.Schedule(context.Background(), req)
	if err != nil {
		t.Fatalf("partial dispatch must not fail the pipeline: %v", err)
	}
	if res.Meeting == nil || len(st.meetings.rows) != 1 {
		t.Fatal("meeting must remain persisted despite dispatch failures")
	}
	if !strings.Contains(res.Warning, "b@x.com") || !strings.Contains(res.Warning, "d@x.com") {
		t.Fatalf("warning should name the failed addresses, got %q", res.Warning)
	}
	if strings.Contains(res.Warning, "a@x.com") {
		t.Fatalf("warning should not name delivered addresses, got %q", res.Warning)
	}
}

func TestSchedule_EmptyAttendees_SkipsDispatchEffect(t *testing.T) {
	st := &mockStore{}
	rooms := &mockRooms{}
	disp := &mockDispatcher{}
	svc := newTestService(st, rooms, disp)

	req := kickoffRequest()
	req.Attendees = nil

	res, err := svc.Schedule(context.Background(), req)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if res.Meeting.Attendees == nil || len(res.Meeting.Attendees) != 0 {
		t.Fatalf("attendees should persist as an empty list, got %v", res.Meeting.Attendees)
	}
}

func TestSchedule_DoubleSubmitCreatesTwoMeetings(t *testing.T) {
	st := &mockStore{}
	rooms := &mockRooms{}
	disp := &mockDispatcher{}
	svc := newTestService(st, rooms, disp)

	req := kickoffRequest()
	first, err := svc.Schedule(context.Background(), req)
	if err != nil {
		t.Fatalf("first schedule: %v", err)
	}
	second, err := svc.Schedule(context.Background(), req)
	if err != nil {
		t.Fatalf("second schedule: %v", err)
	}

	// no dedup: two rows, two distinct remote rooms
	if first.Meeting.ID == second.Meeting.ID {
		t.Fatal("identical requests must still create distinct rows")
	}
	if first.Meeting.Location == second.Meeting.Location {
		t.Fatal("identical requests must still create distinct remote rooms")
	}
	if rooms.created != 2 {
		t.Fatalf("expected 2 remote creations, got %d", rooms.created)
	}
}

func TestSchedule_Validation(t *testing.T) {
	svc := newTestService(&mockStore{}, &mockRooms{}, &mockDispatcher{})

	cases := map[string]func(*ScheduleRequest){
		"missing title":    func(r *ScheduleRequest) { r.Title = "" },
		"missing user":     func(r *ScheduleRequest) { r.UserID = "" },
		"zero date":        func(r *ScheduleRequest) { r.Date = time.Time{} },
		"zero duration":    func(r *ScheduleRequest) { r.Duration = 0 },
		"invalid attendee": func(r *ScheduleRequest) { r.Attendees = []string{"not-an-email"} },
	}
	for name, mutate := range cases {
		req := kickoffRequest()
		mutate(&req)
		if _, err := svc.Schedule(context.Background(), req); !model.IsValidationError(err) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestUpdateMeetingStatus_InvalidStatus(t *testing.T) {
	svc := newTestService(&mockStore{}, &mockRooms{}, &mockDispatcher{})
	if _, err := svc.UpdateMeetingStatus(context.Background(), "u", "m", "postponed"); !model.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
