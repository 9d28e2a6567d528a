package email

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Abinash-k/Freelance-Portal/internal/model"
)

type fakeSender struct {
	mu      sync.Mutex
	sent    []string
	failing map[string]bool
}

func (f *fakeSender) Send(ctx context.Context, msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg.To)
	if f.failing[msg.To] {
		return errors.New("boom")
	}
	return nil
}

func testInvitation(attendees ...string) Invitation {
	return Invitation{
		Attendees: attendees,
		Title:     "Kickoff",
		Date:      time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC),
		Duration:  30,
		JoinURL:   "https://zoom.us/j/123",
	}
}

func TestDispatch_AllSucceed(t *testing.T) {
	s := &fakeSender{}
	d := NewDispatcher(s, zerolog.Nop())

	if err := d.Dispatch(context.Background(), testInvitation("a@x.com", "b@x.com")); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(s.sent) != 2 {
		t.Fatalf("expected 2 sends, got %d", len(s.sent))
	}
}

func TestDispatch_EmptyAttendees(t *testing.T) {
	s := &fakeSender{}
	d := NewDispatcher(s, zerolog.Nop())

	if err := d.Dispatch(context.Background(), testInvitation()); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(s.sent) != 0 {
		t.Fatalf("expected no sends for empty attendee list, got %d", len(s.sent))
	}
}

func TestDispatch_PartialFailure(t *testing.T) {
	s := &fakeSender{failing: map[string]bool{"b@x.com": true, "d@x.com": true}}
	d := NewDispatcher(s, zerolog.Nop())

	err := d.Dispatch(context.Background(), testInvitation("a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com"))

	var pde *model.PartialDispatchError
	if !errors.As(err, &pde) {
		t.Fatalf("expected partial dispatch error, got %v", err)
	}
	// every attendee is attempted exactly once, failures included
	if len(s.sent) != 5 {
		t.Fatalf("expected all 5 attendees attempted, got %d", len(s.sent))
	}
	if len(pde.Failed) != 2 || pde.Failed[0] != "b@x.com" || pde.Failed[1] != "d@x.com" {
		t.Fatalf("expected failed list [b@x.com d@x.com] in attendee order, got %v", pde.Failed)
	}
}

func TestDispatch_AllFail(t *testing.T) {
	s := &fakeSender{failing: map[string]bool{"a@x.com": true, "b@x.com": true}}
	d := NewDispatcher(s, zerolog.Nop())

	err := d.Dispatch(context.Background(), testInvitation("a@x.com", "b@x.com"))

	var pde *model.PartialDispatchError
	if !errors.As(err, &pde) {
		t.Fatalf("expected partial dispatch error, got %v", err)
	}
	if len(pde.Failed) != 2 {
		t.Fatalf("expected both addresses reported, got %v", pde.Failed)
	}
}
