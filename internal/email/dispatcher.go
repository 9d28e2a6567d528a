package email

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Abinash-k/Freelance-Portal/internal/model"
)

// Invitation carries everything an attendee needs to join a meeting.
type Invitation struct {
	Attendees   []string
	Title       string
	Description string
	Date        time.Time
	Duration    int
	JoinURL     string
}

// Dispatcher fans invitation emails out to every attendee.
type Dispatcher struct {
	sender Sender
	log    zerolog.Logger
}

func NewDispatcher(sender Sender, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, log: log}
}

// Dispatch sends one invite per attendee. Sends run concurrently and every
// attendee is attempted exactly once; a failure for one address never blocks
// the others. If any sends fail, the failed addresses are aggregated into a
// PartialDispatchError, preserving attendee order.
func (d *Dispatcher) Dispatch(ctx context.Context, inv Invitation) error {
	if len(inv.Attendees) == 0 {
		return nil
	}

	html := invitationHTML(inv)
	subject := "Meeting Invitation: " + inv.Title

	errs := make([]error, len(inv.Attendees))
	var wg sync.WaitGroup
	for i, attendee := range inv.Attendees {
		wg.Add(1)
		go func(i int, to string) {
			defer wg.Done()
			if err := d.sender.Send(ctx, Message{To: to, Subject: subject, HTML: html}); err != nil {
				d.log.Error().Err(err).Str("attendee", to).Msg("failed to send meeting invite")
				errs[i] = err
			}
		}(i, attendee)
	}
	wg.Wait()

	var failed []string
	for i, err := range errs {
		if err != nil {
			failed = append(failed, inv.Attendees[i])
		}
	}
	if len(failed) > 0 {
		return &model.PartialDispatchError{Failed: failed}
	}
	d.log.Info().Int("attendees", len(inv.Attendees)).Msg("meeting invites sent")
	return nil
}
