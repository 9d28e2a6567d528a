package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abinash-k/Freelance-Portal/internal/model"
)

func TestNewClient_MissingKey(t *testing.T) {
	if _, err := NewClient("http://localhost", "", "x <x@x.com>"); !model.IsConfigurationError(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestClientSend(t *testing.T) {
	var got sendRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"id":"email_1"}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "re_test", "Meetings <onboarding@resend.dev>")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	err = c.Send(context.Background(), Message{To: "a@x.com", Subject: "hi", HTML: "<p>hi</p>"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if auth != "Bearer re_test" {
		t.Fatalf("unexpected Authorization header: %q", auth)
	}
	if got.From != "Meetings <onboarding@resend.dev>" || got.To != "a@x.com" || got.Subject != "hi" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestClientSend_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Invalid to address"}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "re_test", "x <x@x.com>")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	err = c.Send(context.Background(), Message{To: "nope", Subject: "s", HTML: "h"})
	if !model.IsExternalServiceError(err) {
		t.Fatalf("expected external service error, got %v", err)
	}
}

func TestInvitationHTML(t *testing.T) {
	inv := Invitation{
		Title:       "Kickoff",
		Description: "Project kickoff call",
		Date:        time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC),
		Duration:    30,
		JoinURL:     "https://zoom.us/j/123",
	}
	html := invitationHTML(inv)
	for _, want := range []string{
		"Kickoff",
		"Saturday, March 1, 2025 at 3:00 PM UTC",
		"30 minutes",
		"Project kickoff call",
		`href="https://zoom.us/j/123"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("invite html missing %q:\n%s", want, html)
		}
	}
}

func TestInvitationHTML_NoDescription(t *testing.T) {
	inv := Invitation{Title: "T", Date: time.Now(), Duration: 15, JoinURL: "u"}
	if strings.Contains(invitationHTML(inv), "Description") {
		t.Error("empty description should be omitted from the invite body")
	}
}
