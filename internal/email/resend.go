// Package email sends meeting invitations through the Resend API.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Abinash-k/Freelance-Portal/internal/model"
)

// Message is a single transactional email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers one message. Satisfied by *Client; tests substitute fakes.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Client talks to the Resend REST API.
type Client struct {
	http *resty.Client
	from string
}

// NewClient creates a Resend client. The API key is required.
func NewClient(baseURL, apiKey, from string) (*Client, error) {
	if apiKey == "" {
		return nil, &model.ConfigurationError{Name: "resend API key"}
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(apiKey).
		SetTimeout(30 * time.Second)
	return &Client{http: c, from: from}, nil
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Send delivers a single email. Non-2xx responses and transport failures are
// both surfaced as ExternalServiceError.
func (c *Client) Send(ctx context.Context, msg Message) error {
	body := sendRequest{From: c.from, To: msg.To, Subject: msg.Subject, HTML: msg.HTML}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&body).
		Post("/emails")
	if err != nil {
		return &model.ExternalServiceError{Service: "resend", Err: err}
	}
	if resp.IsError() {
		return &model.ExternalServiceError{Service: "resend", StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}

// invitationHTML renders the invite body: long-form date, duration, the
// optional description, and the join link.
func invitationHTML(inv Invitation) string {
	formatted := inv.Date.UTC().Format("Monday, January 2, 2006 at 3:04 PM MST")
	html := fmt.Sprintf("<h2>You've been invited to: %s</h2>", inv.Title)
	html += fmt.Sprintf("<p><strong>Date:</strong> %s</p>", formatted)
	html += fmt.Sprintf("<p><strong>Duration:</strong> %d minutes</p>", inv.Duration)
	if inv.Description != "" {
		html += fmt.Sprintf("<p><strong>Description:</strong> %s</p>", inv.Description)
	}
	html += fmt.Sprintf(`<p><strong>Join Link:</strong> <a href="%s">%s</a></p>`, inv.JoinURL, inv.JoinURL)
	return html
}
