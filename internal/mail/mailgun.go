// Package mail sends transactional email through the Mailgun HTTP API.
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL = "https://api.mailgun.net/v3"

	verifySubject  = "Verify Your Email"
	verifyTemplate = "verify-email"
)

var ErrNotConfigured = errors.New("mailgun domain is not configured")

type Config struct {
	APIKey  string
	Domain  string
	From    string
	BaseURL string
	Timeout time.Duration
}

// Mailgun posts template messages to /<domain>/messages.
type Mailgun struct {
	domain string
	from   string
	http   *resty.Client
}

func NewMailgun(cfg Config) (*Mailgun, error) {
	if cfg.Domain == "" {
		return nil, ErrNotConfigured
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	from := cfg.From
	if from == "" {
		from = "Eats <mailgun@" + cfg.Domain + ">"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth("api", cfg.APIKey).
		SetTimeout(timeout)

	return &Mailgun{domain: cfg.Domain, from: from, http: client}, nil
}

// Send delivers a stored Mailgun template to one recipient. vars become the
// template's v:<key> variables.
func (m *Mailgun) Send(ctx context.Context, to, subject, template string, vars map[string]string) error {
	form := map[string]string{
		"from":     m.from,
		"to":       to,
		"subject":  subject,
		"template": template,
	}
	for k, v := range vars {
		form["v:"+k] = v
	}

	resp, err := m.http.R().
		SetContext(ctx).
		SetFormData(form).
		Post("/" + m.domain + "/messages")
	if err != nil {
		return fmt.Errorf("mailgun request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("mailgun non-2xx (%d): %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func (m *Mailgun) SendVerificationEmail(ctx context.Context, email, code string) error {
	return m.Send(ctx, email, verifySubject, verifyTemplate, map[string]string{
		"code":     code,
		"username": email,
	})
}

// Noop drops every message. It stands in when no API key is configured.
type Noop struct {
	log zerolog.Logger
}

func NewNoop(log zerolog.Logger) Noop {
	return Noop{log: log.With().Str("component", "mail").Logger()}
}

func (n Noop) SendVerificationEmail(_ context.Context, email, _ string) error {
	n.log.Debug().Str("to", email).Msg("mail disabled, verification email dropped")
	return nil
}
