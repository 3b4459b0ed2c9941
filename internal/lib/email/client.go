// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and renders HTML
// bodies from templates embedded in the binary.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"

	"github.com/deppfellow/fitness-center/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

// ErrDisabled is returned by SendEmail when no Resend API key is configured.
var ErrDisabled = errors.New("email delivery disabled: no resend api key configured")

var (
	parseOnce sync.Once
	templates *template.Template
	parseErr  error
)

// Client wraps the Resend emails service.
type Client struct {
	emails resend.EmailsSvc
	from   string
	logger *zerolog.Logger
}

// NewClient creates an email Client from the integration config.
//
// Without an API key the client is created disabled.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	if cfg.Integration.ResendAPIKey == "" {
		logger.Warn().Msg("resend api key not configured, welcome emails will be skipped")
		return &Client{from: cfg.Integration.EmailFrom, logger: logger}
	}

	return NewClientWithService(resend.NewClient(cfg.Integration.ResendAPIKey).Emails, cfg.Integration.EmailFrom, logger)
}

// NewClientWithService builds a Client on an existing Resend emails service.
func NewClientWithService(emails resend.EmailsSvc, from string, logger *zerolog.Logger) *Client {
	return &Client{emails: emails, from: from, logger: logger}
}

// Enabled reports whether emails are actually delivered.
func (c *Client) Enabled() bool {
	return c != nil && c.emails != nil
}

// Render executes the named template with data.
func Render(templateName Template, data map[string]string) (string, error) {
	parseOnce.Do(func() {
		templates, parseErr = template.ParseFS(templateFS, "templates/*.html")
	})
	if parseErr != nil {
		return "", errors.Wrap(parseErr, "failed to parse email templates")
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, templateName.File(), data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}

	return body.String(), nil
}

// SendEmail renders templateName with data and sends it to a single recipient.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	html, err := Render(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := c.emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Debug().
		Str("email_id", sent.Id).
		Str("template", string(templateName)).
		Msg("email accepted by provider")

	return nil
}
