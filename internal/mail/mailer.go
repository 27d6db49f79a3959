// Package mail renders account emails and delivers them over SMTP without
// blocking the request that triggered them.
package mail

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"gopkg.in/gomail.v2"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template names.
const (
	TemplateConfirm       = "confirm"
	TemplateResetPassword = "reset_password"
	TemplateChangeEmail   = "change_email"
)

// ErrNotConfigured is returned when no SMTP server or sender is set.
var ErrNotConfigured = errors.New("mail: not configured")

// Config holds the SMTP settings.
type Config struct {
	Host          string
	Port          int
	Username      string
	Password      string
	SSL           bool
	Sender        string // From header, e.g. "teaflask Admin <admin@example.com>"
	SubjectPrefix string // Prepended to every subject
}

// Message is an email to render and send.
type Message struct {
	To       string
	Subject  string
	Template string
	Data     TemplateData
}

// TemplateData is available to every mail template.
type TemplateData struct {
	Name string // Greeting name of the recipient
	URL  string // Link carrying the token
}

// Sender delivers composed messages.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer composes messages from the embedded templates and sends them.
type Mailer struct {
	cfg    Config
	sender Sender
	text   *texttemplate.Template
	html   *htmltemplate.Template
}

// NewMailer creates a Mailer dialing the configured SMTP server.
func NewMailer(cfg Config) (*Mailer, error) {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.SSL
	return newMailer(cfg, d)
}

func newMailer(cfg Config, sender Sender) (*Mailer, error) {
	text, err := texttemplate.ParseFS(templateFS, "templates/*.txt.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	html, err := htmltemplate.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	return &Mailer{cfg: cfg, sender: sender, text: text, html: html}, nil
}

// Configured reports whether the Mailer can send at all.
func (m *Mailer) Configured() bool {
	return m.cfg.Host != "" && m.cfg.Sender != ""
}

// Compose renders msg into a multipart text/html email.
func (m *Mailer) Compose(msg Message) (*gomail.Message, error) {
	var text, html bytes.Buffer
	if err := m.text.ExecuteTemplate(&text, msg.Template+".txt.tmpl", msg.Data); err != nil {
		return nil, fmt.Errorf("render %s text: %w", msg.Template, err)
	}
	if err := m.html.ExecuteTemplate(&html, msg.Template+".html.tmpl", msg.Data); err != nil {
		return nil, fmt.Errorf("render %s html: %w", msg.Template, err)
	}

	subject := msg.Subject
	if m.cfg.SubjectPrefix != "" {
		subject = m.cfg.SubjectPrefix + " " + subject
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.cfg.Sender)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", subject)
	gm.SetBody("text/plain", text.String())
	gm.AddAlternative("text/html", html.String())
	return gm, nil
}

// Send composes and delivers msg synchronously.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if !m.Configured() {
		return ErrNotConfigured
	}
	gm, err := m.Compose(msg)
	if err != nil {
		return err
	}
	if err := m.sender.DialAndSend(gm); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
