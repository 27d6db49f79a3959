package services

//go:generate mockgen -source=account_mail.go -destination=account_mail_mock.go -package=services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/mail"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/tokens"
)

// MailDispatcher queues mail for background delivery.
type MailDispatcher interface {
	Dispatch(msg mail.Message) error
}

// AccountMailer sends the account mails carrying signed tokens. Sending
// never undoes the change that triggered it.
type AccountMailer struct {
	tokens     TokenIssuer
	dispatcher MailDispatcher
}

// NewAccountMailer creates a new AccountMailer.
func NewAccountMailer(tokens TokenIssuer, dispatcher MailDispatcher) *AccountMailer {
	return &AccountMailer{tokens: tokens, dispatcher: dispatcher}
}

func (m *AccountMailer) send(ctx context.Context, b *models.Brewer, to, subject, template string, purpose tokens.Purpose, newEmail, link string) error {
	token, err := m.tokens.Generate(ctx, purpose, b.ID, newEmail)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "brewer_id", b.ID, "purpose", purpose, "error", err)
		return err
	}

	msg := mail.Message{
		To:       to,
		Subject:  subject,
		Template: template,
		Data: mail.TemplateData{
			Name: b.Username,
			URL:  strings.TrimRight(link, "/") + "/" + token,
		},
	}
	if err := m.dispatcher.Dispatch(msg); err != nil {
		logger.Log.Errorw("failed to dispatch email", "brewer_id", b.ID, "template", template, "error", err)
		return err
	}
	return nil
}

// SendConfirmation mails a confirmation link. link is the absolute URL the
// token is appended to.
func (m *AccountMailer) SendConfirmation(ctx context.Context, b *models.Brewer, link string) error {
	return m.send(ctx, b, b.Email, "Confirm Your Account", mail.TemplateConfirm, tokens.PurposeConfirm, "", link)
}

// SendPasswordReset mails a password reset link.
func (m *AccountMailer) SendPasswordReset(ctx context.Context, b *models.Brewer, link string) error {
	return m.send(ctx, b, b.Email, "Reset Your Password", mail.TemplateResetPassword, tokens.PurposeReset, "", link)
}

// SendEmailChange mails a link confirming newEmail to newEmail itself.
func (m *AccountMailer) SendEmailChange(ctx context.Context, b *models.Brewer, newEmail, link string) error {
	return m.send(ctx, b, newEmail, "Confirm your email address", mail.TemplateChangeEmail, tokens.PurposeChangeEmail, newEmail, link)
}
