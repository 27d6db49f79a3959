package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/principal"
	"github.com/sbilibin2017/teaflask/internal/services"
	"github.com/sbilibin2017/teaflask/internal/session"
	"github.com/sbilibin2017/teaflask/internal/web"
)

//go:generate mockgen -source=auth_pages.go -destination=auth_pages_mock.go -package=handlers

// Accounts defines the account operations behind the auth pages.
type Accounts interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.Brewer, error)
	Login(ctx context.Context, in models.LoginInput) (*models.Brewer, error)
	ChangePassword(ctx context.Context, b *models.Brewer, in models.ChangePasswordInput) error
	Confirm(ctx context.Context, b *models.Brewer, token string) error
	RequestPasswordReset(ctx context.Context, in models.ResetRequestInput) (*models.Brewer, error)
	ResetPassword(ctx context.Context, token string, in models.ResetInput) error
	RequestEmailChange(ctx context.Context, b *models.Brewer, in models.ChangeEmailInput) (string, error)
	ChangeEmail(ctx context.Context, b *models.Brewer, token string) error
}

// AccountMails sends the token mails of the auth pages.
type AccountMails interface {
	SendConfirmation(ctx context.Context, b *models.Brewer, link string) error
	SendPasswordReset(ctx context.Context, b *models.Brewer, link string) error
	SendEmailChange(ctx context.Context, b *models.Brewer, newEmail, link string) error
}

const msgMailFailed = "The email could not be sent. Please try again later."

// mailSent flashes msg when err is nil and a warning otherwise. The
// account change behind the mail stands either way.
func mailSent(s *session.Session, err error, msg string) {
	if err != nil {
		logger.Log.Errorw("failed to dispatch mail", "err", err)
		s.AddFlash(session.FlashWarning, msgMailFailed)
		return
	}
	s.AddFlash(session.FlashInfo, msg)
}

// NewLoginPageHandler logs a brewer in by email and password.
func NewLoginPageHandler(accounts Accounts, view View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		next := r.URL.Query().Get("next")
		page := web.Page{Title: "Login", Form: models.LoginInput{}, Data: map[string]any{"next": next}}

		if r.Method != http.MethodPost {
			view.Render(w, r, http.StatusOK, "auth/login", page)
			return
		}

		in := models.LoginInput{
			Email:      r.PostFormValue("email"),
			Password:   r.PostFormValue("password"),
			RememberMe: formBool(r, "remember_me"),
		}
		page.Form = models.LoginInput{Email: in.Email, RememberMe: in.RememberMe}

		b, err := accounts.Login(ctx, in)
		if err != nil {
			if fields, ok := formErrors(err); ok {
				page.Errors = fields
				view.Render(w, r, http.StatusBadRequest, "auth/login", page)
				return
			}
			if errors.Is(err, services.ErrInvalidCredentials) {
				session.FromContext(ctx).AddFlash(session.FlashDanger, "Invalid username or password.")
				view.Render(w, r, http.StatusUnauthorized, "auth/login", page)
				return
			}
			pageError(view, w, r, err)
			return
		}

		session.FromContext(ctx).Login(b.ID, in.RememberMe)
		redirect(w, r, safeNext(next))
	}
}

// NewLogoutPageHandler forgets the logged in brewer.
func NewLogoutPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := session.FromContext(r.Context())
		s.Logout()
		s.AddFlash(session.FlashWarning, "You have been logged out.")
		redirect(w, r, "/")
	}
}

// NewRegisterPageHandler creates an account and mails its confirmation
// link. Mailed links point at baseURL.
func NewRegisterPageHandler(accounts Accounts, mails AccountMails, view View, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		page := web.Page{Title: "Register", Form: models.RegisterInput{}}

		if r.Method != http.MethodPost {
			view.Render(w, r, http.StatusOK, "auth/register", page)
			return
		}

		in := models.RegisterInput{
			Email:     r.PostFormValue("email"),
			Username:  r.PostFormValue("username"),
			Password:  r.PostFormValue("password"),
			Password2: r.PostFormValue("password2"),
		}

		b, err := accounts.Register(ctx, in)
		if err != nil {
			fields, ok := formErrors(err)
			if !ok {
				pageError(view, w, r, err)
				return
			}
			page.Form = models.RegisterInput{Email: in.Email, Username: in.Username}
			page.Errors = fields
			view.Render(w, r, http.StatusBadRequest, "auth/register", page)
			return
		}

		err = mails.SendConfirmation(ctx, b, mailLink(baseURL, "/auth/confirm"))
		mailSent(session.FromContext(ctx), err, "A confirmation email has been sent to you by email.")
		redirect(w, r, "/auth/login")
	}
}

// NewConfirmPageHandler confirms the logged in brewer with a mailed token.
func NewConfirmPageHandler(accounts Accounts, view View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		b := principal.FromContext(ctx).Brewer()
		if b == nil {
			redirect(w, r, "/auth/login")
			return
		}
		if b.Confirmed {
			redirect(w, r, "/")
			return
		}

		s := session.FromContext(ctx)
		err := accounts.Confirm(ctx, b, chi.URLParam(r, "token"))
		switch {
		case errors.Is(err, services.ErrInvalidToken):
			s.AddFlash(session.FlashDanger, "The confirmation link is invalid or has expired.")
		case err != nil:
			pageError(view, w, r, err)
			return
		default:
			s.AddFlash(session.FlashInfo, "You have confirmed your account. Thanks!")
		}
		redirect(w, r, "/")
	}
}

// NewResendConfirmationPageHandler mails a fresh confirmation link.
func NewResendConfirmationPageHandler(mails AccountMails, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		b := principal.FromContext(ctx).Brewer()
		if b == nil {
			redirect(w, r, "/auth/login")
			return
		}

		err := mails.SendConfirmation(ctx, b, mailLink(baseURL, "/auth/confirm"))
		mailSent(session.FromContext(ctx), err, "A new confirmation email has been sent to you by email.")
		redirect(w, r, "/")
	}
}

// NewChangePasswordPageHandler changes the password of the logged in
// brewer.
func NewChangePasswordPageHandler(accounts Accounts, view View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		page := web.Page{Title: "Change Your Password", Form: models.ChangePasswordInput{}}

		if r.Method != http.MethodPost {
			view.Render(w, r, http.StatusOK, "auth/change_password", page)
			return
		}

		b := principal.FromContext(ctx).Brewer()
		if b == nil {
			redirect(w, r, "/auth/login")
			return
		}

		in := models.ChangePasswordInput{
			OldPassword: r.PostFormValue("old_password"),
			Password:    r.PostFormValue("password"),
			Password2:   r.PostFormValue("password2"),
		}

		s := session.FromContext(ctx)
		err := accounts.ChangePassword(ctx, b, in)
		if err == nil {
			s.AddFlash(session.FlashInfo, "Your password has been updated.")
			redirect(w, r, "/")
			return
		}
		if fields, ok := formErrors(err); ok {
			page.Errors = fields
		} else if errors.Is(err, services.ErrInvalidCredentials) {
			s.AddFlash(session.FlashDanger, "Invalid password.")
		} else {
			pageError(view, w, r, err)
			return
		}
		view.Render(w, r, http.StatusBadRequest, "auth/change_password", page)
	}
}

// NewResetRequestPageHandler mails a password reset link. Whether the
// address is registered is not revealed.
func NewResetRequestPageHandler(accounts Accounts, mails AccountMails, view View, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if principal.FromContext(ctx).IsAuthenticated() {
			redirect(w, r, "/")
			return
		}

		page := web.Page{Title: "Reset Your Password", Form: models.ResetRequestInput{}}
		if r.Method != http.MethodPost {
			view.Render(w, r, http.StatusOK, "auth/reset_request", page)
			return
		}

		in := models.ResetRequestInput{Email: r.PostFormValue("email")}
		b, err := accounts.RequestPasswordReset(ctx, in)
		if err != nil {
			fields, ok := formErrors(err)
			if !ok {
				pageError(view, w, r, err)
				return
			}
			page.Form = in
			page.Errors = fields
			view.Render(w, r, http.StatusBadRequest, "auth/reset_request", page)
			return
		}

		const msg = "An email with instructions to reset your password has been sent to you."
		s := session.FromContext(ctx)
		if b != nil {
			err = mails.SendPasswordReset(ctx, b, mailLink(baseURL, "/auth/reset"))
			mailSent(s, err, msg)
		} else {
			s.AddFlash(session.FlashInfo, msg)
		}
		redirect(w, r, "/auth/login")
	}
}

// NewResetPageHandler sets a new password with a mailed reset token.
func NewResetPageHandler(accounts Accounts, view View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if principal.FromContext(ctx).IsAuthenticated() {
			redirect(w, r, "/")
			return
		}

		token := chi.URLParam(r, "token")
		page := web.Page{
			Title: "Reset Your Password",
			Form:  models.ResetInput{},
			Data:  map[string]any{"token": token},
		}
		if r.Method != http.MethodPost {
			view.Render(w, r, http.StatusOK, "auth/reset", page)
			return
		}

		in := models.ResetInput{
			Email:     r.PostFormValue("email"),
			Password:  r.PostFormValue("password"),
			Password2: r.PostFormValue("password2"),
		}

		s := session.FromContext(ctx)
		err := accounts.ResetPassword(ctx, token, in)
		switch {
		case err == nil:
			s.AddFlash(session.FlashInfo, "Your password has been updated.")
			redirect(w, r, "/auth/login")
		case errors.Is(err, services.ErrUserDoesNotExist):
			redirect(w, r, "/")
		case errors.Is(err, services.ErrInvalidToken):
			s.AddFlash(session.FlashDanger, "You do not have permission to change this password.")
			redirect(w, r, "/")
		default:
			fields, ok := formErrors(err)
			if !ok {
				pageError(view, w, r, err)
				return
			}
			page.Form = models.ResetInput{Email: in.Email}
			page.Errors = fields
			view.Render(w, r, http.StatusBadRequest, "auth/reset", page)
		}
	}
}

// NewChangeEmailRequestPageHandler mails a confirmation link to the new
// address of the logged in brewer.
func NewChangeEmailRequestPageHandler(accounts Accounts, mails AccountMails, view View, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		page := web.Page{Title: "Change Email Address", Form: models.ChangeEmailInput{}}

		if r.Method != http.MethodPost {
			view.Render(w, r, http.StatusOK, "auth/change_email", page)
			return
		}

		b := principal.FromContext(ctx).Brewer()
		if b == nil {
			redirect(w, r, "/auth/login")
			return
		}

		in := models.ChangeEmailInput{
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
		}
		page.Form = models.ChangeEmailInput{Email: in.Email}

		s := session.FromContext(ctx)
		newEmail, err := accounts.RequestEmailChange(ctx, b, in)
		if err == nil {
			err = mails.SendEmailChange(ctx, b, newEmail, mailLink(baseURL, "/auth/change-email"))
			mailSent(s, err, "An email with instructions to confirm your new email address has been sent to you.")
			redirect(w, r, "/")
			return
		}
		if fields, ok := formErrors(err); ok {
			page.Errors = fields
		} else if errors.Is(err, services.ErrInvalidCredentials) {
			s.AddFlash(session.FlashDanger, "Invalid email or password.")
		} else {
			pageError(view, w, r, err)
			return
		}
		view.Render(w, r, http.StatusBadRequest, "auth/change_email", page)
	}
}

// NewChangeEmailPageHandler applies a mailed email change token.
func NewChangeEmailPageHandler(accounts Accounts, view View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		b := principal.FromContext(ctx).Brewer()
		if b == nil {
			redirect(w, r, "/auth/login")
			return
		}

		s := session.FromContext(ctx)
		err := accounts.ChangeEmail(ctx, b, chi.URLParam(r, "token"))
		switch {
		case errors.Is(err, services.ErrInvalidToken):
			s.AddFlash(session.FlashDanger, "Invalid request.")
		case err != nil:
			pageError(view, w, r, err)
			return
		default:
			s.AddFlash(session.FlashInfo, "Your email address has been updated.")
		}
		redirect(w, r, "/")
	}
}
