package middlewares

//go:generate mockgen -source=session.go -destination=session_mock.go -package=middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/principal"
	"github.com/sbilibin2017/teaflask/internal/services"
	"github.com/sbilibin2017/teaflask/internal/session"
)

// UnconfirmedMessage is flashed to brewers who have not confirmed their email.
const UnconfirmedMessage = "You have not confirmed your account yet. Check your inbox or request a new confirmation email."

// SessionStore loads and saves the session cookie.
type SessionStore interface {
	Load(r *http.Request) *session.Session
	Save(w http.ResponseWriter, s *session.Session) error
}

// SessionBrewers resolves the brewer of a session and records activity.
type SessionBrewers interface {
	Brewer(ctx context.Context, id int64) (*models.Brewer, error)
	Ping(ctx context.Context, b *models.Brewer) error
}

// SessionMiddleware resolves the session cookie to a principal. The
// session is written back right before the response status is sent.
func SessionMiddleware(store SessionStore, brewers SessionBrewers) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			_, cookieErr := r.Cookie(session.CookieName)
			hadCookie := cookieErr == nil

			s := store.Load(r)
			p := principal.Principal(principal.Anonymous{})

			if s.LoggedIn() {
				b, err := brewers.Brewer(ctx, s.BrewerID)
				switch {
				case errors.Is(err, services.ErrNotFound):
					s.Logout()
				case err != nil:
					logger.Log.Errorw("failed to load session brewer", "brewer_id", s.BrewerID, "err", err)
				default:
					if err := brewers.Ping(ctx, b); err != nil {
						logger.Log.Warnw("failed to ping brewer", "brewer_id", b.ID, "err", err)
					}
					if !b.Confirmed && r.Method == http.MethodGet && !strings.HasPrefix(r.URL.Path, "/auth/") {
						flashOnce(s, session.FlashWarning, UnconfirmedMessage)
					}
					p = principal.NewAuthenticated(b)
				}
			}

			rw := newResponseWriter(w)
			rw.beforeHeader = func(status int) int {
				if !hadCookie && !s.LoggedIn() && len(s.Flashes) == 0 {
					return status
				}
				if err := store.Save(w, s); err != nil {
					logger.Log.Errorw("failed to save session", "err", err)
				}
				return status
			}

			ctx = session.WithSession(ctx, s)
			ctx = principal.WithPrincipal(ctx, p)
			next.ServeHTTP(rw, r.WithContext(ctx))

			if !rw.wroteHeader {
				rw.WriteHeader(http.StatusOK)
			}
		})
	}
}

func flashOnce(s *session.Session, category, message string) {
	for _, f := range s.Flashes {
		if f.Message == message {
			return
		}
	}
	s.AddFlash(category, message)
}
