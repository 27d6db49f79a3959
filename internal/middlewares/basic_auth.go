package middlewares

//go:generate mockgen -source=basic_auth.go -destination=basic_auth_mock.go -package=middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/principal"
	"github.com/sbilibin2017/teaflask/internal/services"
)

// BasicAuthenticator resolves Basic credentials to a brewer.
type BasicAuthenticator interface {
	AuthenticateBasic(ctx context.Context, identifier, password string) (*models.Brewer, error)
}

// BasicAuthMiddleware requires HTTP Basic credentials on every request and
// attaches the authenticated brewer as the request principal.
func BasicAuthMiddleware(auth BasicAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			identifier, password, ok := r.BasicAuth()
			if !ok || identifier == "" {
				logger.Log.Errorw("authorization failed", "err", "no basic credentials")
				writeError(w, http.StatusForbidden, "Use Basic HTTP Auth")
				return
			}

			b, err := auth.AuthenticateBasic(ctx, identifier, password)
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				writeError(w, http.StatusForbidden, "Invalid username")
				return
			case errors.Is(err, services.ErrInvalidCredentials):
				w.Header().Set("WWW-Authenticate", `Basic realm="teaflask"`)
				writeError(w, http.StatusUnauthorized, "Invalid Credentials")
				return
			case err != nil:
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx = principal.WithPrincipal(ctx, principal.NewAuthenticated(b))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
