package middlewares

import (
	"net/http"
	"net/url"

	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/principal"
	"github.com/sbilibin2017/teaflask/internal/session"
)

// ForbiddenJSON answers 403 with the API error body.
var ForbiddenJSON http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusForbidden, "Insufficient permissions")
})

// RequirePermission lets the request through only when the principal holds
// every bit of required; denied answers otherwise.
func RequirePermission(required models.Permission, denied http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := principal.FromContext(r.Context())
			if !p.Can(required) {
				logger.Log.Warnw("permission denied", "required", required, "path", r.URL.Path)
				denied.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireLogin redirects anonymous visitors to loginPath, remembering
// where they were going in the next parameter.
func RequireLogin(loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !principal.FromContext(r.Context()).IsAuthenticated() {
				session.FromContext(r.Context()).AddFlash(session.FlashInfo, "Please log in to access this page.")
				target := loginPath + "?next=" + url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, target, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
