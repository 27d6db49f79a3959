// Package session keeps the HTML surface's login state and flash messages
// in a signed cookie.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the name of the session cookie.
const CookieName = "teaflask_session"

// audience marks a token as a session cookie. Account tokens signed with
// the same key carry none and are refused.
const audience = "teaflask:session"

// Flash categories.
const (
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

// Session is the decoded cookie state of one request.
type Session struct {
	BrewerID int64
	Remember bool
	Flashes  []Flash
}

// LoggedIn reports whether a brewer is logged in.
func (s *Session) LoggedIn() bool {
	return s.BrewerID != 0
}

// Login records brewerID as logged in.
func (s *Session) Login(brewerID int64, remember bool) {
	s.BrewerID = brewerID
	s.Remember = remember
}

// Logout forgets the logged in brewer and keeps pending flashes.
func (s *Session) Logout() {
	s.BrewerID = 0
	s.Remember = false
}

// AddFlash queues a message for the next rendered page.
func (s *Session) AddFlash(category, message string) {
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: message})
}

// PopFlashes returns and clears the queued messages.
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

func (s *Session) empty() bool {
	return s.BrewerID == 0 && len(s.Flashes) == 0
}

type claims struct {
	jwt.RegisteredClaims
	BrewerID int64   `json:"brewer_id,omitempty"`
	Remember bool    `json:"remember,omitempty"`
	Flashes  []Flash `json:"flashes,omitempty"`
}

// Manager signs and verifies session cookies.
type Manager struct {
	secretKey   []byte
	secure      bool
	rememberFor time.Duration
	now         func() time.Time
}

// NewManager creates a Manager. secure marks the cookie HTTPS-only.
func NewManager(secretKey string, secure bool) *Manager {
	return &Manager{
		secretKey:   []byte(secretKey),
		secure:      secure,
		rememberFor: 365 * 24 * time.Hour,
		now:         time.Now,
	}
}

// Load decodes the session cookie of r. A missing, tampered or expired
// cookie yields an empty session.
func (m *Manager) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return &Session{}
	}

	c := &claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired(), jwt.WithAudience(audience))
	if err != nil || !token.Valid {
		return &Session{}
	}

	return &Session{BrewerID: c.BrewerID, Remember: c.Remember, Flashes: c.Flashes}
}

// Save writes s to the response. An empty session deletes the cookie.
func (m *Manager) Save(w http.ResponseWriter, s *Session) error {
	cookie := &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}

	if s.empty() {
		cookie.MaxAge = -1
		http.SetCookie(w, cookie)
		return nil
	}

	now := m.now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.rememberFor)),
		},
		BrewerID: s.BrewerID,
		Remember: s.Remember,
		Flashes:  s.Flashes,
	}
	value, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secretKey)
	if err != nil {
		return err
	}

	cookie.Value = value
	if s.Remember {
		cookie.Expires = now.Add(m.rememberFor)
		cookie.MaxAge = int(m.rememberFor.Seconds())
	}
	http.SetCookie(w, cookie)
	return nil
}

type contextKey struct{}

var sessionKey = contextKey{}

// WithSession stores s in the context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext returns the request session. Without one, a detached empty
// session is returned so callers never need a nil check.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionKey).(*Session); ok && s != nil {
		return s
	}
	return &Session{}
}
