// Package principal models who is making a request: an anonymous visitor
// or an authenticated brewer.
package principal

import (
	"context"

	"github.com/sbilibin2017/teaflask/internal/models"
)

// Principal is the identity attached to every request.
type Principal interface {
	Can(required models.Permission) bool
	IsAuthenticated() bool
	IsAdministrator() bool
	// Brewer returns the authenticated brewer, or nil for anonymous.
	Brewer() *models.Brewer
}

// Anonymous is a visitor without credentials. It holds no permission.
type Anonymous struct{}

func (Anonymous) Can(models.Permission) bool { return false }
func (Anonymous) IsAuthenticated() bool      { return false }
func (Anonymous) IsAdministrator() bool      { return false }
func (Anonymous) Brewer() *models.Brewer     { return nil }

// Authenticated is a brewer whose credentials were verified.
type Authenticated struct {
	brewer *models.Brewer
}

// NewAuthenticated wraps b. A nil brewer yields Anonymous.
func NewAuthenticated(b *models.Brewer) Principal {
	if b == nil {
		return Anonymous{}
	}
	return Authenticated{brewer: b}
}

func (a Authenticated) Can(required models.Permission) bool { return a.brewer.Can(required) }
func (a Authenticated) IsAuthenticated() bool               { return true }
func (a Authenticated) IsAdministrator() bool               { return a.brewer.IsAdministrator() }
func (a Authenticated) Brewer() *models.Brewer              { return a.brewer }

type contextKey struct{}

var principalKey = contextKey{}

// WithPrincipal stores p in the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext returns the request principal, Anonymous when none was set.
func FromContext(ctx context.Context) Principal {
	if p, ok := ctx.Value(principalKey).(Principal); ok && p != nil {
		return p
	}
	return Anonymous{}
}
