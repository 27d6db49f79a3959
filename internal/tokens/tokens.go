// Package tokens issues and verifies the signed, time-limited tokens mailed
// to brewers for account confirmation, password reset and email change.
package tokens

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Purpose names what a token may be used for.
type Purpose string

// Token purposes.
const (
	PurposeConfirm     Purpose = "confirm"
	PurposeReset       Purpose = "reset"
	PurposeChangeEmail Purpose = "change_email"
)

// DefaultExpiration is the lifetime of a token.
const DefaultExpiration = time.Hour

// Claims is the signed payload of a token.
type Claims struct {
	jwt.RegisteredClaims
	Purpose  Purpose `json:"purpose"`
	BrewerID int64   `json:"brewer_id"`
	NewEmail string  `json:"new_email,omitempty"`
}

// Tokens signs and verifies tokens with an HMAC secret.
type Tokens struct {
	secretKey []byte
	exp       time.Duration
	now       func() time.Time
}

// Option configures Tokens.
type Option func(*Tokens)

// WithSecretKey sets the signing secret.
func WithSecretKey(key string) Option {
	return func(t *Tokens) { t.secretKey = []byte(key) }
}

// WithExpiration sets the token lifetime.
func WithExpiration(d time.Duration) Option {
	return func(t *Tokens) { t.exp = d }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tokens) { t.now = now }
}

// New creates a Tokens instance.
func New(opts ...Option) *Tokens {
	t := &Tokens{
		exp: DefaultExpiration,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Generate signs a token of the given purpose for brewerID. newEmail is
// only carried by email change tokens.
func (t *Tokens) Generate(ctx context.Context, purpose Purpose, brewerID int64, newEmail string) (string, error) {
	if len(t.secretKey) == 0 {
		return "", errors.New("tokens: empty secret key")
	}

	now := t.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(brewerID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.exp)),
		},
		Purpose:  purpose,
		BrewerID: brewerID,
		NewEmail: newEmail,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secretKey)
}

// Verify checks that token is well signed, unexpired, of the given purpose
// and issued for brewerID. It reports failure without saying why.
func (t *Tokens) Verify(ctx context.Context, token string, purpose Purpose, brewerID int64) (*Claims, bool) {
	claims, err := t.parse(token)
	if err != nil {
		return nil, false
	}
	if claims.Purpose != purpose || claims.BrewerID != brewerID {
		return nil, false
	}
	if purpose == PurposeChangeEmail && claims.NewEmail == "" {
		return nil, false
	}
	return claims, true
}

func (t *Tokens) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secretKey, nil
	},
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
