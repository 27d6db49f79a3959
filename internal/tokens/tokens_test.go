package tokens

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func TestTokens_GenerateAndVerify(t *testing.T) {
	ctx := context.Background()
	j := New(WithSecretKey("test-secret"))

	for _, purpose := range []Purpose{PurposeConfirm, PurposeReset} {
		t.Run(string(purpose), func(t *testing.T) {
			token, err := j.Generate(ctx, purpose, 7, "")
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, ok := j.Verify(ctx, token, purpose, 7)
			assert.True(t, ok)
			require.NotNil(t, claims)
			assert.Equal(t, int64(7), claims.BrewerID)
		})
	}
}

func TestTokens_ExpiresAfterAnHour(t *testing.T) {
	ctx := context.Background()
	c := &clock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	j := New(WithSecretKey("test-secret"), WithClock(c.Now))

	token, err := j.Generate(ctx, PurposeConfirm, 7, "")
	require.NoError(t, err)

	c.now = c.now.Add(59 * time.Minute)
	_, ok := j.Verify(ctx, token, PurposeConfirm, 7)
	assert.True(t, ok)

	c.now = c.now.Add(2 * time.Minute)
	claims, ok := j.Verify(ctx, token, PurposeConfirm, 7)
	assert.False(t, ok)
	assert.Nil(t, claims)
}

func TestTokens_SubjectMismatch(t *testing.T) {
	ctx := context.Background()
	j := New(WithSecretKey("test-secret"))

	token, err := j.Generate(ctx, PurposeConfirm, 7, "")
	require.NoError(t, err)

	_, ok := j.Verify(ctx, token, PurposeConfirm, 8)
	assert.False(t, ok)
}

func TestTokens_PurposeMismatch(t *testing.T) {
	ctx := context.Background()
	j := New(WithSecretKey("test-secret"))

	token, err := j.Generate(ctx, PurposeConfirm, 7, "")
	require.NoError(t, err)

	_, ok := j.Verify(ctx, token, PurposeReset, 7)
	assert.False(t, ok)
}

func TestTokens_ChangeEmail(t *testing.T) {
	ctx := context.Background()
	j := New(WithSecretKey("test-secret"))

	token, err := j.Generate(ctx, PurposeChangeEmail, 7, "new@example.com")
	require.NoError(t, err)

	claims, ok := j.Verify(ctx, token, PurposeChangeEmail, 7)
	require.True(t, ok)
	assert.Equal(t, "new@example.com", claims.NewEmail)

	withoutEmail, err := j.Generate(ctx, PurposeChangeEmail, 7, "")
	require.NoError(t, err)
	_, ok = j.Verify(ctx, withoutEmail, PurposeChangeEmail, 7)
	assert.False(t, ok)
}

func TestTokens_InvalidSignature(t *testing.T) {
	ctx := context.Background()
	issuer := New(WithSecretKey("secret-a"))
	verifier := New(WithSecretKey("secret-b"))

	token, err := issuer.Generate(ctx, PurposeReset, 1, "")
	require.NoError(t, err)

	_, ok := verifier.Verify(ctx, token, PurposeReset, 1)
	assert.False(t, ok)

	_, ok = verifier.Verify(ctx, "invalid.token.string", PurposeReset, 1)
	assert.False(t, ok)
}

func TestTokens_EmptySecret(t *testing.T) {
	_, err := New().Generate(context.Background(), PurposeConfirm, 1, "")
	assert.Error(t, err)
}
