package token

import (
	"testing"
	"time"

	"social-platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	t.Parallel()

	svc := NewService(config.JWTConfig{Secret: "super-secret", Issuer: "test"})

	tok, err := svc.Generate(42, true)
	require.NoError(t, err)

	claims, err := svc.Validate(tok)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
	assert.True(t, claims.Admin)
}

func TestZeroLifetimeOmitsExpiry(t *testing.T) {
	t.Parallel()

	svc := NewService(config.JWTConfig{Secret: "s", Issuer: "test", ExpireTime: 0})

	tok, err := svc.Generate(1, false)
	require.NoError(t, err)

	claims, err := svc.Validate(tok)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt, "configured zero lifetime must not set an exp claim")
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	svc := NewService(config.JWTConfig{Secret: "s", Issuer: "test", ExpireTime: -time.Minute})

	tok, err := svc.Generate(1, false)
	require.NoError(t, err)

	_, err = svc.Validate(tok)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	t.Parallel()

	issuer := NewService(config.JWTConfig{Secret: "right", Issuer: "test"})
	verifier := NewService(config.JWTConfig{Secret: "wrong", Issuer: "test"})

	tok, err := issuer.Generate(1, false)
	require.NoError(t, err)

	_, err = verifier.Validate(tok)
	assert.Error(t, err)
}

func TestWrongIssuerRejected(t *testing.T) {
	t.Parallel()

	issuer := NewService(config.JWTConfig{Secret: "s", Issuer: "a"})
	verifier := NewService(config.JWTConfig{Secret: "s", Issuer: "b"})

	tok, err := issuer.Generate(1, false)
	require.NoError(t, err)

	_, err = verifier.Validate(tok)
	assert.Error(t, err)
}

func TestMalformedTokenRejected(t *testing.T) {
	t.Parallel()

	svc := NewService(config.JWTConfig{Secret: "s", Issuer: "test"})

	_, err := svc.Validate("not.a.jwt")
	assert.Error(t, err)

	_, err = svc.Validate("")
	assert.Error(t, err)
}
