package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	signed, expiresAt, err := tokens.Issue("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	email, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestVerifyExpiredToken(t *testing.T) {
	tokens := NewTokenManager("test-secret", -time.Minute)

	signed, _, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", time.Hour)
	verifier := NewTokenManager("secret-two", time.Hour)

	signed, _, err := issuer.Issue("a@x.com")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	for _, tc := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tokens.Verify(tc)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tc)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	signed, _, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = tokens.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMissingEmailClaim(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	// Signed with the right secret but carrying no email claim.
	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
