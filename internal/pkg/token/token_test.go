package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestSignVerifyRoundTrip(t *testing.T) {
	userID := uuid.New()
	signed, err := Sign(userID, secret)
	require.NoError(t, err)

	got, err := Verify(signed, secret)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifyWrongSecret(t *testing.T) {
	signed, err := Sign(uuid.New(), secret)
	require.NoError(t, err)

	_, err = Verify(signed, "other-secret")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := Verify("not.a.token", secret)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyExpired(t *testing.T) {
	claims := Claims{
		UserID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * TTL)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-TTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = Verify(signed, secret)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsUnexpectedAlg(t *testing.T) {
	claims := Claims{UserID: uuid.New().String()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Verify(signed, secret)
	assert.ErrorIs(t, err, ErrInvalid)
}
