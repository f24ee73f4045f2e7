package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const secret = "unit-test-secret"

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(secret, 42, "alibek")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWT(secret, token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alibek", claims.Username)
}

func TestJWTTamperedToken(t *testing.T) {
	token, err := GenerateJWT(secret, 1, "alibek")
	assert.NoError(t, err)

	// flip the last byte of the signature
	last := token[len(token)-1]
	replacement := byte('A')
	if last == replacement {
		replacement = 'B'
	}
	tampered := token[:len(token)-1] + string(replacement)

	_, err = ParseJWT(secret, tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(secret, 1, "alibek")
	assert.NoError(t, err)

	_, err = ParseJWT("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTExpired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   float64(1),
		"username": "alibek",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte(secret))
	assert.NoError(t, err)

	_, err = ParseJWT(secret, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTMissingClaims(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)

	_, err = ParseJWT(secret, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
