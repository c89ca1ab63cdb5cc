package utils

import (
	"testing"
	"time"

	"backend/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-jwt-secret")

	tokenStr, err := GenerateJWT(42, "alice")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (any, error) {
		return config.JWTSecret(), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(42), claims["userId"])
	assert.Equal(t, "alice", claims["username"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(72*time.Hour), exp.Time, time.Minute)
}

func TestGenerateJWT_SecretFallsBackToSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SESSION_SECRET", "session-only")

	tokenStr, err := GenerateJWT(7, "bob")
	require.NoError(t, err)

	_, err = jwt.Parse(tokenStr, func(tok *jwt.Token) (any, error) {
		return []byte("session-only"), nil
	})
	assert.NoError(t, err)
}
