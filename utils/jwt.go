package utils

import (
	"time"

	"backend/config"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT issues an HS256 bearer token for API clients. Web clients use
// the session cookie instead.
func GenerateJWT(userID uint, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   float64(userID),
		"username": username,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
	})
	return token.SignedString(config.JWTSecret())
}
