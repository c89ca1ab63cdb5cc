package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// resolveUserID finds the caller's identity from either a Bearer token
// (API clients) or the signed session cookie (browsers).
func resolveUserID(c *gin.Context) (uint, bool) {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return config.JWTSecret(), nil
		})
		if err != nil || !token.Valid {
			return 0, false
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return 0, false
		}
		if id, ok := claims["userId"].(float64); ok {
			return uint(id), true
		}
		return 0, false
	}

	return SessionUserID(c)
}

func loadActiveUser(c *gin.Context) (*models.User, bool) {
	uid, ok := resolveUserID(c)
	if !ok {
		return nil, false
	}
	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil || !user.IsActive {
		return nil, false
	}
	return &user, true
}

// AuthRequired protects page routes: unauthenticated requests are sent to
// the login page with a flash message.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := loadActiveUser(c)
		if !ok {
			AddFlash(c, "warning", "Please log in to continue")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("userID", user.ID)
		c.Set("username", user.Username)
		c.Next()
	}
}

// APIAuthRequired protects JSON routes.
func APIAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := loadActiveUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not logged in"})
			return
		}
		c.Set("userID", user.ID)
		c.Set("username", user.Username)
		c.Next()
	}
}
