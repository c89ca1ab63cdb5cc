package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/config"
	"backend/models"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMiddlewareTest(t *testing.T) *models.User {
	t.Helper()
	gin.SetMode(gin.TestMode)
	InitSessions()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(config.AllModels()...))
	config.DB = db

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	user := models.User{
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: hash,
		IsActive:       true,
		Level:          1,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func protectedRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("userID"), "username": c.GetString("username")})
	})
	return r
}

func TestAPIAuthRequired_BearerToken(t *testing.T) {
	user := setupMiddlewareTest(t)
	r := protectedRouter(APIAuthRequired())

	token, err := utils.GenerateJWT(user.ID, user.Username)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestAPIAuthRequired_RejectsAnonymous(t *testing.T) {
	setupMiddlewareTest(t)
	r := protectedRouter(APIAuthRequired())

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not logged in")
}

func TestAPIAuthRequired_RejectsBadToken(t *testing.T) {
	setupMiddlewareTest(t)
	r := protectedRouter(APIAuthRequired())

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIAuthRequired_RejectsInactiveUser(t *testing.T) {
	user := setupMiddlewareTest(t)
	require.NoError(t, config.DB.Model(user).Update("is_active", false).Error)

	token, err := utils.GenerateJWT(user.ID, user.Username)
	require.NoError(t, err)

	r := protectedRouter(APIAuthRequired())
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_RedirectsToLogin(t *testing.T) {
	setupMiddlewareTest(t)
	r := protectedRouter(AuthRequired())

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAuthRequired_SessionCookie(t *testing.T) {
	user := setupMiddlewareTest(t)

	r := gin.New()
	r.POST("/session-login", func(c *gin.Context) {
		SetSessionUser(c, user.ID, user.Username)
		c.Status(http.StatusNoContent)
	})
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("username"))
	})

	// Log in, capture the session cookie.
	loginReq := httptest.NewRequest("POST", "/session-login", nil)
	loginW := httptest.NewRecorder()
	r.ServeHTTP(loginW, loginReq)
	cookies := loginW.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest("GET", "/protected", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}
