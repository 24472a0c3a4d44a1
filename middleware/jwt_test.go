package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/setbox30-netizen/masjid-baitul-mannan/config"
	"github.com/setbox30-netizen/masjid-baitul-mannan/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initJWTTestConfig() {
	config.GlobalConfig = &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-jwt-secret-key"},
	}
}

func TestGenerateToken(t *testing.T) {
	initJWTTestConfig()
	defer func() { config.GlobalConfig = nil }()

	InitJWT(config.GlobalConfig)

	token, err := GenerateToken(1, "bendahara", models.RoleAdmin, 24*time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, len(token), 20)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "bendahara", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestParseToken(t *testing.T) {
	initJWTTestConfig()
	defer func() { config.GlobalConfig = nil }()

	InitJWT(config.GlobalConfig)

	token, _ := GenerateToken(100, "warga", models.RoleMember, time.Hour)
	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(100), claims.UserID)
	assert.Equal(t, models.RoleMember, claims.Role)

	_, err = ParseToken("")
	assert.Error(t, err)

	_, err = ParseToken("not.a.valid.jwt")
	assert.Error(t, err)
	_, err = ParseToken("eyJhbGciOiJmb29iIn0.xxxx.yyyy")
	assert.Error(t, err)
}

func TestJWTAuth(t *testing.T) {
	initJWTTestConfig()
	defer func() { config.GlobalConfig = nil }()

	InitJWT(config.GlobalConfig)
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(JWTAuth())
	router.GET("/protected", func(c *gin.Context) {
		c.String(200, "id:%d", GetCurrentUserID(c))
	})

	// no token
	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// not a Bearer header
	req2 := httptest.NewRequest("GET", "/protected", nil)
	req2.Header.Set("Authorization", "Basic xyz")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)

	// Bearer without token
	req3 := httptest.NewRequest("GET", "/protected", nil)
	req3.Header.Set("Authorization", "Bearer ")
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req3)
	assert.Equal(t, http.StatusUnauthorized, w3.Code)

	// valid token
	token, _ := GenerateToken(42, "user42", models.RoleMember, time.Hour)
	req4 := httptest.NewRequest("GET", "/protected", nil)
	req4.Header.Set("Authorization", "Bearer "+token)
	w4 := httptest.NewRecorder()
	router.ServeHTTP(w4, req4)
	assert.Equal(t, 200, w4.Code)
	assert.Equal(t, "id:42", w4.Body.String())

	// token in the query string (download links)
	req5 := httptest.NewRequest("GET", "/protected?token="+token, nil)
	w5 := httptest.NewRecorder()
	router.ServeHTTP(w5, req5)
	assert.Equal(t, 200, w5.Code)
	assert.Equal(t, "id:42", w5.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	initJWTTestConfig()
	defer func() { config.GlobalConfig = nil }()

	InitJWT(config.GlobalConfig)
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(JWTAuth(), RequireAdmin())
	router.POST("/mutate", func(c *gin.Context) {
		c.String(200, "ok")
	})

	// member is read-only
	memberToken, _ := GenerateToken(2, "warga", models.RoleMember, time.Hour)
	req := httptest.NewRequest("POST", "/mutate", nil)
	req.Header.Set("Authorization", "Bearer "+memberToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// admin passes
	adminToken, _ := GenerateToken(1, "admin", models.RoleAdmin, time.Hour)
	req2 := httptest.NewRequest("POST", "/mutate", nil)
	req2.Header.Set("Authorization", "Bearer "+adminToken)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	assert.Equal(t, 200, w2.Code)
}

func TestGetCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, uint(0), GetCurrentUserID(c))
	assert.Equal(t, "", GetCurrentRole(c))

	c.Set("userID", uint(99))
	c.Set("role", models.RoleAdmin)
	assert.Equal(t, uint(99), GetCurrentUserID(c))
	assert.Equal(t, models.RoleAdmin, GetCurrentRole(c))
}
