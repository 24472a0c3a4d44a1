package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/setbox30-netizen/masjid-baitul-mannan/config"
	"github.com/setbox30-netizen/masjid-baitul-mannan/database"
	"github.com/setbox30-netizen/masjid-baitul-mannan/middleware"
	"github.com/setbox30-netizen/masjid-baitul-mannan/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func setUserMiddleware(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
}

func TestAuthHandler_Login(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	cfg := testConfig()
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role", "created_at", "updated_at"}).
			AddRow(1, "admin", string(hashed), models.RoleAdmin, time.Now(), time.Now()))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg).Login)

	body := `{"username":"admin","password":"admin123"}`
	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	userInfo := data["user_info"].(map[string]interface{})
	assert.Equal(t, "admin", userInfo["role"])
	// the hash must never leak
	assert.NotContains(t, w.Body.String(), string(hashed))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("benar"), bcrypt.DefaultCost)
	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("warga").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role", "created_at", "updated_at"}).
			AddRow(2, "warga", string(hashed), models.RoleMember, time.Now(), time.Now()))

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg).Login)

	body := `{"username":"warga","password":"salah"}`
	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Username atau password salah", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("hantu").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg).Login)

	body := `{"username":"hantu","password":"apa saja"}`
	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// the message must not reveal whether the account exists
	assert.Equal(t, 401, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Username atau password salah", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("lama123"), bcrypt.DefaultCost)
	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role", "created_at", "updated_at"}).
			AddRow(1, "admin", string(hashed), models.RoleAdmin, time.Now(), time.Now()))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserMiddleware(1, models.RoleAdmin))
	router.PUT("/password", NewAuthHandler(cfg).ChangePassword)

	body := `{"old_password":"lama123","new_password":"baru456"}`
	req := httptest.NewRequest("PUT", "/password", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_ChangePassword_WrongOldPassword(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("lama123"), bcrypt.DefaultCost)
	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role", "created_at", "updated_at"}).
			AddRow(1, "admin", string(hashed), models.RoleAdmin, time.Now(), time.Now()))

	router := gin.New()
	router.Use(setUserMiddleware(1, models.RoleAdmin))
	router.PUT("/password", NewAuthHandler(cfg).ChangePassword)

	body := `{"old_password":"tebakan","new_password":"baru456"}`
	req := httptest.NewRequest("PUT", "/password", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
