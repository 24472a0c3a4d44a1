package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler_Get(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `finances`").
		WillReturnRows(sqlmock.NewRows(financeColumns).
			AddRow(1, "income", "Infaq", "1000.00", "", "2026-01-10", time.Now(), time.Now()).
			AddRow(2, "expense", "Listrik", "400.00", "", "2026-02-05", time.Now(), time.Now()))

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `inventory`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(12))

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `events`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/stats", NewStatsHandler().Get)

	req := httptest.NewRequest("GET", "/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "600", data["balance"])
	assert.Equal(t, "1000", data["total_income"])
	assert.Equal(t, "400", data["total_expense"])
	assert.Equal(t, float64(12), data["inventory_count"])
	assert.Equal(t, float64(3), data["upcoming_events"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsHandler_Get_EmptyLedger(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `finances`").
		WillReturnRows(sqlmock.NewRows(financeColumns))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `inventory`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `events`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	router := gin.New()
	router.GET("/stats", NewStatsHandler().Get)

	req := httptest.NewRequest("GET", "/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "0", data["balance"])
	require.NoError(t, mock.ExpectationsWereMet())
}
