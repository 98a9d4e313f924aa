package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dietwise/backend/internal/database"
	"github.com/dietwise/backend/internal/testhelpers"
)

func setupHealthRouter(t *testing.T) (*gin.Engine, *database.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, err := testhelpers.SetupTestDB(t).DB()
	require.NoError(t, err)
	db := &database.DB{DB: sqlDB}

	router := gin.New()
	NewHealthHandler(db, nil).RegisterRoutes(router)
	return router, db
}

func TestHealthReportsDatabaseOK(t *testing.T) {
	router, _ := setupHealthRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var checks map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &checks))
	assert.Equal(t, "ok", checks["database"])
}

func TestHealthReportsUnavailableDatabase(t *testing.T) {
	router, db := setupHealthRouter(t)
	require.NoError(t, db.Close())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
