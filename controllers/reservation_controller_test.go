package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/akhilgolj/plantopiawebsite-final/configs"
	"github.com/akhilgolj/plantopiawebsite-final/repository"
	"github.com/akhilgolj/plantopiawebsite-final/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	require.NoError(t, configs.SeedInto(db))

	svc := services.NewReservationService(db,
		repository.NewReservationRepository(db),
		repository.NewUserRepository(db),
		repository.NewBranchRepository(db),
	)
	ctrl := NewReservationController(svc)

	r := gin.New()
	r.GET("/api/reservations/:branch/:date/:time", ctrl.ReservedTables)
	r.GET("/api/users/:externalId/reservations", ctrl.List)
	r.POST("/api/users/:externalId/reservations", ctrl.Create)
	r.PUT("/api/users/:externalId/reservations/:reservationId/cancel", ctrl.Cancel)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookingBody(table int) gin.H {
	return gin.H{
		"table":  table,
		"name":   "Alex",
		"people": 2,
		"date":   "2024-06-01",
		"time":   "6:00PM - 6:30PM",
		"branch": "dreamwood",
	}
}

func TestReservationEndpointFlow(t *testing.T) {
	r := newTestRouter(t)

	// book table 3
	w := doJSON(t, r, http.MethodPost, "/api/users/guest-a/reservations", bookingBody(3))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ReservationID string `json:"reservationId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Contains(t, created.ReservationID, "RES-")

	// the slot shows up in the blueprint query, underscore-encoded path
	w = doJSON(t, r, http.MethodGet, "/api/reservations/dreamwood/2024-06-01/6:00PM_-_6:30PM", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tables []int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tables))
	assert.Equal(t, []int{3}, tables)

	// a second user booking the same slot gets the conflict message
	w = doJSON(t, r, http.MethodPost, "/api/users/guest-b/reservations", bookingBody(3))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Table is already reserved for this time slot")

	// cancel and the table frees up
	w = doJSON(t, r, http.MethodPut,
		"/api/users/guest-a/reservations/"+created.ReservationID+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/reservations/dreamwood/2024-06-01/6:00PM_-_6:30PM", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tables = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tables))
	assert.Empty(t, tables)
}

func TestReservationEndpointValidation(t *testing.T) {
	r := newTestRouter(t)

	big := bookingBody(3)
	big["people"] = 13
	w := doJSON(t, r, http.MethodPost, "/api/users/guest-a/reservations", big)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/users/guest-a/reservations", gin.H{"table": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationEndpointNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/users/nobody/reservations/RES-x/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users/nobody/reservations", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
