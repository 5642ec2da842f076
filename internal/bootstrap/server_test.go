package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/flightseats/config"
	"github.com/Domenick1991/flightseats/internal/domain"
	"github.com/Domenick1991/flightseats/internal/service/seating"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	aircraft, err := domain.NewAircraft("G-TINY", "Test", 1, 1)
	require.NoError(t, err)
	flight, err := domain.NewFlight("BA999", aircraft)
	require.NoError(t, err)
	log := zap.NewNop().Sugar()
	return NewRouter(seating.NewSeatingService(flight, nil, "", log), log)
}

func post(router http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Healthz(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_AllocateUntilFull(t *testing.T) {
	router := newRouter(t)
	body := `{"seat":"1A","name":"John","surname":"Doe","id_card":"12345678X"}`

	w := post(router, "/flight/allocations", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = post(router, "/flight/allocations", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "No available seats", response["error"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/flight/", nil))
	var summary seating.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 0, summary.AvailableSeats)
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: "127.0.0.1:0"}}
	aircraft, err := domain.NewAircraft("G-TINY", "Test", 1, 1)
	require.NoError(t, err)
	flight, err := domain.NewFlight("BA999", aircraft)
	require.NoError(t, err)
	log := zap.NewNop().Sugar()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, cfg, seating.NewSeatingService(flight, nil, "", log), log)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("Run did not return after cancel")
	}
}
