package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/portkey-planner/internal/app/observability/metrics"
	"github.com/FACorreiaa/portkey-planner/internal/pkg/config"
)

func TestMain(m *testing.M) {
	metrics.InitAppMetrics()
	os.Exit(m.Run())
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg, err := config.Load()
	require.NoError(t, err)
	r := gin.New()
	Setup(r, cfg, zap.NewNop())
	return r
}

func TestRoutes(t *testing.T) {
	r := newRouter(t)

	t.Run("should expose a health endpoint", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/api/health", nil)
		require.NoError(t, err)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ok")
	})

	t.Run("should wire the plan endpoint end to end", func(t *testing.T) {
		body := `{"user_name":"Luna","destination":"Ooty","budget":50000,"days":1,"travel_style":"Fast-paced","age":40,"currency":"₹","start_date":"2026-05-05"}`
		w := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodPost, "/api/generate_plan", bytes.NewBufferString(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "1-Day Fast-paced Adventure to Ooty")
	})

	t.Run("should wire the conversion endpoint", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodPost, "/api/convert_currency", bytes.NewBufferString(`{"amount":100,"from":"₹","to":"$"}`))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "1.2")
	})

	t.Run("should answer unknown paths with a JSON 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/nowhere", nil)
		require.NoError(t, err)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not found")
	})
}
