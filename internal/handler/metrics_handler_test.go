package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/campuspulse/campus-api/internal/service"
)

func TestMetricsHandlerHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewMetricsHandler(nil, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	handler.Health(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestMetricsHandlerPrometheusWithoutService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewMetricsHandler(nil, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/metrics", nil)

	handler.Prometheus(c)
	// The engine flushes deferred status codes after the handler chain; a
	// direct invocation must flush explicitly before reading rec.Code.
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsHandlerPrometheusServesRegistry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewMetricsHandler(service.NewMetricsService(), nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/metrics", nil)

	handler.Prometheus(c)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsHandlerReadyWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewMetricsHandler(nil, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

	handler.Ready(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ready"`)
}

func TestMetricsHandlerReadyPingsRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	handler := NewMetricsHandler(nil, client)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

	handler.Ready(c)
	assert.Equal(t, http.StatusOK, rec.Code)

	mr.Close()
	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

	handler.Ready(c)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
