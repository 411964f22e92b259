package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cropai-modelhub/config"
	"cropai-modelhub/internal/catalog"
	"cropai-modelhub/internal/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

type nopStore struct{}

func (nopStore) Append(_ context.Context, _ string, _ map[string]interface{}) (string, error) {
	return "doc-1", nil
}

func testConfig() *config.Config {
	return &config.Config{
		CORSOrigins:     []string{"http://localhost:5173"},
		NotificationTTL: 10 * time.Second,
	}
}

func testDeps(ping func() error, rdb *redis.Client) Dependencies {
	return Dependencies{
		Engine:   services.NewFilterEngine(catalog.Records()),
		Pipeline: services.NewSubmissionPipeline(nopStore{}, services.NewLogNotifier()),
		Redis:    rdb,
		Ping:     ping,
	}
}

func serve(r *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRouterRegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testConfig(), testDeps(nil, nil))

	paths := []string{
		"/health",
		"/api/v1/models",
		"/api/v1/models/plantix",
		"/api/v1/crops",
		"/api/v1/tags",
		"/api/v1/stats",
		"/api/v1/filter",
		"/api/v1/notifications",
		"/api/v1/pages/about",
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, p, nil).Code)
		})
	}
}

func TestRouterCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testConfig(), testDeps(nil, nil))

	w := serve(r, http.MethodOptions, "/api/v1/submissions", map[string]string{
		"Origin":                        "http://localhost:5173",
		"Access-Control-Request-Method": "POST",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/api/v1/models", map[string]string{"Origin": "http://evil.example"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Run("all up", func(t *testing.T) {
		r := NewRouter(testConfig(), testDeps(func() error { return nil }, rdb))
		w := serve(r, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"redis":"ok"`)
	})

	t.Run("store down", func(t *testing.T) {
		r := NewRouter(testConfig(), testDeps(func() error { return errors.New("gone") }, nil))
		w := serve(r, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"store":"unavailable"`)
		assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
	})

	t.Run("redis down does not fail", func(t *testing.T) {
		broken := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
		r := NewRouter(testConfig(), testDeps(nil, broken))
		w := serve(r, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"redis":"unavailable"`)
	})
}
