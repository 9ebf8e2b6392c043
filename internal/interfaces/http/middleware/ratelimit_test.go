package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/propertyhub/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apiEngine lays middleware out the way the server does: request IDs and
// the global limiter on the engine, the auth limiter on credential routes.
func apiEngine(global, auth *RateLimiter) *gin.Engine {
	engine := gin.New()
	engine.Use(RequestID())
	if global != nil {
		engine.Use(RateLimit(global))
	}
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, dto.NewSuccessResponse(nil)) }
	v1 := engine.Group("/api/v1")
	v1.POST("/auth/login", AuthRateLimit(auth), ok)
	v1.POST("/auth/refresh", AuthRateLimit(auth), ok)
	v1.GET("/properties", ok)
	return engine
}

func call(engine *gin.Engine, method, path, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = ip + ":40000"
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorInfo {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestRateLimiter(t *testing.T) {
	t.Run("fixed window per key", func(t *testing.T) {
		limiter := NewRateLimiter(2, 50*time.Millisecond)
		defer limiter.Stop()

		assert.Equal(t, 2, limiter.Remaining("10.1.1.1"))
		assert.True(t, limiter.Allow("10.1.1.1"))
		assert.Equal(t, 1, limiter.Remaining("10.1.1.1"))
		assert.True(t, limiter.Allow("10.1.1.1"))
		assert.False(t, limiter.Allow("10.1.1.1"))
		assert.True(t, limiter.Allow("10.1.1.2"))

		time.Sleep(60 * time.Millisecond)
		assert.Equal(t, 2, limiter.Remaining("10.1.1.1"))
		assert.True(t, limiter.Allow("10.1.1.1"))
	})

	t.Run("concurrent logins never exceed the limit", func(t *testing.T) {
		limiter := NewRateLimiter(10, time.Minute)
		defer limiter.Stop()

		var wg sync.WaitGroup
		var mu sync.Mutex
		allowed := 0
		for i := 0; i < 40; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Allow("auth:203.0.113.9") {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 10, allowed)
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Millisecond)
		limiter.Stop()
		limiter.Stop()
		assert.True(t, limiter.Allow("after-stop"))
	})
}

func TestAuthRateLimit(t *testing.T) {
	t.Run("login and refresh share one budget per client", func(t *testing.T) {
		auth := NewRateLimiter(3, time.Minute)
		defer auth.Stop()
		engine := apiEngine(nil, auth)

		assert.Equal(t, http.StatusOK, call(engine, http.MethodPost, "/api/v1/auth/login", "198.51.100.7").Code)
		assert.Equal(t, http.StatusOK, call(engine, http.MethodPost, "/api/v1/auth/refresh", "198.51.100.7").Code)
		w := call(engine, http.MethodPost, "/api/v1/auth/login", "198.51.100.7")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

		w = call(engine, http.MethodPost, "/api/v1/auth/refresh", "198.51.100.7")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "60", w.Header().Get("Retry-After"))

		info := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeAuthRateLimited, info.Code)
		assert.Equal(t, w.Header().Get(RequestIDHeader), info.RequestID)

		// other clients and other routes are unaffected
		assert.Equal(t, http.StatusOK, call(engine, http.MethodPost, "/api/v1/auth/login", "198.51.100.8").Code)
		assert.Equal(t, http.StatusOK, call(engine, http.MethodGet, "/api/v1/properties", "198.51.100.7").Code)
	})

	t.Run("shared store keeps auth and api budgets apart", func(t *testing.T) {
		shared := NewRateLimiter(2, time.Minute)
		defer shared.Stop()
		engine := gin.New()
		engine.Use(RequestID())
		engine.POST("/api/v1/auth/login", AuthRateLimit(shared), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		engine.GET("/api/v1/units", RateLimit(shared), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		for i := 0; i < 2; i++ {
			require.Equal(t, http.StatusNoContent, call(engine, http.MethodPost, "/api/v1/auth/login", "192.0.2.1").Code)
		}
		assert.Equal(t, http.StatusTooManyRequests, call(engine, http.MethodPost, "/api/v1/auth/login", "192.0.2.1").Code)
		assert.Equal(t, http.StatusNoContent, call(engine, http.MethodGet, "/api/v1/units", "192.0.2.1").Code)
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("global limiter guards the whole api", func(t *testing.T) {
		global := NewRateLimiter(2, 30*time.Second)
		auth := NewRateLimiter(10, time.Minute)
		defer global.Stop()
		defer auth.Stop()
		engine := apiEngine(global, auth)

		assert.Equal(t, http.StatusOK, call(engine, http.MethodGet, "/api/v1/properties", "192.0.2.50").Code)
		assert.Equal(t, http.StatusOK, call(engine, http.MethodPost, "/api/v1/auth/login", "192.0.2.50").Code)

		w := call(engine, http.MethodGet, "/api/v1/properties", "192.0.2.50")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "30", w.Header().Get("Retry-After"))
		assert.Equal(t, dto.ErrCodeRateLimited, decodeError(t, w).Code)
	})

	t.Run("custom key throttles per organization", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute)
		defer limiter.Stop()
		engine := gin.New()
		engine.Use(RateLimitByKey(limiter, func(c *gin.Context) string {
			return c.GetHeader("X-Org-ID")
		}))
		engine.GET("/api/v1/dashboard/summary", func(c *gin.Context) { c.Status(http.StatusOK) })

		get := func(org string) int {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)
			req.Header.Set("X-Org-ID", org)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			return w.Code
		}
		assert.Equal(t, http.StatusOK, get("org-a"))
		assert.Equal(t, http.StatusTooManyRequests, get("org-a"))
		assert.Equal(t, http.StatusOK, get("org-b"))
	})
}
