package ratelimit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(0, time.Minute) // limit 0 always denies
	r := gin.New()
	r.Use(Middleware(lim))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 429, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Rate limit exceeded. Try again later.", body["message"])
	require.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestMiddleware_AllowsWithinLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(2, time.Minute)
	r := gin.New()
	r.Use(Middleware(lim))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, 200, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, 429, w.Code)
}

func TestAllow_WindowSlides(t *testing.T) {
	lim := New(1, 10*time.Millisecond)

	require.True(t, lim.Allow("a"))
	require.False(t, lim.Allow("a"))

	time.Sleep(15 * time.Millisecond)
	require.True(t, lim.Allow("a"))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	lim := New(1, time.Minute)

	require.True(t, lim.Allow("a"))
	require.True(t, lim.Allow("b"))
	require.False(t, lim.Allow("a"))
}

func TestCleanup(t *testing.T) {
	lim := New(1, 5*time.Millisecond)
	lim.Allow("a")

	time.Sleep(10 * time.Millisecond)
	lim.Cleanup()

	lim.mu.Lock()
	defer lim.mu.Unlock()
	require.Empty(t, lim.requests)
}
