package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type countingLimiter struct {
	limit int
	seen  map[string]int
	err   error
}

func (l *countingLimiter) Allow(_ context.Context, key string, _ int, _ time.Duration) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	l.seen[key]++
	return l.seen[key] <= l.limit, nil
}

func newLimitedEngine(cfg RateLimitConfig, limiter RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/generate-ppt", RateLimit(cfg, limiter), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doPost(r http.Handler) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-ppt", nil)
	req.RemoteAddr = "10.1.2.3:4567"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	limiter := &countingLimiter{limit: 2, seen: map[string]int{}}
	r := newLimitedEngine(RateLimitConfig{Enabled: true, RequestsPerMinute: 2}, limiter)

	assert.Equal(t, http.StatusOK, doPost(r))
	assert.Equal(t, http.StatusOK, doPost(r))
	assert.Equal(t, http.StatusTooManyRequests, doPost(r))
	assert.Contains(t, limiter.seen, "ratelimit:/generate-ppt:10.1.2.3")
}

func TestRateLimit_FailsOpen(t *testing.T) {
	r := newLimitedEngine(RateLimitConfig{Enabled: true}, &countingLimiter{err: errors.New("redis down")})
	assert.Equal(t, http.StatusOK, doPost(r))
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newLimitedEngine(RateLimitConfig{Enabled: false}, &countingLimiter{limit: 0, seen: map[string]int{}})
	assert.Equal(t, http.StatusOK, doPost(r))
}

func TestRateLimit_RejectionBody(t *testing.T) {
	limiter := &countingLimiter{limit: 0, seen: map[string]int{}}
	r := newLimitedEngine(RateLimitConfig{Enabled: true, RequestsPerMinute: 1}, limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-ppt", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"rate limit exceeded"}`, w.Body.String())
}
