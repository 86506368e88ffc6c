package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/tcworld/magadmin/internal/shared/logger"
)

func newLimitedEngine(client *redis.Client, limit int) *gin.Engine {
	rl := NewRateLimiter(client, "login", limit, time.Minute, logger.NewNop())
	r := gin.New()
	r.POST("/login", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doLogin(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_Limit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := newLimitedEngine(client, 3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doLogin(r), "request %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, doLogin(r))

	keys := mr.Keys()
	if assert.Len(t, keys, 1) {
		assert.Greater(t, mr.TTL(keys[0]), time.Duration(0))
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := newLimitedEngine(client, 0)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doLogin(r))
	}
	assert.Empty(t, mr.Keys())
}

func TestRateLimiter_RedisDownFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	mr.Close()
	r := newLimitedEngine(client, 1)

	assert.Equal(t, http.StatusOK, doLogin(r))
	assert.Equal(t, http.StatusOK, doLogin(r))
}
