// internal/middleware/ratelimit_test.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ストア障害をシミュレートする CounterStore
type failingCounterStore struct{}

func (failingCounterStore) Increment(context.Context, string) (int64, error) {
	return 0, errors.New("store unavailable")
}
func (failingCounterStore) Get(context.Context, string) (int64, error) {
	return 0, errors.New("store unavailable")
}
func (failingCounterStore) Expire(context.Context, string, time.Duration) error {
	return errors.New("store unavailable")
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("正常系: 上限までは通り、超えると429", func(t *testing.T) {
		store := NewMemoryCounterStore()
		handler := RateLimitMiddleware(store, 3, time.Minute)(okHandler())

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("正常系: クライアントごとに独立したカウンタ", func(t *testing.T) {
		store := NewMemoryCounterStore()
		handler := RateLimitMiddleware(store, 1, time.Minute)(okHandler())

		reqA := httptest.NewRequest(http.MethodGet, "/", nil)
		reqA.RemoteAddr = "10.0.0.1:1234"
		recA := httptest.NewRecorder()
		handler.ServeHTTP(recA, reqA)
		assert.Equal(t, http.StatusOK, recA.Code)

		reqB := httptest.NewRequest(http.MethodGet, "/", nil)
		reqB.RemoteAddr = "10.0.0.2:1234"
		recB := httptest.NewRecorder()
		handler.ServeHTTP(recB, reqB)
		assert.Equal(t, http.StatusOK, recB.Code)
	})

	t.Run("正常系: ウィンドウ経過でカウンタがリセットされる", func(t *testing.T) {
		current := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
		store := &memoryCounterStore{
			counts:  make(map[string]int64),
			expires: make(map[string]time.Time),
			now:     func() time.Time { return current },
		}
		handler := RateLimitMiddleware(store, 1, time.Minute)(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		// ウィンドウ内の2回目は拒否
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusTooManyRequests, rec.Code)

		// ウィンドウを過ぎればまた通る
		current = current.Add(2 * time.Minute)
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("正常系: ストア障害時はリクエストを通す", func(t *testing.T) {
		handler := RateLimitMiddleware(failingCounterStore{}, 1, time.Minute)(okHandler())

		for i := 0; i < 5; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})
}
