// internal/middleware/ratelimit.go
package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"supplement_keep/internal/model"
	"supplement_keep/internal/webutil"
)

// CounterStore はレートリミットのカウンタを保持するストアの抽象です。
// プロセス内マップ実装のほか、複数インスタンス構成では外部の共有キャッシュ
// （Redis等）で差し替えられるよう、get/increment/expire だけを要求します。
type CounterStore interface {
	Increment(ctx context.Context, key string) (int64, error)
	Get(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// memoryCounterStore は CounterStore のプロセス内実装です。
type memoryCounterStore struct {
	mu      sync.Mutex
	counts  map[string]int64
	expires map[string]time.Time
	now     func() time.Time
}

func NewMemoryCounterStore() CounterStore {
	return &memoryCounterStore{
		counts:  make(map[string]int64),
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *memoryCounterStore) cleanupLocked(key string) {
	if exp, ok := s.expires[key]; ok && s.now().After(exp) {
		delete(s.counts, key)
		delete(s.expires, key)
	}
}

func (s *memoryCounterStore) Increment(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanupLocked(key)
	s.counts[key]++
	return s.counts[key], nil
}

func (s *memoryCounterStore) Get(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanupLocked(key)
	return s.counts[key], nil
}

func (s *memoryCounterStore) Expire(_ context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expires[key]; !ok {
		s.expires[key] = s.now().Add(ttl)
	}
	return nil
}

// RateLimitMiddleware はクライアントIP単位の固定ウィンドウレートリミットです。
// chi の RealIP ミドルウェアの後段に置くこと。
func RateLimitMiddleware(store CounterStore, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			key := "rl:" + r.RemoteAddr
			count, err := store.Increment(r.Context(), key)
			if err != nil {
				// レートリミットストアの障害でリクエストを落とさない
				logger.Error("Rate limit store failure, allowing request", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := store.Expire(r.Context(), key, window); err != nil {
					logger.Error("Failed to set rate limit window", "error", err)
				}
			}
			if count > int64(limit) {
				logger.Warn("Rate limit exceeded", "remote_addr", r.RemoteAddr, "count", count)
				webutil.RespondWithJSON(w, http.StatusTooManyRequests, model.APIErrorResponse{
					Error: model.ErrorDetail{
						Code:    "RATE_LIMITED",
						Message: "リクエストが多すぎます。しばらくしてから再試行してください。",
					},
				}, logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
