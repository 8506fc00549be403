// internal/middleware/cron.go
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"supplement_keep/internal/config"
	"supplement_keep/internal/model"
	"supplement_keep/internal/webutil"
)

// CronSecretMiddleware はバッチ系エンドポイント（自動完了スイープ、補充リマインダー）を
// 保護するミドルウェアです。外部スケジューラが "Authorization: Bearer {secret}" を付けて
// 叩く前提で、共有シークレットの一致だけを確認します。
func CronSecretMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || cfg.Cron.Secret == "" ||
				subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Cron.Secret)) != 1 {
				logger.Warn("Unauthorized cron request: invalid or missing secret")
				appErr := model.NewAppError("UNAUTHORIZED", "バッチ実行の認証に失敗しました。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
