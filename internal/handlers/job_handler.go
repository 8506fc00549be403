// internal/handlers/job_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"supplement_keep/internal/service"
	"supplement_keep/internal/timezone"
	"supplement_keep/internal/webutil"
)

// JobHandler はスケジューラから叩かれるバッチ用エンドポイント群です。
// 認証はクロンシークレット（CronSecretMiddleware）で行います。
type JobHandler struct {
	lifecycleService service.LifecycleService
	inventoryService service.InventoryService
	logger           *slog.Logger
}

func NewJobHandler(lc service.LifecycleService, inv service.InventoryService, logger *slog.Logger) *JobHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobHandler{
		lifecycleService: lc,
		inventoryService: inv,
		logger:           logger,
	}
}

// AutoComplete は終了日を過ぎた ACTIVE なサプリメントを完了にするハンドラ
func (h *JobHandler) AutoComplete(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AutoComplete"))

	// スイープの基準日はUTC。ユーザーごとのタイムゾーンで見ると最大で前後1日の
	// ズレが出るが、毎日実行する前提では翌日の実行で必ず取りこぼしを拾える
	today := timezone.Today(time.Now(), "UTC")

	resp, err := h.lifecycleService.AutoComplete(r.Context(), today)
	if err != nil {
		logger.Error("Error running auto-complete sweep", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// RefillReminders は残量低下中のサプリメントを持つユーザーに通知するハンドラ
func (h *JobHandler) RefillReminders(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RefillReminders"))

	resp, err := h.inventoryService.RunRefillReminders(r.Context())
	if err != nil {
		logger.Error("Error running refill reminder sweep", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
