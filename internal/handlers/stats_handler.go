// internal/handlers/stats_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"supplement_keep/internal/middleware"
	"supplement_keep/internal/model"
	"supplement_keep/internal/service"
	"supplement_keep/internal/webutil"
)

type StatsHandler struct {
	service service.SupplementService
	logger  *slog.Logger
}

func NewStatsHandler(s service.SupplementService, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsHandler{
		service: s,
		logger:  logger,
	}
}

// GetMyStats は登録数と連続摂取日数を返すハンドラ
func (h *StatsHandler) GetMyStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMyStats"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized))
		return
	}

	tz := r.URL.Query().Get("timezone")
	resp, err := h.service.GetStats(r.Context(), userID, tz, time.Now())
	if err != nil {
		logger.Error("Error getting user stats in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
