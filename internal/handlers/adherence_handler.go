// internal/handlers/adherence_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"supplement_keep/internal/middleware"
	"supplement_keep/internal/model"
	"supplement_keep/internal/service"
	"supplement_keep/internal/webutil"

	"github.com/google/uuid"
)

type AdherenceHandler struct {
	service service.AdherenceService
	logger  *slog.Logger
}

func NewAdherenceHandler(s service.AdherenceService, logger *slog.Logger) *AdherenceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdherenceHandler{
		service: s,
		logger:  logger,
	}
}

// ToggleAdherence は摂取記録のON/OFFを反転するハンドラ
func (h *AdherenceHandler) ToggleAdherence(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ToggleAdherence"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.ToggleAdherenceRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	// uuidタグで検証済みなので Parse は失敗しない
	supplementID := uuid.MustParse(req.SupplementID)
	scheduleID := uuid.MustParse(req.ScheduleID)

	resp, err := h.service.Toggle(r.Context(), userID, supplementID, scheduleID, req.TakenAt)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) && !errors.Is(err, model.ErrInvalidInput) {
			logger.Error("Error toggling adherence in service", slog.Any("error", err),
				slog.String("supplement_id", req.SupplementID),
				slog.String("schedule_id", req.ScheduleID),
			)
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
