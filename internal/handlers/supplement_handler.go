// internal/handlers/supplement_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"supplement_keep/internal/middleware"
	"supplement_keep/internal/model"
	"supplement_keep/internal/service"
	"supplement_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type SupplementHandler struct {
	supplementService service.SupplementService
	inventoryService  service.InventoryService
	logger            *slog.Logger
}

func NewSupplementHandler(s service.SupplementService, inv service.InventoryService, logger *slog.Logger) *SupplementHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SupplementHandler{
		supplementService: s,
		inventoryService:  inv,
		logger:            logger,
	}
}

// PostSupplement は新しいサプリメントを登録するためのハンドラ
func (h *SupplementHandler) PostSupplement(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSupplement"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.PostSupplementRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	supplement, err := h.supplementService.Create(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating supplement in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Supplement posted successfully", slog.String("supplement_id", supplement.SupplementID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, supplement, logger)
}

// GetSupplements はステータス別にグルーピングした一覧を返すハンドラ
func (h *SupplementHandler) GetSupplements(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSupplements"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized))
		return
	}

	resp, err := h.supplementService.List(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing supplements in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetSupplementToday は指定日の摂取予定と記録状況を返すハンドラ
func (h *SupplementHandler) GetSupplementToday(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSupplementToday"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized))
		return
	}

	date := r.URL.Query().Get("date")
	tz := r.URL.Query().Get("timezone")

	resp, err := h.supplementService.GetToday(r.Context(), userID, date, tz, time.Now())
	if err != nil {
		logger.Error("Error getting today view in service", slog.Any("error", err), slog.String("date", date), slog.String("timezone", tz))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetSupplement は詳細（進捗・日別バケット・直近の記録）を返すハンドラ
func (h *SupplementHandler) GetSupplement(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSupplement"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized))
		return
	}

	supplementID, err := uuid.Parse(chi.URLParam(r, "supplement_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_INPUT", "IDの形式が正しくありません。", "supplement_id", model.ErrInvalidInput))
		return
	}

	tz := r.URL.Query().Get("timezone")
	resp, err := h.supplementService.GetDetail(r.Context(), userID, supplementID, tz, time.Now())
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error getting supplement detail in service", slog.Any("error", err), slog.String("supplement_id", supplementID.String()))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// DeleteSupplement は論理削除するハンドラ
func (h *SupplementHandler) DeleteSupplement(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteSupplement"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized))
		return
	}

	supplementID, err := uuid.Parse(chi.URLParam(r, "supplement_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_INPUT", "IDの形式が正しくありません。", "supplement_id", model.ErrInvalidInput))
		return
	}

	if err := h.supplementService.Delete(r.Context(), userID, supplementID); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error deleting supplement in service", slog.Any("error", err), slog.String("supplement_id", supplementID.String()))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RefillSupplement は在庫を加算するハンドラ
func (h *SupplementHandler) RefillSupplement(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RefillSupplement"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized))
		return
	}

	supplementID, err := uuid.Parse(chi.URLParam(r, "supplement_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_INPUT", "IDの形式が正しくありません。", "supplement_id", model.ErrInvalidInput))
		return
	}

	var req model.RefillRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	resp, err := h.inventoryService.Refill(r.Context(), userID, supplementID, req.RefillAmount)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) && !errors.Is(err, model.ErrInvalidInput) {
			logger.Error("Error refilling inventory in service", slog.Any("error", err), slog.String("supplement_id", supplementID.String()))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// handleValidationError は validator のエラーを翻訳して返す共通処理
func handleValidationError(w http.ResponseWriter, logger *slog.Logger, err error, req interface{}) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))

		// 最初のエラーを代表としてクライアントに返す
		firstErr := validationErrors[0]
		translatedMsg := firstErr.Translate(webutil.Trans)
		appErr := model.NewAppError(
			"VALIDATION_ERROR",
			translatedMsg,
			firstErr.Field(),
			model.ErrInvalidInput,
		)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger.Error("Unexpected error during validation", slog.Any("error", err))
	webutil.HandleError(w, logger, err)
}
