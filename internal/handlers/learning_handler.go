// internal/handlers/learning_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_review/internal/model"
	"go_vocab_review/internal/service"
	"go_vocab_review/internal/webutil"
)

type LearningHandler struct {
	service service.LearningService
	logger  *slog.Logger
}

func NewLearningHandler(s service.LearningService, logger *slog.Logger) *LearningHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LearningHandler{service: s, logger: logger}
}

// GradeCard はフラッシュカードの自己採点を受け付けるハンドラ
func (h *LearningHandler) GradeCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GradeCard"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	var req model.GradeCardRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	quality, valid := model.ParseReviewQuality(req.Quality)
	if !valid {
		appErr := model.NewAppError("INVALID_QUALITY", "自己採点の値が不正です。", "quality", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	resp, err := h.service.GradeCard(r.Context(), tenantID, wordID, quality)
	if err != nil {
		logger.Error("Error grading card in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetCounts はフラッシュカード側の件数サマリを返すハンドラ
func (h *LearningHandler) GetCounts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCounts"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}

	counts, err := h.service.GetCounts(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, counts, logger)
}
