// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_review/internal/middleware"
	"go_vocab_review/internal/model"
	"go_vocab_review/internal/service"
	"go_vocab_review/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type WordHandler struct {
	service service.WordService
	logger  *slog.Logger
}

func NewWordHandler(s service.WordService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{service: s, logger: logger}
}

// requireTenantID は認証済みテナントIDの取得。失敗時はレスポンスまで返す。
func requireTenantID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return tenantID, true
}

// parseWordID はURLパラメータから単語IDを取り出す。失敗時はレスポンスまで返す。
func parseWordID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	wordID, err := uuid.Parse(chi.URLParam(r, "word_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_WORD_ID", "単語IDの形式が正しくありません。", "word_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return wordID, true
}

// PostWord は新しい単語リソースを作成するためのハンドラ
func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostWord"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	var req model.PostWordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	word, err := h.service.PostWord(r.Context(), tenantID, &req)
	if err != nil {
		logger.Error("Error posting word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word posted successfully", slog.String("word_id", word.WordID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, word, logger)
}

// GetWords は単語リソースの一覧を取得するためのハンドラ
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWords"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}

	words, err := h.service.GetWords(r.Context(), tenantID)
	if err != nil {
		logger.Error("Error listing words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if words == nil {
		words = []*model.Word{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}

// GetWord は単語リソースを1件取得するためのハンドラ
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWord"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	word, err := h.service.GetWord(r.Context(), tenantID, wordID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// PutWord は単語リソースを全体更新するためのハンドラ
func (h *WordHandler) PutWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutWord"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	var req model.PutWordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	word, err := h.service.PutWord(r.Context(), tenantID, wordID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// PatchWord は単語リソースを部分更新するためのハンドラ
func (h *WordHandler) PatchWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchWord"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	var req model.PatchWordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	word, err := h.service.PatchWord(r.Context(), tenantID, wordID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// DeleteWord は単語リソースを削除するためのハンドラ
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteWord"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.DeleteWord(r.Context(), tenantID, wordID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkLearned は学習フロー完了（ノート入り）を記録するハンドラ
func (h *WordHandler) MarkLearned(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "MarkLearned"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.MarkLearned(r.Context(), tenantID, wordID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Word marked as learned", slog.String("word_id", wordID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// MarkKnownAlready は「この単語は知っている」を記録するハンドラ
func (h *WordHandler) MarkKnownAlready(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "MarkKnownAlready"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.MarkKnownAlready(r.Context(), tenantID, wordID, true); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UnmarkKnownAlready は「知っている」申告を取り消すハンドラ
func (h *WordHandler) UnmarkKnownAlready(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UnmarkKnownAlready"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.MarkKnownAlready(r.Context(), tenantID, wordID, false); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
