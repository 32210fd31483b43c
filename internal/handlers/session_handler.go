// internal/handlers/session_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_review/internal/model"
	"go_vocab_review/internal/service"
	"go_vocab_review/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SessionHandler struct {
	service service.SessionService
	logger  *slog.Logger
}

func NewSessionHandler(s service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{service: s, logger: logger}
}

func parseSessionID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "session_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_SESSION_ID", "セッションIDの形式が正しくありません。", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return sessionID, true
}

// StartSession は復習セッションを開始するハンドラ。
// ボディは省略可能（出題数は設定のデフォルトを使う）。
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartSession"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	var req model.StartSessionRequest
	if r.ContentLength > 0 {
		if err := webutil.DecodeJSONBody(r, &req); err != nil {
			appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		if !validateStruct(w, logger, req) {
			return
		}
	}

	resp, err := h.service.StartSession(r.Context(), tenantID, req.Limit)
	if err != nil {
		logger.Error("Error starting session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if resp.Empty {
		logger.Info("No due words, session not started")
		webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
		return
	}
	logger.Info("Session started", slog.String("session_id", resp.Session.SessionID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// GetSession はセッションの現在状態を返すハンドラ
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSession"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := parseSessionID(w, r, logger)
	if !ok {
		return
	}

	state, err := h.service.GetSession(r.Context(), tenantID, sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// SubmitAnswer は現在の出題への解答を判定するハンドラ
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitAnswer"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := parseSessionID(w, r, logger)
	if !ok {
		return
	}

	var req model.SubmitAnswerRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	resp, err := h.service.SubmitAnswer(r.Context(), tenantID, sessionID, req.Answer)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// ContinueToNext は判定結果を適用して次の出題へ進むハンドラ
func (h *SessionHandler) ContinueToNext(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ContinueToNext"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := parseSessionID(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.ContinueToNext(r.Context(), tenantID, sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// ExitSession はセッションを途中終了するハンドラ
func (h *SessionHandler) ExitSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ExitSession"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := parseSessionID(w, r, logger)
	if !ok {
		return
	}

	summary, err := h.service.ExitSession(r.Context(), tenantID, sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Session exited", slog.String("session_id", sessionID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}
