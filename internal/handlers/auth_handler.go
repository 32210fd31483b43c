// internal/handlers/auth_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_review/internal/model"
	"go_vocab_review/internal/service"
	"go_vocab_review/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{service: s, logger: logger}
}

// Register は新規ユーザー登録のハンドラ
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Register"))

	var req model.RegisterRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	tenant, err := h.service.RegisterTenant(r.Context(), &req)
	if err != nil {
		logger.Error("Error registering tenant in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Tenant registered successfully", slog.String("tenant_id", tenant.TenantID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, tenant, logger)
}

// VerifyAccount はメール内リンクからのアカウント有効化ハンドラ
func (h *AuthHandler) VerifyAccount(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "VerifyAccount"))

	token := r.URL.Query().Get("token")
	if token == "" {
		appErr := model.NewAppError("INVALID_REQUEST", "トークンが指定されていません。", "token", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.VerifyAccount(r.Context(), token); err != nil {
		logger.Warn("Account verification failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Account verified successfully")
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "アカウントを有効化しました。"}, logger)
}

// Login はログインのハンドラ
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Login"))

	var req model.LoginRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// ForgotPassword はパスワード再設定メールの送信リクエストハンドラ
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ForgotPassword"))

	var req model.ForgotPasswordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	// メールアドレスの存在有無にかかわらず同じレスポンスを返す
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "パスワード再設定用のメールを送信しました。"}, logger)
}

// ResetPassword はパスワード再設定の実行ハンドラ
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ResetPassword"))

	var req model.ResetPasswordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validateStruct(w, logger, req) {
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "パスワードを再設定しました。"}, logger)
}
