// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrTenantNotFound = errors.New("tenant not found or invalid")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用

	// 復習セッション関連のエラー
	ErrNoDueWords      = errors.New("no words due for review")  // 期限到来の単語なし（正常系の空状態）
	ErrSessionNotFound = errors.New("review session not found") // セッションIDが無効 or 既に終了
	ErrAnswerPending   = errors.New("answer already submitted") // Continueを呼ぶ前に再送信された
	ErrNoAnswerPending = errors.New("no answer submitted")      // Submitなしで Continue が呼ばれた
)

// ctxKey はコンテキストキーの衝突を避けるための型
type ctxKey string

// TenantIDKey は認証ミドルウェアがテナントIDを格納するコンテキストキー
const TenantIDKey ctxKey = "tenant_id"

// AppError はエラーコード・メッセージ・対象フィールドを持つアプリケーションエラーです。
// ラップされた原因エラー(Err)で webutil がHTTPステータスを決定します。
type AppError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{Code: code, Message: message, Field: field, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detail はAPIレスポンスに載せるエラー詳細を返します
func (e *AppError) Detail() ErrorDetail {
	return ErrorDetail{Code: e.Code, Message: e.Message, Field: e.Field}
}

// ErrorDetail はAPIエラーレスポンスの中身
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
