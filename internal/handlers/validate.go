// internal/handlers/validate.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_vocab_review/internal/model"
	"go_vocab_review/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// validateStruct はリクエストDTOを検証し、失敗時はエラーレスポンスまで返します。
// 戻り値が false ならハンドラは処理を打ち切ること。
func validateStruct(w http.ResponseWriter, logger *slog.Logger, req interface{}) bool {
	err := webutil.Validator.Struct(req)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))

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
	} else {
		logger.Error("Unexpected error during validation", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
	}
	return false
}
