package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"go_vocab_review/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testLogger はログ出力を抑制したロガーを返します
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newJSONRequest はJSONボディ付きのリクエストを作成するテストヘルパー。
// body に string を渡すと不正なJSONのテストに使えます。
func newJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// contextWithTenant は認証済みテナントIDをコンテキストに入れます
func contextWithTenant(tenantID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), model.TenantIDKey, tenantID)
}

// contextWithChiURLParam は chi の RouteContext にURLパラメータを設定します
func contextWithChiURLParam(ctx context.Context, key, value string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}
