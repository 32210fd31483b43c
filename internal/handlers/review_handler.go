// internal/handlers/review_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go_vocab_review/internal/model"
	"go_vocab_review/internal/service"
	"go_vocab_review/internal/webutil"
)

// SSE接続のキープアライブ間隔
const statsKeepAliveInterval = 30 * time.Second

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{service: s, logger: logger}
}

// GetStats はダッシュボード用の統計を返すハンドラ
func (h *ReviewHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}

	stats, err := h.service.GetReviewStats(r.Context(), tenantID)
	if err != nil {
		logger.Error("Error getting review stats in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// StreamStats は統計の変化をServer-Sent Eventsで配信するハンドラ。
// 接続直後に現在値を1回送り、以降は進捗が変わるたびに再送する。
func (h *ReviewHandler) StreamStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StreamStats"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}

	flusher, canFlush := w.(http.Flusher)
	if !canFlush {
		appErr := model.NewAppError("STREAMING_UNSUPPORTED", "ストリーミングに対応していません。", "", model.ErrInternalServer)
		webutil.HandleError(w, logger, appErr)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	updates, cancel := h.service.SubscribeStats(tenantID)
	defer cancel()

	sendStats := func() bool {
		stats, err := h.service.GetReviewStats(r.Context(), tenantID)
		if err != nil {
			logger.Error("Error getting stats for stream", slog.Any("error", err))
			return false
		}
		payload, err := json.Marshal(stats)
		if err != nil {
			logger.Error("Error marshaling stats for stream", slog.Any("error", err))
			return false
		}
		if _, err := fmt.Fprintf(w, "event: stats\ndata: %s\n\n", payload); err != nil {
			return false
		}
		flusher.Flush()
		return true
	}

	if !sendStats() {
		return
	}

	keepAlive := time.NewTicker(statsKeepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			logger.Debug("Stats stream closed by client")
			return
		case <-updates:
			if !sendStats() {
				return
			}
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// ResetProgress は全進捗を段位1に戻すハンドラ
func (h *ReviewHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ResetProgress"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.ResetAllProgress(r.Context(), tenantID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Progress reset", slog.String("tenant_id", tenantID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "学習進捗をリセットしました。"}, logger)
}

// ClearProgress は全進捗レコードを削除するハンドラ
func (h *ReviewHandler) ClearProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ClearProgress"))

	tenantID, ok := requireTenantID(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.ClearProgress(r.Context(), tenantID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Progress cleared", slog.String("tenant_id", tenantID.String()))
	w.WriteHeader(http.StatusNoContent)
}
