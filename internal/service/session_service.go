// internal/service/session_service.go
package service

import (
	"context"
	"sync"
	"time"

	"go_vocab_review/internal/clock"
	"go_vocab_review/internal/middleware"
	"go_vocab_review/internal/model"
	"go_vocab_review/internal/scheduler"

	"github.com/google/uuid"
)

// 放置されたセッションを掃除するまでの時間
const sessionTTL = 24 * time.Hour

type SessionService interface {
	// StartSession は期限到来の単語でセッションを開始します。
	// 対象が無い場合は empty=true と次回復習日時を返す（エラーにしない）。
	StartSession(ctx context.Context, tenantID uuid.UUID, limit int) (*model.StartSessionResponse, error)
	GetSession(ctx context.Context, tenantID, sessionID uuid.UUID) (*model.SessionStateResponse, error)
	// SubmitAnswer は解答を判定して結果を返します。状態はまだ進めない。
	SubmitAnswer(ctx context.Context, tenantID, sessionID uuid.UUID, answer string) (*model.SubmitAnswerResponse, error)
	// ContinueToNext は判定を適用して次の出題へ進みます。
	// 全アイテム完走時は進捗を保存し、サマリを添えて返す。
	ContinueToNext(ctx context.Context, tenantID, sessionID uuid.UUID) (*model.ContinueResponse, error)
	// ExitSession は途中終了。完走済みアイテムの結果だけ保存する。
	ExitSession(ctx context.Context, tenantID, sessionID uuid.UUID) (*model.SessionSummaryResponse, error)
}

type sessionService struct {
	reviewSvc ReviewService
	clk       clock.Clock

	mu       sync.Mutex
	sessions map[uuid.UUID]*scheduler.Session
}

func NewSessionService(reviewSvc ReviewService, clk clock.Clock) SessionService {
	return &sessionService{
		reviewSvc: reviewSvc,
		clk:       clk,
		sessions:  make(map[uuid.UUID]*scheduler.Session),
	}
}

func (s *sessionService) StartSession(ctx context.Context, tenantID uuid.UUID, limit int) (*model.StartSessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	items, nextReviewAt, err := s.reviewSvc.GetReviewBatch(ctx, tenantID, limit)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return &model.StartSessionResponse{Empty: true, NextReviewAt: nextReviewAt}, nil
	}

	session := scheduler.NewSession(uuid.New(), tenantID, items, s.clk.Now())

	s.mu.Lock()
	s.pruneStaleLocked()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	logger.Info("Review session started", "session_id", session.ID, "items", len(items))
	return &model.StartSessionResponse{Session: s.stateResponse(session)}, nil
}

func (s *sessionService) GetSession(ctx context.Context, tenantID, sessionID uuid.UUID) (*model.SessionStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.findLocked(tenantID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.stateResponse(session), nil
}

func (s *sessionService) SubmitAnswer(ctx context.Context, tenantID, sessionID uuid.UUID, answer string) (*model.SubmitAnswerResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "session_id", sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.findLocked(tenantID, sessionID)
	if err != nil {
		return nil, err
	}

	result, correctAnswer, err := session.Submit(answer)
	if err != nil {
		logger.Warn("Answer submission rejected", "error", err)
		return nil, err
	}

	return &model.SubmitAnswerResponse{
		Result:        result.String(),
		CorrectAnswer: correctAnswer,
	}, nil
}

func (s *sessionService) ContinueToNext(ctx context.Context, tenantID, sessionID uuid.UUID) (*model.ContinueResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "session_id", sessionID)

	s.mu.Lock()
	session, err := s.findLocked(tenantID, sessionID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if err := session.Continue(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	complete := session.Complete()
	if complete {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	resp := &model.ContinueResponse{Session: s.stateResponse(session)}
	if complete {
		// 完走。結果を一括保存する。
		persisted, finishTime, err := s.reviewSvc.ApplySessionOutcomes(ctx, tenantID, session.Outcomes())
		if err != nil {
			logger.Error("Failed to persist session outcomes", "error", err)
			return nil, err
		}
		resp.Summary = &model.SessionSummaryResponse{
			CompletedCount: session.CompletedCount(),
			FailedCount:    session.FailedCount(),
			PersistedCount: persisted,
			FinishTime:     finishTime,
		}
		logger.Info("Review session completed", "completed", session.CompletedCount(), "failed", session.FailedCount())
	}
	return resp, nil
}

func (s *sessionService) ExitSession(ctx context.Context, tenantID, sessionID uuid.UUID) (*model.SessionSummaryResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "session_id", sessionID)

	s.mu.Lock()
	session, err := s.findLocked(tenantID, sessionID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	// 途中終了時は3ステップ完走済みのアイテムだけを保存する。
	// 出題途中のアイテムは記録に触れない（次のセッションで再出題される）。
	outcomes := session.Outcomes()
	persisted := 0
	finishTime := s.clk.Now()
	if len(outcomes) > 0 {
		persisted, finishTime, err = s.reviewSvc.ApplySessionOutcomes(ctx, tenantID, outcomes)
		if err != nil {
			logger.Error("Failed to persist outcomes on exit", "error", err)
			return nil, err
		}
	}

	logger.Info("Review session exited", "completed", session.CompletedCount(), "persisted", persisted)
	return &model.SessionSummaryResponse{
		CompletedCount: session.CompletedCount(),
		FailedCount:    session.FailedCount(),
		PersistedCount: persisted,
		FinishTime:     finishTime,
	}, nil
}

// findLocked はテナントの所有するセッションを返します。呼び出し側がロックを握っていること。
func (s *sessionService) findLocked(tenantID, sessionID uuid.UUID) (*scheduler.Session, error) {
	session, ok := s.sessions[sessionID]
	if !ok || session.TenantID != tenantID {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

// pruneStaleLocked は放置されたセッションを捨てます。呼び出し側がロックを握っていること。
func (s *sessionService) pruneStaleLocked() {
	cutoff := s.clk.Now().Add(-sessionTTL)
	for id, session := range s.sessions {
		if session.StartedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

func (s *sessionService) stateResponse(session *scheduler.Session) *model.SessionStateResponse {
	resp := &model.SessionStateResponse{
		SessionID:      session.ID,
		Complete:       session.Complete(),
		Remaining:      session.Remaining(),
		CompletedCount: session.CompletedCount(),
	}
	if item := session.Current(); item != nil {
		resp.Item = itemView(item)
	}
	return resp
}

// itemView は現在のステップに応じた出題ビューを組み立てます
func itemView(item *scheduler.Item) *model.SessionItemView {
	view := &model.SessionItemView{
		WordID: item.WordID,
		Step:   item.CurrentStep.String(),
	}
	switch item.CurrentStep {
	case scheduler.StepFillInBlank:
		if item.ExampleSentence != "" {
			view.Question = scheduler.FillInBlankQuestion(item.Term, item.ExampleSentence)
		} else {
			// 例文が無い単語は意味をヒントに出す
			view.Question = item.Meaning
		}
	case scheduler.StepListenAndWrite:
		// クライアント側のTTSが読み上げるテキスト
		view.AudioText = item.Term
	case scheduler.StepMultipleChoice:
		view.Question = item.Term
		view.Options = item.Options
	}
	return view
}
