// internal/service/review_service.go
package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"go_vocab_review/internal/clock"
	"go_vocab_review/internal/config"
	"go_vocab_review/internal/middleware"
	"go_vocab_review/internal/model"
	"go_vocab_review/internal/repository"
	"go_vocab_review/internal/scheduler"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	// GetReviewBatch は期限到来の単語からセッション用アイテムを組み立てます。
	// 空バッチは正常系（エラーにしない）。第2戻り値はバッファ外で最短の復習期限。
	GetReviewBatch(ctx context.Context, tenantID uuid.UUID, limit int) ([]*scheduler.Item, *time.Time, error)
	GetReviewStats(ctx context.Context, tenantID uuid.UUID) (*model.ReviewStatsResponse, error)
	// ApplySessionOutcomes はセッション終了時の結果一括保存。
	// 全アイテムに同一の finishTime（次の正時に切り上げ済み）を適用する。
	ApplySessionOutcomes(ctx context.Context, tenantID uuid.UUID, outcomes []scheduler.Outcome) (persisted int, finishTime time.Time, err error)
	ResetAllProgress(ctx context.Context, tenantID uuid.UUID) error
	ClearProgress(ctx context.Context, tenantID uuid.UUID) error
	// SubscribeStats は統計が変わるたびに通知を受けるチャネルを返します
	SubscribeStats(tenantID uuid.UUID) (<-chan struct{}, func())
}

type reviewService struct {
	db       *gorm.DB
	progRepo repository.ProgressRepository
	wordRepo repository.WordRepository
	cfg      *config.Config
	clk      clock.Clock

	mu          sync.Mutex
	subscribers map[chan struct{}]uuid.UUID
}

func NewReviewService(db *gorm.DB, progRepo repository.ProgressRepository, wordRepo repository.WordRepository, cfg *config.Config, clk clock.Clock) ReviewService {
	return &reviewService{
		db:          db,
		progRepo:    progRepo,
		wordRepo:    wordRepo,
		cfg:         cfg,
		clk:         clk,
		subscribers: make(map[chan struct{}]uuid.UUID),
	}
}

func (s *reviewService) GetReviewBatch(ctx context.Context, tenantID uuid.UUID, limit int) ([]*scheduler.Item, *time.Time, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	if limit <= 0 {
		limit = s.cfg.App.ReviewLimit
	}

	// 期限判定は1バッチにつき1回だけ時計を読む
	now := s.clk.Now()
	dueBefore := now.Add(s.cfg.ReviewBuffer())

	progresses, err := s.progRepo.FindDueByTenant(ctx, s.db, tenantID, dueBefore, limit)
	if err != nil {
		logger.Error("Failed to find due words from repository", "error", err)
		return nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習単語の取得に失敗しました。", "", err)
	}

	if len(progresses) == 0 {
		next, err := s.progRepo.FindNextUpcoming(ctx, s.db, tenantID, dueBefore)
		if err != nil {
			logger.Error("Failed to find next upcoming review", "error", err)
			return nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "次回復習日時の取得に失敗しました。", "", err)
		}
		logger.Info("No due words for review")
		return nil, next, nil
	}

	// 誤答選択肢の素材。ノート全体の意味（第1層）と単語帳サンプル（第2層）は
	// バッチ単位で1回だけ取得する。
	notebook, err := s.progRepo.FindNotebookByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Failed to load notebook for distractors", "error", err)
		return nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "選択肢の生成に失敗しました。", "", err)
	}
	globalMeanings, err := s.wordRepo.SampleDefinitions(ctx, s.db, tenantID, uuid.Nil, s.cfg.App.DistractorCount*10)
	if err != nil {
		logger.Error("Failed to sample definitions for distractors", "error", err)
		return nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "選択肢の生成に失敗しました。", "", err)
	}

	r := rand.New(rand.NewSource(now.UnixNano()))

	items := make([]*scheduler.Item, 0, len(progresses))
	for _, p := range progresses {
		if p.Word == nil {
			// 単語本体が消えている進捗はスキップして出題を続行する
			logger.Warn("Found progress with nil Word during batch generation, skipping", "progress_id", p.ProgressID)
			continue
		}

		notebookMeanings := make([]string, 0, len(notebook))
		for _, other := range notebook {
			if other.WordID == p.WordID || other.Word == nil {
				continue
			}
			notebookMeanings = append(notebookMeanings, other.Word.Definition)
		}

		distractors := scheduler.PickDistractors(r, p.Word.Definition, notebookMeanings, globalMeanings, scheduler.BackupMeanings, s.cfg.App.DistractorCount)
		options := scheduler.ShuffleOptions(r, distractors, p.Word.Definition)

		items = append(items, scheduler.NewItem(p.WordID, p.Word.Term, p.Word.Definition, p.Word.ExampleSentence, distractors, options))
	}

	logger.Info("Review batch generated", "count", len(items))
	return items, nil, nil
}

func (s *reviewService) GetReviewStats(ctx context.Context, tenantID uuid.UUID) (*model.ReviewStatsResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	now := s.clk.Now()
	dueBefore := now.Add(s.cfg.ReviewBuffer())

	notebook, err := s.progRepo.FindNotebookByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Failed to load notebook for stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の取得に失敗しました。", "", err)
	}

	stats := &model.ReviewStatsResponse{TotalWordsInNotebook: len(notebook)}
	for _, p := range notebook {
		switch p.Level {
		case model.Level1:
			stats.Level1Count++
		case model.Level2:
			stats.Level2Count++
		case model.Level3:
			stats.Level3Count++
		case model.Level4:
			stats.Level4Count++
		case model.Level5:
			stats.Level5Count++
		}
		// DueCount はバッチ取得と同じフィルタで数える（表示と出題の一致）
		if !p.NextReviewDate.After(dueBefore) {
			stats.DueCount++
		}
	}

	next, err := s.progRepo.FindNextUpcoming(ctx, s.db, tenantID, dueBefore)
	if err != nil {
		logger.Error("Failed to find next upcoming review for stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の取得に失敗しました。", "", err)
	}
	stats.NextReviewAt = next

	return stats, nil
}

func (s *reviewService) ApplySessionOutcomes(ctx context.Context, tenantID uuid.UUID, outcomes []scheduler.Outcome) (int, time.Time, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	// バッチ全体に同一の終了時刻を使う。正時への切り上げで
	// 「あと何時間」のカウントダウン表示が切りの良い値になる。
	finishTime := scheduler.CeilHour(s.clk.Now())

	persisted := 0
	for _, outcome := range outcomes {
		if err := s.applyOutcome(ctx, tenantID, outcome, finishTime); err != nil {
			// 1件目の失敗はリトライ。それでも失敗したら、そのアイテムだけ諦めて続行する。
			logger.Warn("Failed to persist outcome, retrying", "word_id", outcome.WordID, "error", err)
			if err := s.applyOutcome(ctx, tenantID, outcome, finishTime); err != nil {
				logger.Error("Failed to persist outcome after retry, skipping", "word_id", outcome.WordID, "error", err)
				continue
			}
		}
		persisted++
	}

	logger.Info("Session outcomes applied", "persisted", persisted, "total", len(outcomes), "finish_time", finishTime)
	s.notifyStats(tenantID)
	return persisted, finishTime, nil
}

// applyOutcome は1単語分の進捗更新。アイテムごとに独立したトランザクションで行い、
// 失敗しても他のアイテムの保存に影響させない。
func (s *reviewService) applyOutcome(ctx context.Context, tenantID uuid.UUID, outcome scheduler.Outcome, finishTime time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progress, err := s.progRepo.FindByWordID(ctx, tx, tenantID, outcome.WordID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				// セッション中に単語が消された。保存対象なし。
				return model.ErrNotFound
			}
			return err
		}

		newLevel := scheduler.NextLevel(progress.Level, outcome.Correct)
		progress.Level = newLevel
		// 次回期限は必ず終了時刻が起点。古い期限からの加算はしない。
		progress.NextReviewDate = scheduler.NextReviewDate(newLevel, finishTime)
		progress.LastReviewedAt = &finishTime
		if outcome.Correct {
			progress.CorrectCount++
		} else {
			progress.WrongCount++
		}

		return s.progRepo.Update(ctx, tx, progress)
	})
}

func (s *reviewService) ResetAllProgress(ctx context.Context, tenantID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.progRepo.ResetAllByTenant(ctx, tx, tenantID, s.clk.Now())
	})
	if err != nil {
		logger.Error("Failed to reset all progress", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗のリセットに失敗しました。", "", err)
	}

	logger.Info("All progress reset to level 1")
	s.notifyStats(tenantID)
	return nil
}

func (s *reviewService) ClearProgress(ctx context.Context, tenantID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.progRepo.DeleteByTenant(ctx, tx, tenantID)
	})
	if err != nil {
		logger.Error("Failed to clear progress", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の削除に失敗しました。", "", err)
	}

	logger.Info("All progress cleared")
	s.notifyStats(tenantID)
	return nil
}

func (s *reviewService) SubscribeStats(tenantID uuid.UUID) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	s.mu.Lock()
	s.subscribers[ch] = tenantID
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subscribers, ch)
		s.mu.Unlock()
	}
	return ch, cancel
}

// notifyStats は対象テナントの購読者へ更新通知を送ります。
// 受信が追いついていない購読者はスキップする（最新を1回拾えば十分なため）。
func (s *reviewService) notifyStats(tenantID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch, id := range s.subscribers {
		if id != tenantID {
			continue
		}
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
