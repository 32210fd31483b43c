// internal/service/learning_service.go
package service

import (
	"context"
	"errors"

	"go_vocab_review/internal/clock"
	"go_vocab_review/internal/middleware"
	"go_vocab_review/internal/model"
	"go_vocab_review/internal/repository"
	"go_vocab_review/internal/scheduler"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LearningService はフラッシュカード学習フロー（Anki方式）のスケジューリングを担います。
// 復習機能の5段階テーブルとは完全に独立して動く。
type LearningService interface {
	GradeCard(ctx context.Context, tenantID, wordID uuid.UUID, quality model.ReviewQuality) (*model.GradeCardResponse, error)
	GetCounts(ctx context.Context, tenantID uuid.UUID) (*model.LearningCountsResponse, error)
}

type learningService struct {
	db       *gorm.DB
	ankiRepo repository.AnkiRepository
	wordRepo repository.WordRepository
	clk      clock.Clock
}

func NewLearningService(db *gorm.DB, ankiRepo repository.AnkiRepository, wordRepo repository.WordRepository, clk clock.Clock) LearningService {
	return &learningService{
		db:       db,
		ankiRepo: ankiRepo,
		wordRepo: wordRepo,
		clk:      clk,
	}
}

func (s *learningService) GradeCard(ctx context.Context, tenantID, wordID uuid.UUID, quality model.ReviewQuality) (*model.GradeCardResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "word_id", wordID)

	var scheduled model.AnkiProgress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.wordRepo.FindByID(ctx, tx, tenantID, wordID); err != nil {
			return err
		}

		now := s.clk.Now()
		progress, err := s.ankiRepo.FindByWordID(ctx, tx, tenantID, wordID)
		if errors.Is(err, model.ErrNotFound) {
			// 初回採点。カードを新規作成してからスケジュールする。
			fresh := model.AnkiProgress{
				ProgressID: uuid.New(),
				TenantID:   tenantID,
				WordID:     wordID,
				State:      model.AnkiStateNew,
				EaseFactor: 2.5,
			}
			scheduled = scheduler.ScheduleAnkiCard(fresh, quality, now)
			if createErr := s.ankiRepo.Create(ctx, tx, &scheduled); createErr != nil {
				logger.Error("Error creating anki progress", "error", createErr)
				return model.ErrInternalServer
			}
			return nil
		}
		if err != nil {
			logger.Error("Error finding anki progress", "error", err)
			return model.ErrInternalServer
		}

		scheduled = scheduler.ScheduleAnkiCard(*progress, quality, now)
		if updateErr := s.ankiRepo.Update(ctx, tx, &scheduled); updateErr != nil {
			logger.Error("Error updating anki progress", "error", updateErr)
			return model.ErrInternalServer
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Card graded", "quality", quality, "state", scheduled.State, "interval_days", scheduled.IntervalDays)
	return &model.GradeCardResponse{
		State:          string(scheduled.State),
		IntervalDays:   scheduled.IntervalDays,
		EaseFactor:     scheduled.EaseFactor,
		NextReviewDate: scheduled.NextReviewDate,
	}, nil
}

func (s *learningService) GetCounts(ctx context.Context, tenantID uuid.UUID) (*model.LearningCountsResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	newCount, err := s.ankiRepo.CountWithoutProgress(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Error counting new cards", "error", err)
		return nil, model.ErrInternalServer
	}
	learningCount, err := s.ankiRepo.CountByState(ctx, s.db, tenantID, model.AnkiStateLearning)
	if err != nil {
		logger.Error("Error counting learning cards", "error", err)
		return nil, model.ErrInternalServer
	}
	relearningCount, err := s.ankiRepo.CountByState(ctx, s.db, tenantID, model.AnkiStateRelearning)
	if err != nil {
		logger.Error("Error counting relearning cards", "error", err)
		return nil, model.ErrInternalServer
	}
	dueCount, err := s.ankiRepo.CountDue(ctx, s.db, tenantID, s.clk.Now())
	if err != nil {
		logger.Error("Error counting due cards", "error", err)
		return nil, model.ErrInternalServer
	}

	return &model.LearningCountsResponse{
		NewCount:      int(newCount),
		LearningCount: int(learningCount + relearningCount),
		DueCount:      int(dueCount),
	}, nil
}
