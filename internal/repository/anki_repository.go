//go:generate mockery --name AnkiRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_vocab_review/internal/middleware"
	"go_vocab_review/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnkiRepository はフラッシュカード学習フロー側のカード進捗を扱います
type AnkiRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.AnkiProgress) error
	FindByWordID(ctx context.Context, db *gorm.DB, tenantID, wordID uuid.UUID) (*model.AnkiProgress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *model.AnkiProgress) error
	CountByState(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, state model.AnkiState) (int64, error)
	CountDue(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, now time.Time) (int64, error)
	CountWithoutProgress(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (int64, error)
}

type gormAnkiRepository struct{}

func NewGormAnkiRepository() AnkiRepository {
	return &gormAnkiRepository{}
}

func (r *gormAnkiRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.AnkiProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		logger.Error("Error creating anki progress in DB",
			"error", result.Error,
			"tenant_id", progress.TenantID.String(),
			"word_id", progress.WordID.String(),
		)
		return fmt.Errorf("gormAnkiRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAnkiRepository) FindByWordID(ctx context.Context, db *gorm.DB, tenantID, wordID uuid.UUID) (*model.AnkiProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.AnkiProgress
	result := db.WithContext(ctx).Where("tenant_id = ? AND word_id = ?", tenantID, wordID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding anki progress in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormAnkiRepository.FindByWordID: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormAnkiRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.AnkiProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(progress)
	if result.Error != nil {
		logger.Error("Error updating anki progress in DB",
			"error", result.Error,
			"progress_id", progress.ProgressID.String(),
		)
		return fmt.Errorf("gormAnkiRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormAnkiRepository) CountByState(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, state model.AnkiState) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.AnkiProgress{}).
		Where("tenant_id = ? AND state = ?", tenantID, state).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormAnkiRepository.CountByState: %w", result.Error)
	}
	return count, nil
}

func (r *gormAnkiRepository) CountDue(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.AnkiProgress{}).
		Where("tenant_id = ? AND next_review_date IS NOT NULL AND next_review_date <= ?", tenantID, now).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormAnkiRepository.CountDue: %w", result.Error)
	}
	return count, nil
}

// CountWithoutProgress はまだ一度も学習していない単語（カード未作成）の数を返します
func (r *gormAnkiRepository) CountWithoutProgress(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Word{}).
		Where("tenant_id = ?", tenantID).
		Where("word_id NOT IN (?)",
			db.Model(&model.AnkiProgress{}).Select("word_id").Where("tenant_id = ?", tenantID),
		).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormAnkiRepository.CountWithoutProgress: %w", result.Error)
	}
	return count, nil
}
