//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
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

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error
	FindByWordID(ctx context.Context, db *gorm.DB, tenantID, wordID uuid.UUID) (*model.LearningProgress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error
	// FindDueByTenant は dueBefore までに期限が来ているノート内の単語を返します。
	// 段位1（新規・失敗直後）を先頭に、残りは期限の古い順。
	FindDueByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, dueBefore time.Time, limit int) ([]*model.LearningProgress, error)
	// FindNotebookByTenant はノート（学習済みかつ「知っている」申告なし）の全進捗を返します
	FindNotebookByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.LearningProgress, error)
	// FindNextUpcoming は after より後で最も近い復習期限を返します。無ければ nil。
	FindNextUpcoming(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, after time.Time) (*time.Time, error)
	// ResetAllByTenant は全進捗を段位1・期限即時に戻し、通算カウンタをゼロにします
	ResetAllByTenant(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, now time.Time) error
	DeleteByWordID(ctx context.Context, tx *gorm.DB, tenantID, wordID uuid.UUID) error
	DeleteByTenant(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		logger.Error("Error creating progress in DB",
			"error", result.Error,
			"tenant_id", progress.TenantID.String(),
			"word_id", progress.WordID.String(),
		)
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) FindByWordID(ctx context.Context, db *gorm.DB, tenantID, wordID uuid.UUID) (*model.LearningProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.LearningProgress
	result := db.WithContext(ctx).Preload("Word").
		Where("tenant_id = ? AND word_id = ?", tenantID, wordID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding progress by word ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindByWordID: %w", result.Error)
	}
	// Preloadした単語が論理削除済みなら進捗も無効とみなす
	if progress.Word != nil && progress.Word.DeletedAt.Valid {
		return nil, model.ErrNotFound
	}
	return &progress, nil
}

func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(progress)
	if result.Error != nil {
		logger.Error("Error updating progress in DB",
			"error", result.Error,
			"progress_id", progress.ProgressID.String(),
		)
		return fmt.Errorf("gormProgressRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) FindDueByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, dueBefore time.Time, limit int) ([]*model.LearningProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progresses []*model.LearningProgress

	result := db.WithContext(ctx).
		Preload("Word", "deleted_at IS NULL").
		Joins("JOIN words ON words.word_id = learning_progress.word_id AND words.deleted_at IS NULL").
		Where("learning_progress.tenant_id = ?", tenantID).
		Where("learning_progress.learned = ? AND learning_progress.known_already = ?", true, false).
		Where("learning_progress.next_review_date <= ?", dueBefore).
		Order("CASE WHEN learning_progress.level = 1 THEN 0 ELSE 1 END, learning_progress.next_review_date ASC").
		Limit(limit).
		Find(&progresses)
	if result.Error != nil {
		logger.Error("Error finding due progresses in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindDueByTenant: %w", result.Error)
	}
	return progresses, nil
}

func (r *gormProgressRepository) FindNotebookByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.LearningProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progresses []*model.LearningProgress

	result := db.WithContext(ctx).
		Preload("Word", "deleted_at IS NULL").
		Joins("JOIN words ON words.word_id = learning_progress.word_id AND words.deleted_at IS NULL").
		Where("learning_progress.tenant_id = ?", tenantID).
		Where("learning_progress.learned = ? AND learning_progress.known_already = ?", true, false).
		Find(&progresses)
	if result.Error != nil {
		logger.Error("Error finding notebook progresses in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindNotebookByTenant: %w", result.Error)
	}
	return progresses, nil
}

func (r *gormProgressRepository) FindNextUpcoming(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, after time.Time) (*time.Time, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.LearningProgress

	result := db.WithContext(ctx).
		Joins("JOIN words ON words.word_id = learning_progress.word_id AND words.deleted_at IS NULL").
		Where("learning_progress.tenant_id = ?", tenantID).
		Where("learning_progress.learned = ? AND learning_progress.known_already = ?", true, false).
		Where("learning_progress.next_review_date > ?", after).
		Order("learning_progress.next_review_date ASC").
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Error("Error finding next upcoming review in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindNextUpcoming: %w", result.Error)
	}
	next := progress.NextReviewDate
	return &next, nil
}

func (r *gormProgressRepository) ResetAllByTenant(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, now time.Time) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.LearningProgress{}).
		Where("tenant_id = ?", tenantID).
		Updates(map[string]interface{}{
			"level":            model.Level1,
			"next_review_date": now,
			"correct_count":    0,
			"wrong_count":      0,
		})
	if result.Error != nil {
		logger.Error("Error resetting progresses in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return fmt.Errorf("gormProgressRepository.ResetAllByTenant: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) DeleteByWordID(ctx context.Context, tx *gorm.DB, tenantID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ? AND word_id = ?", tenantID, wordID).Delete(&model.LearningProgress{})
	if result.Error != nil {
		logger.Error("Error deleting progress in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormProgressRepository.DeleteByWordID: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) DeleteByTenant(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&model.LearningProgress{})
	if result.Error != nil {
		logger.Error("Error deleting progresses in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return fmt.Errorf("gormProgressRepository.DeleteByTenant: %w", result.Error)
	}
	return nil
}
