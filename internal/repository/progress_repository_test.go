// internal/repository/progress_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"go_vocab_review/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Word{}, &model.LearningProgress{}))
	return db
}

// seedWord は単語と進捗を1組登録するテストヘルパー
func seedWord(t *testing.T, db *gorm.DB, tenantID uuid.UUID, term string, level model.ProgressLevel, learned, knownAlready bool, nextReview time.Time) *model.LearningProgress {
	t.Helper()
	word := &model.Word{
		WordID:     uuid.New(),
		TenantID:   tenantID,
		Term:       term,
		Definition: term + "の意味",
	}
	require.NoError(t, db.Create(word).Error)

	progress := &model.LearningProgress{
		ProgressID:     uuid.New(),
		TenantID:       tenantID,
		WordID:         word.WordID,
		Level:          level,
		Learned:        learned,
		KnownAlready:   knownAlready,
		NextReviewDate: nextReview,
	}
	require.NoError(t, db.Create(progress).Error)
	return progress
}

func TestGormProgressRepository_FindDueByTenant(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormProgressRepository()
	tenantID := uuid.New()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	// 段位1を先頭に出すための混在データ。期限はどれも到来済み。
	oldLevel3 := seedWord(t, db, tenantID, "old-level3", model.Level3, true, false, now.Add(-48*time.Hour))
	newLevel1 := seedWord(t, db, tenantID, "new-level1", model.Level1, true, false, now.Add(-1*time.Hour))
	midLevel2 := seedWord(t, db, tenantID, "mid-level2", model.Level2, true, false, now.Add(-24*time.Hour))

	// 対象外: 期限が未来 / 未学習 / 「知っている」申告済み / 他テナント
	seedWord(t, db, tenantID, "future", model.Level2, true, false, now.Add(2*time.Hour))
	seedWord(t, db, tenantID, "not-learned", model.Level1, false, false, now.Add(-1*time.Hour))
	seedWord(t, db, tenantID, "known", model.Level5, true, true, now.Add(-1*time.Hour))
	seedWord(t, db, uuid.New(), "other-tenant", model.Level1, true, false, now.Add(-1*time.Hour))

	progresses, err := repo.FindDueByTenant(ctx, db, tenantID, now, 10)

	require.NoError(t, err)
	require.Len(t, progresses, 3)
	// 段位1が先頭、残りは期限の古い順
	assert.Equal(t, newLevel1.WordID, progresses[0].WordID)
	assert.Equal(t, oldLevel3.WordID, progresses[1].WordID)
	assert.Equal(t, midLevel2.WordID, progresses[2].WordID)
	// 出題素材の Word が読み込まれている
	require.NotNil(t, progresses[0].Word)
	assert.Equal(t, "new-level1", progresses[0].Word.Term)
}

func TestGormProgressRepository_FindDueByTenant_Limit(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormProgressRepository()
	tenantID := uuid.New()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		seedWord(t, db, tenantID, "word", model.Level2, true, false, now.Add(-time.Duration(i)*time.Hour))
	}

	progresses, err := repo.FindDueByTenant(ctx, db, tenantID, now, 5)

	require.NoError(t, err)
	assert.Len(t, progresses, 5)
}

func TestGormProgressRepository_FindDueByTenant_SkipsDeletedWords(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormProgressRepository()
	tenantID := uuid.New()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	alive := seedWord(t, db, tenantID, "alive", model.Level2, true, false, now.Add(-1*time.Hour))
	deleted := seedWord(t, db, tenantID, "deleted", model.Level2, true, false, now.Add(-2*time.Hour))
	require.NoError(t, db.Where("word_id = ?", deleted.WordID).Delete(&model.Word{}).Error)

	progresses, err := repo.FindDueByTenant(ctx, db, tenantID, now, 10)

	require.NoError(t, err)
	require.Len(t, progresses, 1)
	assert.Equal(t, alive.WordID, progresses[0].WordID)
}

func TestGormProgressRepository_FindNextUpcoming(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormProgressRepository()
	tenantID := uuid.New()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	t.Run("最も近い未来の期限を返す", func(t *testing.T) {
		seedWord(t, db, tenantID, "near", model.Level2, true, false, now.Add(3*time.Hour))
		seedWord(t, db, tenantID, "far", model.Level3, true, false, now.Add(48*time.Hour))
		seedWord(t, db, tenantID, "past", model.Level1, true, false, now.Add(-1*time.Hour))

		next, err := repo.FindNextUpcoming(ctx, db, tenantID, now)

		require.NoError(t, err)
		require.NotNil(t, next)
		assert.True(t, next.Equal(now.Add(3*time.Hour)))
	})

	t.Run("未来の期限が無ければ nil を返す", func(t *testing.T) {
		next, err := repo.FindNextUpcoming(ctx, db, uuid.New(), now)

		require.NoError(t, err)
		assert.Nil(t, next)
	})
}

func TestGormProgressRepository_FindByWordID(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormProgressRepository()
	tenantID := uuid.New()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	seeded := seedWord(t, db, tenantID, "cat", model.Level2, true, false, now)

	t.Run("正常系", func(t *testing.T) {
		progress, err := repo.FindByWordID(ctx, db, tenantID, seeded.WordID)

		require.NoError(t, err)
		assert.Equal(t, seeded.ProgressID, progress.ProgressID)
		require.NotNil(t, progress.Word)
		assert.Equal(t, "cat", progress.Word.Term)
	})

	t.Run("異常系: 存在しない単語ID", func(t *testing.T) {
		_, err := repo.FindByWordID(ctx, db, tenantID, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 他テナントからは見えない", func(t *testing.T) {
		_, err := repo.FindByWordID(ctx, db, uuid.New(), seeded.WordID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestGormProgressRepository_ResetAllByTenant(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormProgressRepository()
	tenantID := uuid.New()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	seeded := seedWord(t, db, tenantID, "cat", model.Level4, true, false, now.Add(7*24*time.Hour))
	require.NoError(t, db.Model(&model.LearningProgress{}).
		Where("progress_id = ?", seeded.ProgressID).
		Updates(map[string]interface{}{"correct_count": 9, "wrong_count": 4}).Error)
	other := seedWord(t, db, uuid.New(), "other", model.Level5, true, false, now.Add(10*24*time.Hour))

	require.NoError(t, repo.ResetAllByTenant(ctx, db, tenantID, now))

	var reset model.LearningProgress
	require.NoError(t, db.First(&reset, "progress_id = ?", seeded.ProgressID).Error)
	assert.Equal(t, model.Level1, reset.Level)
	assert.True(t, reset.NextReviewDate.Equal(now))
	assert.Equal(t, 0, reset.CorrectCount)
	assert.Equal(t, 0, reset.WrongCount)

	// 他テナントの進捗は触らない
	var untouched model.LearningProgress
	require.NoError(t, db.First(&untouched, "progress_id = ?", other.ProgressID).Error)
	assert.Equal(t, model.Level5, untouched.Level)
}

func TestGormProgressRepository_DeleteByTenant(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormProgressRepository()
	tenantID := uuid.New()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	seedWord(t, db, tenantID, "cat", model.Level2, true, false, now)
	seedWord(t, db, tenantID, "dog", model.Level3, true, false, now)
	other := seedWord(t, db, uuid.New(), "other", model.Level2, true, false, now)

	require.NoError(t, repo.DeleteByTenant(ctx, db, tenantID))

	var count int64
	require.NoError(t, db.Model(&model.LearningProgress{}).Where("tenant_id = ?", tenantID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	require.NoError(t, db.Model(&model.LearningProgress{}).Where("tenant_id = ?", other.TenantID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
