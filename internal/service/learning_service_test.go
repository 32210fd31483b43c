// internal/service/learning_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"go_vocab_review/internal/clock"
	"go_vocab_review/internal/model"
	"go_vocab_review/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLearningService_GradeCard(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview(t)
	tenantID := uuid.New()
	wordID := uuid.New()
	word := &model.Word{WordID: wordID, TenantID: tenantID, Term: "cat", Definition: "猫"}
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	t.Run("正常系: 初回採点はカードを新規作成する", func(t *testing.T) {
		mockAnkiRepo := new(mocks.AnkiRepository)
		mockWordRepo := new(mocks.WordRepository)
		svc := NewLearningService(db, mockAnkiRepo, mockWordRepo, clock.NewFixed(now))

		var created *model.AnkiProgress
		mockWordRepo.On("FindByID", mock.Anything, mock.Anything, tenantID, wordID).Return(word, nil).Once()
		mockAnkiRepo.On("FindByWordID", mock.Anything, mock.Anything, tenantID, wordID).Return(nil, model.ErrNotFound).Once()
		mockAnkiRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.AnkiProgress")).Run(func(args mock.Arguments) {
			created = args.Get(2).(*model.AnkiProgress)
		}).Return(nil).Once()

		resp, err := svc.GradeCard(ctx, tenantID, wordID, model.QualityGood)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, model.AnkiStateLearning, created.State)
		assert.Equal(t, "learning", resp.State)
		require.NotNil(t, resp.NextReviewDate)
		assert.Equal(t, now.Add(10*time.Minute), *resp.NextReviewDate)
		mockAnkiRepo.AssertExpectations(t)
	})

	t.Run("正常系: 既存カードはスケジュールを更新する", func(t *testing.T) {
		mockAnkiRepo := new(mocks.AnkiRepository)
		mockWordRepo := new(mocks.WordRepository)
		svc := NewLearningService(db, mockAnkiRepo, mockWordRepo, clock.NewFixed(now))

		existing := &model.AnkiProgress{
			ProgressID:   uuid.New(),
			TenantID:     tenantID,
			WordID:       wordID,
			State:        model.AnkiStateReview,
			IntervalDays: 10,
			EaseFactor:   2.5,
		}
		mockWordRepo.On("FindByID", mock.Anything, mock.Anything, tenantID, wordID).Return(word, nil).Once()
		mockAnkiRepo.On("FindByWordID", mock.Anything, mock.Anything, tenantID, wordID).Return(existing, nil).Once()
		mockAnkiRepo.On("Update", mock.Anything, mock.Anything, mock.AnythingOfType("*model.AnkiProgress")).Return(nil).Once()

		resp, err := svc.GradeCard(ctx, tenantID, wordID, model.QualityGood)

		require.NoError(t, err)
		assert.Equal(t, "review", resp.State)
		assert.Equal(t, float64(25), resp.IntervalDays)
		mockAnkiRepo.AssertExpectations(t)
	})

	t.Run("異常系: 単語が存在しない", func(t *testing.T) {
		mockAnkiRepo := new(mocks.AnkiRepository)
		mockWordRepo := new(mocks.WordRepository)
		svc := NewLearningService(db, mockAnkiRepo, mockWordRepo, clock.NewFixed(now))

		mockWordRepo.On("FindByID", mock.Anything, mock.Anything, tenantID, wordID).Return(nil, model.ErrNotFound).Once()

		_, err := svc.GradeCard(ctx, tenantID, wordID, model.QualityGood)

		assert.ErrorIs(t, err, model.ErrNotFound)
		mockAnkiRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLearningService_GetCounts(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview(t)
	tenantID := uuid.New()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	mockAnkiRepo := new(mocks.AnkiRepository)
	svc := NewLearningService(db, mockAnkiRepo, new(mocks.WordRepository), clock.NewFixed(now))

	mockAnkiRepo.On("CountWithoutProgress", mock.Anything, mock.Anything, tenantID).Return(int64(7), nil).Once()
	mockAnkiRepo.On("CountByState", mock.Anything, mock.Anything, tenantID, model.AnkiStateLearning).Return(int64(2), nil).Once()
	mockAnkiRepo.On("CountByState", mock.Anything, mock.Anything, tenantID, model.AnkiStateRelearning).Return(int64(1), nil).Once()
	mockAnkiRepo.On("CountDue", mock.Anything, mock.Anything, tenantID, now).Return(int64(4), nil).Once()

	counts, err := svc.GetCounts(ctx, tenantID)

	require.NoError(t, err)
	assert.Equal(t, 7, counts.NewCount)
	assert.Equal(t, 3, counts.LearningCount, "learning と relearning を合算すること")
	assert.Equal(t, 4, counts.DueCount)
	mockAnkiRepo.AssertExpectations(t)
}
