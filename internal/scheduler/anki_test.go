// internal/scheduler/anki_test.go
package scheduler

import (
	"testing"
	"time"

	"go_vocab_review/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ankiNow = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

func newCard(state model.AnkiState) model.AnkiProgress {
	return model.AnkiProgress{
		State:      state,
		EaseFactor: 2.5,
	}
}

func TestScheduleAnkiCard_NewCard(t *testing.T) {
	tests := []struct {
		name      string
		quality   model.ReviewQuality
		wantState model.AnkiState
		wantStep  int
		wantDue   time.Time
	}{
		{
			name:      "Again: LEARNING のステップ0へ",
			quality:   model.QualityAgain,
			wantState: model.AnkiStateLearning,
			wantStep:  0,
			wantDue:   ankiNow.Add(1 * time.Minute),
		},
		{
			name:      "Good: ステップ1（10分後）へ進む",
			quality:   model.QualityGood,
			wantState: model.AnkiStateLearning,
			wantStep:  1,
			wantDue:   ankiNow.Add(10 * time.Minute),
		},
		{
			name:      "Easy: 即卒業して4日後",
			quality:   model.QualityEasy,
			wantState: model.AnkiStateReview,
			wantDue:   ankiNow.Add(4 * 24 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScheduleAnkiCard(newCard(model.AnkiStateNew), tt.quality, ankiNow)

			assert.Equal(t, tt.wantState, got.State)
			if got.State == model.AnkiStateLearning {
				assert.Equal(t, tt.wantStep, got.LearningStep)
			}
			require.NotNil(t, got.NextReviewDate)
			assert.Equal(t, tt.wantDue, *got.NextReviewDate)
			assert.Equal(t, 1, got.ReviewCount)
		})
	}
}

func TestScheduleAnkiCard_LearningGraduation(t *testing.T) {
	card := newCard(model.AnkiStateLearning)
	card.LearningStep = 1 // 最終ステップ

	got := ScheduleAnkiCard(card, model.QualityGood, ankiNow)

	assert.Equal(t, model.AnkiStateReview, got.State)
	assert.Equal(t, float64(1), got.IntervalDays)
	assert.True(t, got.Learned)
	require.NotNil(t, got.NextReviewDate)
	assert.Equal(t, ankiNow.Add(24*time.Hour), *got.NextReviewDate)
}

func TestScheduleAnkiCard_LearningAgainResetsStep(t *testing.T) {
	card := newCard(model.AnkiStateLearning)
	card.LearningStep = 1

	got := ScheduleAnkiCard(card, model.QualityAgain, ankiNow)

	assert.Equal(t, model.AnkiStateLearning, got.State)
	assert.Equal(t, 0, got.LearningStep)
	require.NotNil(t, got.NextReviewDate)
	assert.Equal(t, ankiNow.Add(1*time.Minute), *got.NextReviewDate)
}

func TestScheduleAnkiCard_ReviewIntervalGrowth(t *testing.T) {
	card := newCard(model.AnkiStateReview)
	card.IntervalDays = 10

	t.Run("Good: ease 倍で間隔が伸びる", func(t *testing.T) {
		got := ScheduleAnkiCard(card, model.QualityGood, ankiNow)

		// q=2 の SM-2 更新: 2.5 + (0.1 - 1*(0.08+1*0.02)) = 2.5
		assert.InDelta(t, 2.5, got.EaseFactor, 0.001)
		assert.Equal(t, float64(25), got.IntervalDays)
	})

	t.Run("Hard: ease が下がり間隔は1.2倍に留まる", func(t *testing.T) {
		got := ScheduleAnkiCard(card, model.QualityHard, ankiNow)

		// q=1: 2.5 + (0.1 - 2*(0.08+2*0.02)) = 2.36
		assert.InDelta(t, 2.36, got.EaseFactor, 0.001)
		assert.Equal(t, float64(12), got.IntervalDays)
	})

	t.Run("Easy: ease 上昇＋ボーナス倍率", func(t *testing.T) {
		got := ScheduleAnkiCard(card, model.QualityEasy, ankiNow)

		// q=3: 2.5 + 0.1 = 2.6、間隔は 10 * 2.6 * 1.3 = 34
		assert.InDelta(t, 2.6, got.EaseFactor, 0.001)
		assert.Equal(t, float64(34), got.IntervalDays)
	})
}

func TestScheduleAnkiCard_ReviewLapse(t *testing.T) {
	card := newCard(model.AnkiStateReview)
	card.IntervalDays = 20
	card.Learned = true

	got := ScheduleAnkiCard(card, model.QualityAgain, ankiNow)

	assert.Equal(t, model.AnkiStateRelearning, got.State)
	assert.Equal(t, 0, got.LearningStep)
	assert.Equal(t, 1, got.Lapses)
	assert.False(t, got.Learned)
	require.NotNil(t, got.NextReviewDate)
	assert.Equal(t, ankiNow.Add(1*time.Minute), *got.NextReviewDate)
}

func TestScheduleAnkiCard_RelearningRecovery(t *testing.T) {
	card := newCard(model.AnkiStateRelearning)
	card.LearningStep = 1
	card.EaseFactor = 2.0

	got := ScheduleAnkiCard(card, model.QualityGood, ankiNow)

	// ease に15%のペナルティを受けて REVIEW に復帰、間隔は1日にリセット
	assert.Equal(t, model.AnkiStateReview, got.State)
	assert.InDelta(t, 1.7, got.EaseFactor, 0.001)
	assert.Equal(t, float64(1), got.IntervalDays)
}

func TestScheduleAnkiCard_EaseFactorFloor(t *testing.T) {
	card := newCard(model.AnkiStateReview)
	card.IntervalDays = 5
	card.EaseFactor = 1.3

	got := ScheduleAnkiCard(card, model.QualityHard, ankiNow)

	assert.Equal(t, 1.3, got.EaseFactor, "ease factor は1.3を下回らないこと")
}

func TestScheduleAnkiCard_MinimumInterval(t *testing.T) {
	card := newCard(model.AnkiStateReview)
	card.IntervalDays = 0 // 旧データなどで間隔が未設定の場合

	got := ScheduleAnkiCard(card, model.QualityGood, ankiNow)

	assert.GreaterOrEqual(t, got.IntervalDays, float64(1), "REVIEW の間隔は最低1日")
}
