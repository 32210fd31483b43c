// internal/scheduler/anki.go
package scheduler

import (
	"math"
	"time"

	"go_vocab_review/internal/model"
)

// フラッシュカード学習フロー用の Anki 方式（修正SM-2）スケジューラ。
// 復習機能の5段階テーブルとは独立して動く。

// learningSteps は LEARNING / RELEARNING 内の出題間隔
var learningSteps = []time.Duration{1 * time.Minute, 10 * time.Minute}

const (
	graduatingIntervalDays = 1 // learning 完了時の初回間隔
	easyIntervalDays       = 4 // Easy で即卒業した場合の間隔
	lapseIntervalDays      = 1 // 忘却後に復帰した際のリセット間隔

	minEaseFactor      = 1.3
	hardMultiplier     = 1.2
	easyBonusMultiplier = 1.3
	lapseEasePenalty    = 0.85 // 忘却時に ease を15%減らす
)

// ScheduleAnkiCard は自己採点結果から次のスケジュールを計算します。
// now を起点に次回出題日時を再計算する（値渡しで新しい進捗を返す）。
func ScheduleAnkiCard(p model.AnkiProgress, quality model.ReviewQuality, now time.Time) model.AnkiProgress {
	switch p.State {
	case model.AnkiStateLearning:
		return scheduleLearning(p, quality, now)
	case model.AnkiStateReview:
		return scheduleReview(p, quality, now)
	case model.AnkiStateRelearning:
		return scheduleRelearning(p, quality, now)
	default:
		return scheduleNew(p, quality, now)
	}
}

func scheduleNew(p model.AnkiProgress, quality model.ReviewQuality, now time.Time) model.AnkiProgress {
	p.ReviewCount++
	p.LastReviewedAt = &now

	switch quality {
	case model.QualityEasy:
		// 即卒業して REVIEW へ
		return graduate(p, easyIntervalDays, now)
	case model.QualityGood:
		p.State = model.AnkiStateLearning
		p.LearningStep = 1
		return withStepDue(p, now)
	default: // Again / Hard は最初のステップから
		p.State = model.AnkiStateLearning
		p.LearningStep = 0
		return withStepDue(p, now)
	}
}

func scheduleLearning(p model.AnkiProgress, quality model.ReviewQuality, now time.Time) model.AnkiProgress {
	p.ReviewCount++
	p.LastReviewedAt = &now

	switch quality {
	case model.QualityAgain:
		p.LearningStep = 0
		return withStepDue(p, now)
	case model.QualityHard:
		// 現在のステップに留まる
		return withStepDue(p, now)
	case model.QualityEasy:
		return graduate(p, easyIntervalDays, now)
	default: // Good
		if p.LearningStep < len(learningSteps)-1 {
			p.LearningStep++
			return withStepDue(p, now)
		}
		return graduate(p, graduatingIntervalDays, now)
	}
}

func scheduleReview(p model.AnkiProgress, quality model.ReviewQuality, now time.Time) model.AnkiProgress {
	p.ReviewCount++
	p.LastReviewedAt = &now

	if quality == model.QualityAgain {
		// 忘却: RELEARNING へ落とす
		p.State = model.AnkiStateRelearning
		p.LearningStep = 0
		p.Lapses++
		p.Learned = false
		return withStepDue(p, now)
	}

	// SM-2 の ease factor 更新 (q: Hard=1, Good=2, Easy=3)
	q := qualityScore(quality)
	ease := p.EaseFactor + (0.1 - float64(3-q)*(0.08+float64(3-q)*0.02))
	if ease < minEaseFactor {
		ease = minEaseFactor
	}
	p.EaseFactor = ease

	var multiplier float64
	switch quality {
	case model.QualityHard:
		multiplier = hardMultiplier
	case model.QualityEasy:
		multiplier = ease * easyBonusMultiplier
	default:
		multiplier = ease
	}

	interval := math.Round(p.IntervalDays * multiplier)
	if interval < 1 {
		interval = 1
	}
	p.IntervalDays = interval
	return withDayDue(p, interval, now)
}

func scheduleRelearning(p model.AnkiProgress, quality model.ReviewQuality, now time.Time) model.AnkiProgress {
	p.ReviewCount++
	p.LastReviewedAt = &now

	switch quality {
	case model.QualityAgain:
		p.LearningStep = 0
		return withStepDue(p, now)
	case model.QualityHard:
		return withStepDue(p, now)
	case model.QualityEasy:
		p.EaseFactor = penalizedEase(p.EaseFactor)
		return graduate(p, easyIntervalDays, now)
	default: // Good
		if p.LearningStep < len(learningSteps)-1 {
			p.LearningStep++
			return withStepDue(p, now)
		}
		// ease を減らした上で REVIEW に復帰
		p.EaseFactor = penalizedEase(p.EaseFactor)
		return graduate(p, lapseIntervalDays, now)
	}
}

func graduate(p model.AnkiProgress, intervalDays float64, now time.Time) model.AnkiProgress {
	p.State = model.AnkiStateReview
	p.IntervalDays = intervalDays
	p.Learned = true
	return withDayDue(p, intervalDays, now)
}

func withStepDue(p model.AnkiProgress, now time.Time) model.AnkiProgress {
	step := p.LearningStep
	if step >= len(learningSteps) {
		step = len(learningSteps) - 1
	}
	due := now.Add(learningSteps[step])
	p.NextReviewDate = &due
	return p
}

func withDayDue(p model.AnkiProgress, days float64, now time.Time) model.AnkiProgress {
	due := now.Add(time.Duration(days * 24 * float64(time.Hour)))
	p.NextReviewDate = &due
	return p
}

func penalizedEase(ease float64) float64 {
	ease *= lapseEasePenalty
	if ease < minEaseFactor {
		return minEaseFactor
	}
	return ease
}

func qualityScore(quality model.ReviewQuality) int {
	switch quality {
	case model.QualityAgain:
		return 0
	case model.QualityHard:
		return 1
	case model.QualityGood:
		return 2
	default:
		return 3
	}
}
