// internal/model/anki.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// フラッシュカード学習フロー（Anki方式）のカード状態。
// 復習機能の5段階スケジューラとは独立したもう1つのスケジューラが使う。
type AnkiState string

const (
	AnkiStateNew        AnkiState = "new"
	AnkiStateLearning   AnkiState = "learning"
	AnkiStateReview     AnkiState = "review"
	AnkiStateRelearning AnkiState = "relearning"
)

// ReviewQuality は自己採点の4段階評価
type ReviewQuality string

const (
	QualityAgain ReviewQuality = "again" // 完全に忘れた
	QualityHard  ReviewQuality = "hard"  // なんとか思い出した
	QualityGood  ReviewQuality = "good"  // 普通に思い出した
	QualityEasy  ReviewQuality = "easy"  // 簡単だった
)

// ParseReviewQuality は文字列を ReviewQuality に変換します
func ParseReviewQuality(s string) (ReviewQuality, bool) {
	switch ReviewQuality(s) {
	case QualityAgain, QualityHard, QualityGood, QualityEasy:
		return ReviewQuality(s), true
	}
	return "", false
}

// AnkiProgress はフラッシュカード学習フローのカード別進捗
type AnkiProgress struct {
	ProgressID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID       uuid.UUID `gorm:"type:uuid;not null;index:idx_anki_tenant_word,unique"`
	WordID         uuid.UUID `gorm:"type:uuid;not null;index:idx_anki_tenant_word,unique"`
	State          AnkiState `gorm:"type:varchar(20);not null;default:'new'"`
	LearningStep   int       `gorm:"not null;default:0"`   // LEARNING/RELEARNING 内のステップ位置
	IntervalDays   float64   `gorm:"not null;default:0"`   // REVIEW 状態の間隔（日）
	EaseFactor     float64   `gorm:"not null;default:2.5"` // SM-2 の ease factor
	Lapses         int       `gorm:"not null;default:0"`   // 忘却回数
	ReviewCount    int       `gorm:"not null;default:0"`
	Learned        bool      `gorm:"not null;default:false"`
	LastReviewedAt *time.Time
	NextReviewDate *time.Time `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Word *Word `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (AnkiProgress) TableName() string {
	return "anki_progress"
}

// IsDue は出題期限が来ているかを返します
func (p *AnkiProgress) IsDue(now time.Time) bool {
	return p.NextReviewDate != nil && !p.NextReviewDate.After(now)
}

// GradeCardRequest は自己採点APIのリクエストボディ
type GradeCardRequest struct {
	Quality string `json:"quality" validate:"required,oneof=again hard good easy"`
}

// GradeCardResponse は採点後のスケジュール結果
type GradeCardResponse struct {
	State          string     `json:"state"`
	IntervalDays   float64    `json:"interval_days"`
	EaseFactor     float64    `json:"ease_factor"`
	NextReviewDate *time.Time `json:"next_review_date,omitempty"`
}

// LearningCountsResponse はフラッシュカード側ダッシュボードの件数表示用
type LearningCountsResponse struct {
	NewCount      int `json:"new_count"`
	LearningCount int `json:"learning_count"`
	DueCount      int `json:"due_count"`
}
