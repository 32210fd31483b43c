// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressLevel は記憶の強さを表す段位 (1〜5)
type ProgressLevel int

const (
	Level1 ProgressLevel = iota + 1 // 1: 新規学習・失敗直後（即時復習）
	Level2                          // 2: 10時間後
	Level3                          // 3: 3日後
	Level4                          // 4: 7日後
	Level5                          // 5: 10日後（最高段位）
)

const (
	MinLevel = Level1
	MaxLevel = Level5
)

// NeverReviewDate は「もう出題しない」ことを表す十分遠い日付。
// 「この単語は知っている」と申告された単語に設定される。
var NeverReviewDate = time.Date(9999, time.January, 1, 0, 0, 0, 0, time.UTC)

// LearningProgress は単語1件の学習進捗（ProgressRecord）を表します。
// 「学習済み」になった時点で作成され、以降はセッション終了時の
// 進捗更新（ProgressUpdater）でのみ書き換えられます。
type LearningProgress struct {
	ProgressID     uuid.UUID     `gorm:"type:uuid;primaryKey"`
	TenantID       uuid.UUID     `gorm:"type:uuid;not null;index:idx_tenant_word,unique"`
	WordID         uuid.UUID     `gorm:"type:uuid;not null;index:idx_tenant_word,unique"`
	Level          ProgressLevel `gorm:"not null;default:1"`
	Learned        bool          `gorm:"not null;default:false"` // 学習フロー完了済みか
	KnownAlready   bool          `gorm:"not null;default:false"` // 「既に知っている」申告で出題対象外
	LastReviewedAt *time.Time
	NextReviewDate time.Time `gorm:"not null;index"`
	CorrectCount   int       `gorm:"not null;default:0"`
	WrongCount     int       `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// 関連 (Preload用)
	Word *Word `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (LearningProgress) TableName() string {
	return "learning_progress"
}

// InNotebook は「ノート」（出題対象）入りしているかを返します。
// 条件: Learned かつ KnownAlready ではない
func (p *LearningProgress) InNotebook() bool {
	return p.Learned && !p.KnownAlready
}

// DueWithin は now+buffer までに復習期限が来ているかを返します
func (p *LearningProgress) DueWithin(now time.Time, buffer time.Duration) bool {
	return p.InNotebook() && !p.NextReviewDate.After(now.Add(buffer))
}

// Accuracy は通算正答率(%)を返します。診断用でスケジューリングには使いません。
func (p *LearningProgress) Accuracy() float64 {
	total := p.CorrectCount + p.WrongCount
	if total == 0 {
		return 0
	}
	return float64(p.CorrectCount) / float64(total) * 100
}
