// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Word は単語・意味・例文を表します。
// 例文(ExampleSentence)は穴埋め問題の出題文になるため、単語そのものを含むこと。
type Word struct {
	WordID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"word_id"`
	TenantID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Term            string         `gorm:"not null" json:"term"`       // 単語
	Definition      string         `gorm:"not null" json:"definition"` // 単語の意味
	ExampleSentence string         `json:"example_sentence"`           // 例文（穴埋め用）
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用

	// 関連 (Preload用)
	LearningProgress *LearningProgress `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (Word) TableName() string {
	return "words"
}

// 単語作成リクエストDTO
type PostWordRequest struct {
	Term            string `json:"term" validate:"required"`
	Definition      string `json:"definition" validate:"required"`
	ExampleSentence string `json:"example_sentence" validate:"omitempty,min=1"`
}

// 単語更新（全体）リクエストDTO
type PutWordRequest struct {
	Term            string `json:"term" validate:"required"`
	Definition      string `json:"definition" validate:"required"`
	ExampleSentence string `json:"example_sentence" validate:"omitempty,min=1"`
}

// 単語更新（部分）リクエストDTO
type PatchWordRequest struct {
	Term            *string `json:"term,omitempty" validate:"omitempty,min=1"`
	Definition      *string `json:"definition,omitempty" validate:"omitempty,min=1"`
	ExampleSentence *string `json:"example_sentence,omitempty" validate:"omitempty,min=1"`
}
