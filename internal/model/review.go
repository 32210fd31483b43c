// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewStatsResponse はダッシュボード表示用の統計レスポンスDTO。
// DueCount は「今セッションを開始したら取得されるバッチ」と同じ
// フィルタ（同じバッファ）で数えるため、表示と実際の出題が一致する。
type ReviewStatsResponse struct {
	TotalWordsInNotebook int        `json:"total_words_in_notebook"`
	Level1Count          int        `json:"level1_count"`
	Level2Count          int        `json:"level2_count"`
	Level3Count          int        `json:"level3_count"`
	Level4Count          int        `json:"level4_count"`
	Level5Count          int        `json:"level5_count"`
	DueCount             int        `json:"due_count"`
	NextReviewAt         *time.Time `json:"next_review_at,omitempty"` // カウントダウン用（バッファ外で最短の期限）
}

// LevelCount は段位別件数を返すヘルパー
func (s *ReviewStatsResponse) LevelCount(level ProgressLevel) int {
	switch level {
	case Level1:
		return s.Level1Count
	case Level2:
		return s.Level2Count
	case Level3:
		return s.Level3Count
	case Level4:
		return s.Level4Count
	case Level5:
		return s.Level5Count
	default:
		return 0
	}
}

// StartSessionRequest は復習セッション開始リクエスト
type StartSessionRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=50"` // 省略時は設定値 (デフォルト5)
}

// SessionItemView は現在の出題内容。ステップによって埋まるフィールドが変わる。
type SessionItemView struct {
	WordID    uuid.UUID `json:"word_id"`
	Step      string    `json:"step"`                 // fill_in_blank | listen_and_write | multiple_choice
	Question  string    `json:"question"`             // 穴埋め文 or 出題単語
	AudioText string    `json:"audio_text,omitempty"` // listen_and_write でクライアントが読み上げるテキスト
	Options   []string  `json:"options,omitempty"`    // multiple_choice の選択肢（シャッフル済み・セッション中不変）
}

// SessionStateResponse はセッションの現在状態
type SessionStateResponse struct {
	SessionID      uuid.UUID        `json:"session_id"`
	Complete       bool             `json:"complete"`
	Remaining      int              `json:"remaining"`       // 残りアイテム数（再出題待ち含む）
	CompletedCount int              `json:"completed_count"` // 3ステップ完走済みアイテム数
	Item           *SessionItemView `json:"item,omitempty"`
}

// StartSessionResponse はセッション開始レスポンス。
// 期限到来の単語が無い場合は empty=true で返す（エラーにはしない）。
type StartSessionResponse struct {
	Empty        bool                  `json:"empty"`
	NextReviewAt *time.Time            `json:"next_review_at,omitempty"`
	Session      *SessionStateResponse `json:"session,omitempty"`
}

// SubmitAnswerRequest は解答送信リクエスト
type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// SubmitAnswerResponse は解答判定結果
type SubmitAnswerResponse struct {
	Result        string `json:"result"` // correct | incorrect
	CorrectAnswer string `json:"correct_answer"`
}

// ContinueResponse は「次へ」操作のレスポンス。
// セッションが完走した場合のみ Summary が入る。
type ContinueResponse struct {
	Session *SessionStateResponse   `json:"session"`
	Summary *SessionSummaryResponse `json:"summary,omitempty"`
}

// SessionSummaryResponse はセッション終了（完走・中断とも）時のサマリ
type SessionSummaryResponse struct {
	CompletedCount int       `json:"completed_count"` // 完走したアイテム数
	FailedCount    int       `json:"failed_count"`    // セッション中に1回でも失敗したアイテム数
	PersistedCount int       `json:"persisted_count"` // 進捗を保存したアイテム数
	FinishTime     time.Time `json:"finish_time"`     // 保存に使った時刻（次の正時に切り上げ済み）
}
