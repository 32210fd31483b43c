// internal/scheduler/session.go
package scheduler

import (
	"strings"
	"time"

	"go_vocab_review/internal/model"

	"github.com/google/uuid"
)

// Step は1単語あたり3ステップの出題形式
type Step int

const (
	StepFillInBlank Step = iota // 穴埋め
	StepListenAndWrite          // 聞き取り
	StepMultipleChoice          // 選択式
)

// stepOrder はステップの固定順序。遷移は条件分岐ではなくこのテーブルを辿る。
var stepOrder = []Step{StepFillInBlank, StepListenAndWrite, StepMultipleChoice}

func (s Step) String() string {
	switch s {
	case StepFillInBlank:
		return "fill_in_blank"
	case StepListenAndWrite:
		return "listen_and_write"
	case StepMultipleChoice:
		return "multiple_choice"
	default:
		return "unknown"
	}
}

// CheckResult は解答の判定結果
type CheckResult int

const (
	ResultCorrect CheckResult = iota
	ResultIncorrect
)

func (r CheckResult) String() string {
	if r == ResultCorrect {
		return "correct"
	}
	return "incorrect"
}

// Item はセッション中に生きる1単語分の出題状態。
// Distractors / Options はバッチ生成時に1回だけ抽選され、
// 失敗による再出題でも変更されない。
type Item struct {
	WordID          uuid.UUID
	Term            string
	Meaning         string
	ExampleSentence string

	CurrentStep    Step
	CompletedSteps map[Step]bool
	FailedAttempts int // 診断用。スケジューリング計算には使わない

	Distractors []string // 誤答3択（抽選済み・不変）
	Options     []string // 正解込みシャッフル済み選択肢（不変）
}

// NewItem はバッチ生成時にアイテムを初期化します
func NewItem(wordID uuid.UUID, term, meaning, exampleSentence string, distractors, options []string) *Item {
	return &Item{
		WordID:          wordID,
		Term:            term,
		Meaning:         meaning,
		ExampleSentence: exampleSentence,
		CurrentStep:     stepOrder[0],
		CompletedSteps:  make(map[Step]bool),
		Distractors:     distractors,
		Options:         options,
	}
}

// PassComplete は3ステップ全て完了したかを返します
func (it *Item) PassComplete() bool {
	return len(it.CompletedSteps) == len(stepOrder)
}

// nextStep は未完了の次ステップを返します
func (it *Item) nextStep() (Step, bool) {
	for _, s := range stepOrder {
		if !it.CompletedSteps[s] {
			return s, true
		}
	}
	return 0, false
}

// resetPass は失敗時のフルリセット。最初のステップからやり直し。
func (it *Item) resetPass() {
	it.CurrentStep = stepOrder[0]
	it.CompletedSteps = make(map[Step]bool)
}

// CorrectAnswer は現在のステップの正解を返します
func (it *Item) CorrectAnswer() string {
	if it.CurrentStep == StepMultipleChoice {
		return it.Meaning
	}
	return it.Term
}

// checkAnswer は現在のステップに対する解答を判定します。
// 書き取り2ステップは大文字小文字を無視した前後空白除去後の一致、
// 選択式は意味との一致。
func (it *Item) checkAnswer(answer string) bool {
	answer = strings.TrimSpace(answer)
	if it.CurrentStep == StepMultipleChoice {
		return answer == strings.TrimSpace(it.Meaning)
	}
	return strings.EqualFold(answer, strings.TrimSpace(it.Term))
}

// FillInBlankQuestion は例文中の単語を "_____" に置き換えた出題文を返します
func FillInBlankQuestion(term, sentence string) string {
	for _, tag := range []string{"<b>", "</b>", "<u>", "</u>", "<i>", "</i>"} {
		sentence = strings.ReplaceAll(sentence, tag, "")
	}
	target := strings.TrimSpace(term)
	if target == "" {
		return sentence
	}
	// バイト位置ではなくルーン単位で大文字小文字を無視して照合する。
	// ToLowerはルーンのバイト長を変えることがあり、位置がずれるため。
	runes := []rune(sentence)
	width := len([]rune(target))
	var b strings.Builder
	for i := 0; i < len(runes); {
		if i+width <= len(runes) && strings.EqualFold(string(runes[i:i+width]), target) {
			b.WriteString("_____")
			i += width
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

// Outcome はセッション終了時の1単語分の最終結果。
// 厳格採点: セッション中に1回でも失敗した単語は、その後のリトライで
// 完走していても Correct=false になる。
type Outcome struct {
	WordID  uuid.UUID
	Correct bool
}

// Session は進行中の復習セッション。キュー先頭が現在の出題アイテム。
// Submit → Continue の順で1解答ずつ処理する（多重送信は受け付けない）。
type Session struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	StartedAt time.Time

	queue     []*Item
	failed    map[uuid.UUID]struct{} // セッション中に1回でも失敗した単語
	completed []uuid.UUID            // 完走順の単語ID
	pending   *CheckResult           // Submit 済み・Continue 待ちの判定
}

func NewSession(id, tenantID uuid.UUID, items []*Item, startedAt time.Time) *Session {
	return &Session{
		ID:        id,
		TenantID:  tenantID,
		StartedAt: startedAt,
		queue:     items,
		failed:    make(map[uuid.UUID]struct{}),
	}
}

// Current は現在の出題アイテムを返します。セッション完了なら nil。
func (s *Session) Current() *Item {
	if len(s.queue) == 0 {
		return nil
	}
	return s.queue[0]
}

// Complete はキューが空（全アイテム完走）かを返します
func (s *Session) Complete() bool {
	return len(s.queue) == 0
}

// Remaining は再出題待ちを含む残りアイテム数を返します
func (s *Session) Remaining() int {
	return len(s.queue)
}

// CompletedCount は完走済みアイテム数を返します
func (s *Session) CompletedCount() int {
	return len(s.completed)
}

// FailedCount はセッション中に1回でも失敗したアイテム数を返します
func (s *Session) FailedCount() int {
	return len(s.failed)
}

// Submit は現在のステップに対する解答を判定し、結果を保留します。
// 状態の遷移は Continue が行う（UIのフィードバック表示と対応）。
func (s *Session) Submit(answer string) (CheckResult, string, error) {
	item := s.Current()
	if item == nil {
		return ResultIncorrect, "", model.ErrSessionNotFound
	}
	if s.pending != nil {
		return ResultIncorrect, "", model.ErrAnswerPending
	}

	result := ResultIncorrect
	if item.checkAnswer(answer) {
		result = ResultCorrect
	}
	s.pending = &result
	return result, item.CorrectAnswer(), nil
}

// Continue は保留中の判定を適用して次の状態へ進めます。
// 正解: 現在のステップを完了にし、次の未完了ステップへ。3ステップ揃えば完走。
// 不正解: 失敗集合へ記録し、アイテムをフルリセットしてキュー末尾へ回す。
// 抽選済みの選択肢はそのまま保持される。
func (s *Session) Continue() error {
	item := s.Current()
	if item == nil {
		return model.ErrSessionNotFound
	}
	if s.pending == nil {
		return model.ErrNoAnswerPending
	}
	result := *s.pending
	s.pending = nil

	if result == ResultCorrect {
		item.CompletedSteps[item.CurrentStep] = true
		if next, ok := item.nextStep(); ok {
			item.CurrentStep = next
			return nil
		}
		// 3ステップ完走
		s.queue = s.queue[1:]
		s.completed = append(s.completed, item.WordID)
		return nil
	}

	// 不正解: 厳格採点用に記録し、末尾に再キューイング
	s.failed[item.WordID] = struct{}{}
	item.FailedAttempts++
	item.resetPass()
	s.queue = append(s.queue[1:], item)
	return nil
}

// Failed は単語がセッション中に失敗したかを返します
func (s *Session) Failed(wordID uuid.UUID) bool {
	_, ok := s.failed[wordID]
	return ok
}

// Outcomes は完走済みアイテムの最終結果を完走順で返します。
// 完走していないアイテム（中断時の途中アイテム）は含まれない。
func (s *Session) Outcomes() []Outcome {
	outcomes := make([]Outcome, 0, len(s.completed))
	for _, wordID := range s.completed {
		_, failed := s.failed[wordID]
		outcomes = append(outcomes, Outcome{WordID: wordID, Correct: !failed})
	}
	return outcomes
}
