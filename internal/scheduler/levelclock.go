// internal/scheduler/levelclock.go
package scheduler

import (
	"time"

	"go_vocab_review/internal/model"
)

// 段位ごとの復習間隔（記憶の定着曲線に合わせた固定テーブル）
const (
	level1Interval = 0 * time.Minute      // 段位1: 即時（新規学習・失敗直後）
	level2Interval = 10 * time.Hour       // 段位2: 10時間
	level3Interval = 3 * 24 * time.Hour   // 段位3: 3日
	level4Interval = 7 * 24 * time.Hour   // 段位4: 7日
	level5Interval = 10 * 24 * time.Hour  // 段位5: 10日（最高段位）
)

// ClampLevel は範囲外の段位を [1,5] に丸めます
func ClampLevel(level model.ProgressLevel) model.ProgressLevel {
	if level < model.MinLevel {
		return model.MinLevel
	}
	if level > model.MaxLevel {
		return model.MaxLevel
	}
	return level
}

// ReviewInterval は段位に対応する復習間隔を返します
func ReviewInterval(level model.ProgressLevel) time.Duration {
	switch ClampLevel(level) {
	case model.Level1:
		return level1Interval
	case model.Level2:
		return level2Interval
	case model.Level3:
		return level3Interval
	case model.Level4:
		return level4Interval
	default:
		return level5Interval
	}
}

// NextReviewDate は次回復習日時を計算します。
// 必ず from（復習完了時点）を起点にする。古い期限日からの加算はしない
// （タイマーは毎回リスタートする方式）。
func NextReviewDate(level model.ProgressLevel, from time.Time) time.Time {
	return from.Add(ReviewInterval(level))
}

// NextLevel は復習結果から次の段位を返します。
// 正解: 1段上げ（上限5）。不正解: 段位1へハードリセット（1段下げではない）。
func NextLevel(current model.ProgressLevel, isCorrect bool) model.ProgressLevel {
	if !isCorrect {
		return model.Level1
	}
	next := ClampLevel(current) + 1
	if next > model.MaxLevel {
		return model.MaxLevel
	}
	return next
}

// CeilHour は時刻を次の正時に切り上げます。既に正時ならそのまま。
// セッション終了時刻に適用して、カウントダウン表示を切りの良い値にする。
func CeilHour(t time.Time) time.Time {
	truncated := t.Truncate(time.Hour)
	if truncated.Equal(t) {
		return t
	}
	return truncated.Add(time.Hour)
}
