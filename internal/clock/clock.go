// internal/clock/clock.go
package clock

import "time"

// Clock は現在時刻の取得を抽象化します。
// バッチ選定や進捗保存は1操作につき1回だけ Now() を読む契約
// （同一バッチ内の全アイテムに同じ時刻を適用するため）。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// New は実時間の Clock を返します
func New() Clock { return realClock{} }

// Fixed はテスト用の固定時刻 Clock です。Set で時刻を進められます。
type Fixed struct {
	now time.Time
}

func NewFixed(t time.Time) *Fixed { return &Fixed{now: t} }

func (f *Fixed) Now() time.Time { return f.now }

func (f *Fixed) Set(t time.Time) { f.now = t }

func (f *Fixed) Advance(d time.Duration) { f.now = f.now.Add(d) }
