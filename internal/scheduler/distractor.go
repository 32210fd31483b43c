// internal/scheduler/distractor.go
package scheduler

import (
	"math/rand"
	"strings"
)

// BackupMeanings は誤答選択肢の最終フォールバック用の固定リスト。
// ノートも単語帳もほぼ空の状態やDB障害時でも、選択肢が3つ揃わずに
// 出題がブロックされることがないようにする。
var BackupMeanings = []string{
	"猫", "犬", "家", "車", "本", "ペン", "挨拶",
	"学校", "愛情", "時間", "お金", "水", "食べ物", "友達",
	"家族", "仕事", "幸せ", "都市", "音楽", "医者",
	"コンピュータ", "電話", "空", "太陽", "月", "木",
	"バラ", "川", "海", "山", "雲", "雨",
	"夏", "冬", "朝", "夜", "夢", "希望",
	"健康", "病院", "警察", "軍隊", "平和", "戦争",
	"歴史", "未来", "過去", "現在", "世界", "人間",
}

// PickDistractors は3層フォールバックで誤答選択肢を count 個選びます。
//
// Tier 1: ノート内の他の単語の意味（学習済み語の受動的な復習を兼ねる）
// Tier 2: 単語帳全体からのサンプル
// Tier 3: 固定のバックアップリスト
//
// 各層で正解の意味・選択済みの意味と重複するものを除外し、count 個
// 揃った時点で打ち切ります。全層を使っても足りない場合は揃った分だけ
// 返します（呼び出し側は少ない選択肢のまま出題を続行する）。
func PickDistractors(r *rand.Rand, correctMeaning string, notebookMeanings, globalMeanings, backupMeanings []string, count int) []string {
	picked := make([]string, 0, count)
	seen := map[string]bool{
		normalizeMeaning(correctMeaning): true,
	}

	for _, tier := range [][]string{notebookMeanings, globalMeanings, backupMeanings} {
		if len(picked) >= count {
			break
		}
		candidates := make([]string, 0, len(tier))
		for _, m := range tier {
			m = strings.TrimSpace(m)
			if m == "" || seen[normalizeMeaning(m)] {
				continue
			}
			seen[normalizeMeaning(m)] = true
			candidates = append(candidates, m)
		}
		r.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		need := count - len(picked)
		if need > len(candidates) {
			need = len(candidates)
		}
		picked = append(picked, candidates[:need]...)
	}

	return picked
}

// ShuffleOptions は誤答＋正解をまとめて1回だけシャッフルします。
// セッション中の再出題では同じ並びを使い回し、選択肢が動かないようにする。
func ShuffleOptions(r *rand.Rand, distractors []string, correct string) []string {
	options := make([]string, 0, len(distractors)+1)
	options = append(options, distractors...)
	options = append(options, correct)
	r.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func normalizeMeaning(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
