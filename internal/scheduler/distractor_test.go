// internal/scheduler/distractor_test.go
package scheduler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickDistractors_TierPriority(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	// Tier 1 だけで足りる場合は Tier 2 / 3 に手を付けない
	notebook := []string{"りんご", "みかん", "ぶどう", "もも"}
	global := []string{"グローバルA", "グローバルB"}

	picked := PickDistractors(r, "正解", notebook, global, BackupMeanings, 3)

	require.Len(t, picked, 3)
	for _, m := range picked {
		assert.Contains(t, notebook, m, "ノート内の意味だけから選ばれること")
	}
}

func TestPickDistractors_FallsBackWhenNotebookShort(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	notebook := []string{"りんご"}
	global := []string{"みかん", "ぶどう"}

	picked := PickDistractors(r, "正解", notebook, global, nil, 3)

	require.Len(t, picked, 3)
	assert.Contains(t, picked, "りんご")
	assert.Contains(t, picked, "みかん")
	assert.Contains(t, picked, "ぶどう")
}

func TestPickDistractors_BackupTier(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	// ノートも単語帳も空でもバックアップリストで3択が揃う
	picked := PickDistractors(r, "猫", nil, nil, BackupMeanings, 3)

	require.Len(t, picked, 3)
	for _, m := range picked {
		assert.Contains(t, BackupMeanings, m)
		assert.NotEqual(t, "猫", m, "正解はバックアップ層からも除外されること")
	}
}

func TestPickDistractors_ExcludesCorrectAndDuplicates(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	notebook := []string{"りんご", "Apple", " apple ", "みかん"}
	picked := PickDistractors(r, "apple", notebook, nil, nil, 3)

	// "Apple" と " apple " は正規化で正解と同一視される
	require.Len(t, picked, 2)
	seen := map[string]bool{}
	for _, m := range picked {
		assert.False(t, seen[m], "重複した選択肢は返らないこと")
		seen[m] = true
	}
	assert.NotContains(t, picked, "Apple")
}

func TestPickDistractors_ShortageReturnsFewer(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	picked := PickDistractors(r, "正解", []string{"りんご"}, nil, nil, 3)

	assert.Len(t, picked, 1, "全層を使っても足りなければ揃った分だけ返すこと")
}

func TestPickDistractors_Deterministic(t *testing.T) {
	notebook := []string{"A", "B", "C", "D", "E", "F"}

	first := PickDistractors(rand.New(rand.NewSource(99)), "正解", notebook, nil, nil, 3)
	second := PickDistractors(rand.New(rand.NewSource(99)), "正解", notebook, nil, nil, 3)

	assert.Equal(t, first, second, "同じシードなら同じ抽選結果になること")
}

func TestShuffleOptions(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	distractors := []string{"A", "B", "C"}
	options := ShuffleOptions(r, distractors, "正解")

	require.Len(t, options, 4)
	assert.Contains(t, options, "正解")
	for _, d := range distractors {
		assert.Contains(t, options, d)
	}
	// 元のスライスは変更されない
	assert.Equal(t, []string{"A", "B", "C"}, distractors)
}
