package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	gameA = Game{Name: "A", Path: "/a"}
	gameB = Game{Name: "B", Path: "/b"}
)

func TestMergeSortsByName(t *testing.T) {
	got := Merge([]Game{gameB}, []Game{gameA})
	assert.Equal(t, []Game{gameA, gameB}, got)
}

func TestMergeSamePathLatestWins(t *testing.T) {
	got := Merge([]Game{gameA}, []Game{{Name: "A2", Path: "/a"}})
	assert.Equal(t, []Game{{Name: "A2", Path: "/a"}}, got)
}

func TestMergeCaseInsensitive(t *testing.T) {
	got := Merge(
		[]Game{{Name: "beta", Path: "/beta"}, {Name: "Charlie", Path: "/c"}},
		[]Game{{Name: "Alpha", Path: "/alpha"}},
	)
	assert.Equal(t, []Game{
		{Name: "Alpha", Path: "/alpha"},
		{Name: "beta", Path: "/beta"},
		{Name: "Charlie", Path: "/c"},
	}, got)
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	existing := []Game{gameB, gameA}
	Merge(existing, []Game{{Name: "C", Path: "/c"}})
	assert.Equal(t, []Game{gameB, gameA}, existing)
}

func TestMergeEmpty(t *testing.T) {
	got := Merge(nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRemove(t *testing.T) {
	got := Remove([]Game{gameA, gameB}, gameA)
	assert.Equal(t, []Game{gameB}, got)
}

func TestRemoveNeedsFullMatch(t *testing.T) {
	games := []Game{gameA, gameB}
	got := Remove(games, Game{Name: "A", Path: "/elsewhere"})
	assert.Equal(t, games, got)
}

func TestRemoveAllEqualEntries(t *testing.T) {
	got := Remove([]Game{gameA, gameB, gameA}, gameA)
	assert.Equal(t, []Game{gameB}, got)
}

func TestRename(t *testing.T) {
	games := []Game{gameB, gameA, {Name: "C", Path: "/c"}}
	got := Rename(games, gameA, "Alpha")

	assert.Equal(t, []Game{gameB, {Name: "Alpha", Path: "/a"}, {Name: "C", Path: "/c"}}, got)
	assert.Equal(t, gameA, games[1], "input must not change")
}

func TestRenameMissingTarget(t *testing.T) {
	games := []Game{gameA, gameB}
	assert.Equal(t, games, Rename(games, Game{Name: "X", Path: "/x"}, "Y"))
}

func TestRenameEmptyName(t *testing.T) {
	games := []Game{gameA}
	assert.Equal(t, games, Rename(games, gameA, ""))
}

func TestSort(t *testing.T) {
	games := []Game{{Name: "b", Path: "/1"}, {Name: "C", Path: "/2"}, {Name: "a", Path: "/3"}}

	assert.Equal(t, []Game{{Name: "a", Path: "/3"}, {Name: "b", Path: "/1"}, {Name: "C", Path: "/2"}},
		Sort(games, Ascending))
	assert.Equal(t, []Game{{Name: "C", Path: "/2"}, {Name: "b", Path: "/1"}, {Name: "a", Path: "/3"}},
		Sort(games, Descending))
	assert.Equal(t, "b", games[0].Name, "input must not change")
}

func TestSortIsStable(t *testing.T) {
	games := []Game{{Name: "Doom", Path: "/2"}, {Name: "doom", Path: "/1"}}
	assert.Equal(t, games, Sort(games, Ascending))
}

func TestUniqueFirstNameWins(t *testing.T) {
	games := []Game{gameA, {Name: "A", Path: "/other"}, gameB}
	assert.Equal(t, []Game{gameA, gameB}, Unique(games))
}

func TestFromPaths(t *testing.T) {
	got := FromPaths([]string{"/games/Quake/quake.exe", "/games/tools/.exe", "/bin/run"})
	assert.Equal(t, []Game{
		{Name: "quake", Path: "/games/Quake/quake.exe"},
		{Name: ".exe", Path: "/games/tools/.exe"},
		{Name: "run", Path: "/bin/run"},
	}, got)
}
