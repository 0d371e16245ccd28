package explorer

import (
	"testing"

	"github.com/rubber_duck/explorer/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCollapsedRoot(t *testing.T) {
	rows := Render(sampleTree(), NewExpansion())

	require.Len(t, rows, 1)
	assert.Equal(t, tree.Key("src"), rows[0].Key)
	assert.True(t, rows[0].IsFolder())
	assert.False(t, rows[0].Expanded)
	assert.Equal(t, 0, rows[0].Depth)
}

func TestRenderCollapseHidesWholeSubtree(t *testing.T) {
	exp := NewExpansion()
	// descendants are expanded but their ancestor is not
	exp.Toggle("src/lib")

	rows := Render(sampleTree(), exp)
	assert.Equal(t, []string{"src"}, rowNames(rows))
}

func TestRenderKeepsInputOrderAndDepth(t *testing.T) {
	root := tree.Folder("r",
		tree.File("z"),
		tree.Folder("b", tree.File("inner")),
		tree.File("a"),
	)
	exp := NewExpansion()
	exp.Toggle("r")
	exp.Toggle("r/b")

	rows := Render(root, exp)

	assert.Equal(t, []string{"r", "z", "b", "inner", "a"}, rowNames(rows))
	depths := make([]int, len(rows))
	for i, r := range rows {
		depths[i] = r.Depth
	}
	assert.Equal(t, []int{0, 1, 1, 2, 1}, depths)
}

func TestRenderMarksLastChildren(t *testing.T) {
	exp := NewExpansion()
	exp.Toggle("src")
	exp.Toggle("src/lib")

	rows := Render(sampleTree(), exp)

	last := map[string]bool{}
	for _, r := range rows {
		last[r.Name] = r.IsLast
	}
	assert.Equal(t, map[string]bool{"src": true, "a.ts": false, "lib": true, "b.ts": true}, last)
}

func TestRenderCarriesMeta(t *testing.T) {
	root := tree.Folder("r", tree.Node{Type: tree.KindFile, Name: "f", Meta: "1 KB"})
	exp := NewExpansion()
	exp.Toggle("r")

	rows := Render(root, exp)
	require.Len(t, rows, 2)
	assert.Equal(t, "1 KB", rows[1].Meta)
}

func TestExpansionRetainAndKeys(t *testing.T) {
	exp := NewExpansion()
	exp.Toggle("b")
	exp.Toggle("a")
	exp.Toggle("c")

	assert.Equal(t, []tree.Key{"a", "b", "c"}, exp.Keys())

	exp.Retain(func(k tree.Key) bool { return k != "b" })
	assert.Equal(t, []tree.Key{"a", "c"}, exp.Keys())
	assert.Equal(t, 2, exp.Len())
}
