package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rubber_duck/explorer/internal/explorer"
	"github.com/stretchr/testify/assert"
)

func TestMenuBoxLayout(t *testing.T) {
	box := menuBox(NewThemedStyles(DefaultDarkTheme()), 1)
	lines := strings.Split(stripANSI(box), "\n")

	assert.Equal(t, len(explorer.Actions)+2, lipgloss.Height(box))
	assert.Equal(t, menuItemWidth()+2, lipgloss.Width(box))
	assert.Contains(t, lines[1], "Copy")
	assert.Contains(t, lines[2], "Delete")
	assert.Contains(t, lines[3], "Rename")
}

func TestMenuOriginKeepsBoxOnScreen(t *testing.T) {
	x, y := menuOrigin(explorer.Position{Left: 10, Top: 5}, 10, 5, 80, 24)
	assert.Equal(t, 10, x)
	assert.Equal(t, 5, y)

	x, y = menuOrigin(explorer.Position{Left: 100, Top: 200}, 10, 5, 80, 24)
	assert.Equal(t, 70, x)
	assert.Equal(t, 19, y)

	x, y = menuOrigin(explorer.Position{Left: -3, Top: -1}, 10, 5, 80, 24)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestMenuItemAt(t *testing.T) {
	cases := []struct {
		x, y   int
		action explorer.Action
		ok     bool
	}{
		{x: 12, y: 6, action: explorer.ActionCopy, ok: true},
		{x: 12, y: 7, action: explorer.ActionDelete, ok: true},
		{x: 18, y: 8, action: explorer.ActionRename, ok: true},
		{x: 12, y: 5},  // top border
		{x: 12, y: 9},  // bottom border
		{x: 10, y: 6},  // left border
		{x: 19, y: 6},  // right border
		{x: 40, y: 40}, // far away
	}
	for _, c := range cases {
		action, ok := menuItemAt(10, 5, 10, c.x, c.y)
		assert.Equal(t, c.ok, ok, "(%d,%d)", c.x, c.y)
		assert.Equal(t, c.action, action, "(%d,%d)", c.x, c.y)
	}
}

func TestPlaceOverlay(t *testing.T) {
	bg := "aaaaaaaa\nbbbbbbbb\ncccccccc"

	out := placeOverlay(2, 1, "XY\nZW", bg)
	lines := strings.Split(stripANSI(out), "\n")

	assert.Equal(t, []string{"aaaaaaaa", "bbXYbbbb", "ccZWcccc"}, lines)
}

func TestPlaceOverlayPastLineEnd(t *testing.T) {
	out := placeOverlay(5, 0, "X", "ab")
	assert.Equal(t, "ab   X", stripANSI(out))
}

func TestPlaceOverlayClipsRowsOffScreen(t *testing.T) {
	out := placeOverlay(0, 1, "X\nY\nZ", "a\nb")
	assert.Equal(t, "a\nX", stripANSI(out))
}
