package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rubber_duck/explorer/internal/explorer"
)

var menuLabels = map[explorer.Action]string{
	explorer.ActionCopy:   "Copy",
	explorer.ActionDelete: "Delete",
	explorer.ActionRename: "Rename",
}

// menuItemWidth is the inner width shared by every item, padding included
func menuItemWidth() int {
	w := 0
	for _, a := range explorer.Actions {
		if l := lipgloss.Width(menuLabels[a]); l > w {
			w = l
		}
	}
	return w + 2
}

// menuBox renders the context menu with item selected highlighted
func menuBox(styles ThemedStyles, selected int) string {
	width := menuItemWidth()
	items := make([]string, len(explorer.Actions))
	for i, a := range explorer.Actions {
		style := styles.menuItem
		if i == selected {
			style = styles.menuSelected
		}
		items[i] = style.Width(width).Render(menuLabels[a])
	}
	return styles.menuBox.Render(strings.Join(items, "\n"))
}

// menuOrigin returns where a box of size w×h is drawn for a menu opened at
// pos. The stored position is never altered; only the drawing is shifted
// so the box stays on a screen of the given size.
func menuOrigin(pos explorer.Position, w, h, screenW, screenH int) (int, int) {
	x, y := pos.Left, pos.Top
	if x+w > screenW {
		x = screenW - w
	}
	if y+h > screenH {
		y = screenH - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// menuItemAt maps a screen cell to a menu action given the drawn origin and
// box size
func menuItemAt(originX, originY, boxW, x, y int) (explorer.Action, bool) {
	// one cell of border on every side
	if x <= originX || x >= originX+boxW-1 {
		return "", false
	}
	i := y - originY - 1
	if i < 0 || i >= len(explorer.Actions) {
		return "", false
	}
	return explorer.Actions[i], true
}

const resetStyle = "\x1b[0m"

// placeOverlay draws fg over bg with its top-left corner at (x, y)
func placeOverlay(x, y int, fg, bg string) string {
	bgLines := strings.Split(bg, "\n")
	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		base := bgLines[row]
		if w := ansi.StringWidth(base); w < x {
			base += strings.Repeat(" ", x-w)
		}
		left := ansi.Truncate(base, x, "")
		right := ansi.TruncateLeft(base, x+ansi.StringWidth(line), "")
		bgLines[row] = left + resetStyle + line + resetStyle + right
	}
	return strings.Join(bgLines, "\n")
}
