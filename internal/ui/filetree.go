package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rubber_duck/explorer/internal/explorer"
	"github.com/rubber_duck/explorer/internal/tree"
)

// FileTree is the scrollable tree pane. It only holds cursor and scroll
// state; what is visible comes from the controller's rows.
type FileTree struct {
	rows   []explorer.Row
	cursor int
	offset int
	width  int
	height int
}

// NewFileTree creates an empty tree pane
func NewFileTree() FileTree {
	return FileTree{}
}

// SetRows replaces the visible rows, keeping the cursor on the same node,
// or its closest visible ancestor
func (ft *FileTree) SetRows(rows []explorer.Row) {
	var current tree.Key
	if ft.cursor < len(ft.rows) {
		current = ft.rows[ft.cursor].Key
	}
	ft.rows = rows

	for k := current; k != ""; k = k.Parent() {
		if ft.SelectKey(k) {
			return
		}
	}
	ft.Select(0)
}

// SetSize sets the pane's dimensions
func (ft *FileTree) SetSize(width, height int) {
	ft.width = width
	ft.height = height
	ft.ensureVisible()
}

// Current returns the row under the cursor
func (ft FileTree) Current() (explorer.Row, bool) {
	if ft.cursor < 0 || ft.cursor >= len(ft.rows) {
		return explorer.Row{}, false
	}
	return ft.rows[ft.cursor], true
}

// Move shifts the cursor by delta rows
func (ft *FileTree) Move(delta int) {
	ft.Select(ft.cursor + delta)
}

// Select puts the cursor on row i, clamped to the row range
func (ft *FileTree) Select(i int) {
	if i >= len(ft.rows) {
		i = len(ft.rows) - 1
	}
	if i < 0 {
		i = 0
	}
	ft.cursor = i
	ft.ensureVisible()
}

// SelectKey puts the cursor on the row with key
func (ft *FileTree) SelectKey(key tree.Key) bool {
	for i, r := range ft.rows {
		if r.Key == key {
			ft.Select(i)
			return true
		}
	}
	return false
}

func (ft *FileTree) ensureVisible() {
	if ft.height <= 0 {
		ft.offset = 0
		return
	}
	if ft.cursor < ft.offset {
		ft.offset = ft.cursor
	}
	if ft.cursor >= ft.offset+ft.height {
		ft.offset = ft.cursor - ft.height + 1
	}
	if last := len(ft.rows) - ft.height; ft.offset > last {
		ft.offset = last
	}
	if ft.offset < 0 {
		ft.offset = 0
	}
}

// RowAt maps a line inside the pane to a row index
func (ft FileTree) RowAt(line int) (int, bool) {
	if line < 0 || line >= ft.height {
		return 0, false
	}
	i := ft.offset + line
	if i >= len(ft.rows) {
		return 0, false
	}
	return i, true
}

// LineOf returns the pane line row i is drawn on
func (ft FileTree) LineOf(i int) (int, bool) {
	line := i - ft.offset
	if line < 0 || line >= ft.height {
		return 0, false
	}
	return line, true
}

// View renders exactly height lines
func (ft FileTree) View(styles ThemedStyles) string {
	lines := make([]string, 0, ft.height)
	if len(ft.rows) == 0 {
		lines = append(lines, " No files loaded")
	}
	for i := ft.offset; i < len(ft.rows) && len(lines) < ft.height; i++ {
		lines = append(lines, ft.renderItem(ft.rows[i], i == ft.cursor, styles))
	}
	for len(lines) < ft.height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// plainLine is the unstyled text of a row without meta
func plainLine(row explorer.Row) string {
	indent := strings.Repeat("  ", row.Depth)

	prefix := "├─ "
	if row.IsLast {
		prefix = "└─ "
	}
	if row.Depth == 0 {
		prefix = ""
	}

	return fmt.Sprintf("%s%s%s %s", indent, prefix, getFileIcon(row), row.Name)
}

// LabelWidth is the display width of a row up to the end of its name
func LabelWidth(row explorer.Row) int {
	return lipgloss.Width(plainLine(row))
}

// renderItem renders a single file tree item
func (ft FileTree) renderItem(row explorer.Row, selected bool, styles ThemedStyles) string {
	line := plainLine(row)

	switch {
	case selected:
		line = styles.cursor.Render(line)
	case row.IsFolder() && row.Expanded:
		line = styles.dirExpanded.Render(line)
	case row.IsFolder():
		line = styles.dir.Render(line)
	default:
		line = styles.file.Render(line)
	}

	if row.Meta != "" {
		line += " " + styles.meta.Render(row.Meta)
	}
	return line
}

// getFileIcon returns an appropriate icon for the row
func getFileIcon(row explorer.Row) string {
	if row.IsFolder() {
		if row.Expanded {
			return "📂"
		}
		return "📁"
	}

	// File icons based on extension
	ext := strings.ToLower(filepath.Ext(row.Name))
	switch ext {
	case ".go":
		return "🐹"
	case ".js", ".ts", ".jsx", ".tsx":
		return "📜"
	case ".py":
		return "🐍"
	case ".rs":
		return "🦀"
	case ".md", ".markdown":
		return "📝"
	case ".json":
		return "📋"
	case ".toml", ".yaml", ".yml":
		return "🔧"
	case ".sh", ".bash":
		return "🐚"
	default:
		return "📄"
	}
}
