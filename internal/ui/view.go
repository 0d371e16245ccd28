package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the entire UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.showHelp {
		hint := fmt.Sprintf(" ↑/↓ scroll • ? or esc to close • %3.f%%", m.helpPane.ScrollPercent()*100)
		return m.helpPane.View() + "\n" + m.styles.statusBar.Render(hint)
	}

	screen := strings.Join([]string{
		m.renderHeader(),
		m.tree.View(m.styles),
		m.renderStatusBar(),
		m.renderHelpBar(),
	}, "\n")

	if menu, ok := m.ctrl.Menu(); ok {
		box := menuBox(m.styles, m.menuCursor)
		x, y := menuOrigin(menu.Position, lipgloss.Width(box), lipgloss.Height(box), m.width, m.height)
		screen = placeOverlay(x, y, box, screen)
	}
	return screen
}

func (m Model) renderHeader() string {
	root := m.ctrl.Root()
	title := m.styles.title.Render(" 📁 " + root.Name)

	ruleWidth := m.width - 2
	if ruleWidth > 30 {
		ruleWidth = 30
	}
	if ruleWidth < 0 {
		ruleWidth = 0
	}
	rule := m.styles.rule.Render(" " + strings.Repeat("─", ruleWidth))
	return title + "\n" + rule
}

// renderStatusBar renders the status bar
func (m Model) renderStatusBar() string {
	status := " " + m.statusBar
	if m.remote != nil {
		// Connection indicator
		connStatus := "⚡"
		if !m.connected {
			connStatus = "⚠️ "
		}
		status = fmt.Sprintf(" %s %s", connStatus, m.statusBar)
	}
	if target, ok := m.ctrl.Selected(); ok {
		status += " | " + target.Name
	}

	// Pad to full width
	if padding := m.width - lipgloss.Width(status); padding > 0 {
		status += strings.Repeat(" ", padding)
	}
	return m.styles.statusBar.Render(status)
}

func (m Model) renderHelpBar() string {
	if m.ctrl.MenuOpen() {
		return m.help.View(menuKeyMap{m.keys})
	}
	return m.help.View(m.keys)
}
