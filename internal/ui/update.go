package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rubber_duck/explorer/internal/explorer"
	"github.com/rubber_duck/explorer/internal/phoenix"
)

const reconnectDelay = 5 * time.Second

// Update handles all incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TreeLoadedMsg:
		m.ctrl.ReplaceTree(msg.Root)
		m.refresh()
		m.statusBar = fmt.Sprintf("Reloaded %s", msg.Root.Name)
		return m, m.watchNext()

	case TreeLoadErrorMsg:
		m.logger.Error("tree reload failed", "error", msg.Err)
		m.statusBar = fmt.Sprintf("Reload failed: %v", msg.Err)
		return m, m.watchNext()

	case phoenix.ConnectedMsg:
		m.connected = true
		m.statusBar = "Connected to file service"
		return m, nil

	case phoenix.ChannelJoinedMsg:
		m.statusBar = fmt.Sprintf("Joined %s", msg.Topic)
		return m, nil

	case phoenix.ChannelJoiningMsg:
		return m, nil

	case phoenix.DisconnectedMsg:
		m.connected = false
		if msg.Error != nil {
			m.logger.Warn("file service disconnected", "error", msg.Error)
			m.statusBar = fmt.Sprintf("File service offline: %v", msg.Error)
		}
		if msg.Retry && m.remote != nil {
			return m, m.remote.Reconnect(m.remoteCfg, reconnectDelay)
		}
		return m, nil

	case phoenix.ErrorMsg:
		m.logger.Error("file service error", "component", msg.Component, "error", msg.Err)
		m.statusBar = fmt.Sprintf("%s: %v", msg.Component, msg.Err)
		return m, nil

	case phoenix.RetryMsg:
		return m, msg.Cmd
	}
	return m, nil
}

func (m Model) watchNext() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Next()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Dismiss) {
			m.showHelp = false
			return m, nil
		}
		var cmd tea.Cmd
		m.helpPane, cmd = m.helpPane.Update(msg)
		return m, cmd
	}

	if m.ctrl.MenuOpen() {
		return m.handleMenuKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.openHelp()

	case key.Matches(msg, m.keys.Up):
		m.tree.Move(-1)

	case key.Matches(msg, m.keys.Down):
		m.tree.Move(1)

	case key.Matches(msg, m.keys.Top):
		m.tree.Select(0)

	case key.Matches(msg, m.keys.Bottom):
		m.tree.Select(len(m.tree.rows) - 1)

	case key.Matches(msg, m.keys.Toggle):
		row, ok := m.tree.Current()
		if !ok {
			break
		}
		if row.IsFolder() {
			m.toggle(row)
		} else {
			m.openMenuAtCursor()
		}

	case key.Matches(msg, m.keys.Expand):
		if row, ok := m.tree.Current(); ok && row.IsFolder() && !row.Expanded {
			m.toggle(row)
		}

	case key.Matches(msg, m.keys.Collapse):
		row, ok := m.tree.Current()
		if !ok {
			break
		}
		if row.IsFolder() && row.Expanded {
			m.toggle(row)
		} else if parent := row.Key.Parent(); parent != "" {
			m.tree.SelectKey(parent)
		}

	case key.Matches(msg, m.keys.Menu):
		m.openMenuAtCursor()
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.ctrl.Dismiss()
	case key.Matches(msg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuCursor < len(explorer.Actions)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		m.apply(explorer.Actions[m.menuCursor])
	case key.Matches(msg, m.keys.Copy):
		m.apply(explorer.ActionCopy)
	case key.Matches(msg, m.keys.Delete):
		m.apply(explorer.ActionDelete)
	case key.Matches(msg, m.keys.Rename):
		m.apply(explorer.ActionRename)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		var cmd tea.Cmd
		m.helpPane, cmd = m.helpPane.Update(msg)
		return m, cmd
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonRight:
		i, ok := m.tree.RowAt(msg.Y - headerHeight)
		if !ok || m.tree.rows[i].IsFolder() {
			return m, nil
		}
		if m.ctrl.RequestContextMenu(explorer.Position{Left: msg.X, Top: msg.Y}, m.tree.rows[i].Key) {
			m.tree.Select(i)
			m.menuCursor = 0
		}

	case tea.MouseButtonLeft:
		if m.ctrl.MenuOpen() {
			if action, ok := m.menuItemAt(msg.X, msg.Y); ok {
				m.apply(action)
			} else {
				m.ctrl.Dismiss()
			}
			return m, nil
		}
		i, ok := m.tree.RowAt(msg.Y - headerHeight)
		if !ok {
			return m, nil
		}
		m.tree.Select(i)
		if row := m.tree.rows[i]; row.IsFolder() {
			m.toggle(row)
		}

	case tea.MouseButtonWheelUp:
		if !m.ctrl.MenuOpen() {
			m.tree.Move(-1)
		}

	case tea.MouseButtonWheelDown:
		if !m.ctrl.MenuOpen() {
			m.tree.Move(1)
		}
	}
	return m, nil
}

func (m *Model) toggle(row explorer.Row) {
	if m.ctrl.ToggleFolder(row.Key) {
		m.refresh()
	}
}

// openMenuAtCursor opens the menu for the file under the cursor, anchored
// just right of its name
func (m *Model) openMenuAtCursor() {
	row, ok := m.tree.Current()
	if !ok || row.IsFolder() {
		return
	}
	line, _ := m.tree.LineOf(m.tree.cursor)
	pos := explorer.Position{Left: LabelWidth(row) + 1, Top: headerHeight + line}
	if m.ctrl.RequestContextMenu(pos, row.Key) {
		m.menuCursor = 0
	}
}

func (m *Model) apply(action explorer.Action) {
	if target, ok := m.ctrl.Selected(); ok {
		m.statusBar = fmt.Sprintf("%s requested for %s", menuLabels[action], target.Name)
	}
	m.ctrl.Apply(action)
	m.menuCursor = 0
}

// menuItemAt hit-tests the menu as it is currently drawn
func (m Model) menuItemAt(x, y int) (explorer.Action, bool) {
	menu, ok := m.ctrl.Menu()
	if !ok {
		return "", false
	}
	box := menuBox(m.styles, m.menuCursor)
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	ox, oy := menuOrigin(menu.Position, w, h, m.width, m.height)
	return menuItemAt(ox, oy, w, x, y)
}

func (m *Model) openHelp() {
	m.showHelp = true
	if !m.helpOK {
		out, err := renderHelp(m.themes.GetTheme().GlamourStyle, m.width)
		if err != nil {
			m.logger.Warn("help rendering failed", "error", err)
		}
		m.helpPane.SetContent(out)
		m.helpOK = true
	}
	m.helpPane.GotoTop()
}
