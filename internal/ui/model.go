// Package ui hosts the file explorer as a Bubble Tea program.
package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rubber_duck/explorer/internal/explorer"
	"github.com/rubber_duck/explorer/internal/phoenix"
)

const (
	headerHeight = 2 // title + rule
	footerHeight = 2 // status bar + help bar
)

// Model represents the application state
type Model struct {
	ctrl *explorer.Controller

	// layout
	width  int
	height int

	// tree pane and menu cursor
	tree       FileTree
	menuCursor int

	// look and feel
	themes   *ThemeManager
	styles   ThemedStyles
	keys     keyMap
	help     help.Model
	showHelp bool
	helpPane viewport.Model
	helpOK   bool // helpPane holds content rendered for the current width

	// status bar
	statusBar string

	// optional collaborators
	watcher   *Watcher
	remote    *phoenix.Client
	remoteCfg phoenix.Config
	connected bool
	logger    *slog.Logger
}

// Option configures a Model
type Option func(*Model)

// WithTheme selects a registered theme by name
func WithTheme(name string) Option {
	return func(m *Model) {
		if !m.themes.SetTheme(name) {
			m.logger.Warn("unknown theme, using default", "theme", name)
		}
	}
}

// WithWatcher reloads the tree through w
func WithWatcher(w *Watcher) Option {
	return func(m *Model) { m.watcher = w }
}

// WithPhoenix connects client on start and reports its state in the status bar
func WithPhoenix(client *phoenix.Client, cfg phoenix.Config) Option {
	return func(m *Model) {
		m.remote = client
		m.remoteCfg = cfg
	}
}

// WithLogger sets the model's logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewModel creates the explorer UI around ctrl
func NewModel(ctrl *explorer.Controller, opts ...Option) *Model {
	m := &Model{
		ctrl:      ctrl,
		width:     80, // Default width
		height:    24, // Default height
		tree:      NewFileTree(),
		themes:    NewThemeManager(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		helpPane:  viewport.New(80, 23),
		statusBar: "Press ? for help",
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	m.styles = NewThemedStyles(m.themes.GetTheme())
	m.refresh()
	m.updateComponentSizes()
	return m
}

// Controller exposes the explorer state machine
func (m Model) Controller() *explorer.Controller { return m.ctrl }

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.WindowSize()}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Next())
	}
	if m.remote != nil {
		cmds = append(cmds, m.remote.Connect(m.remoteCfg))
	}
	return tea.Batch(cmds...)
}

// SetDimensions updates the model dimensions
func (m *Model) SetDimensions(width, height int) {
	m.width = width
	m.height = height
	m.updateComponentSizes()
}

// updateComponentSizes recalculates component sizes based on current layout
func (m *Model) updateComponentSizes() {
	treeHeight := m.height - headerHeight - footerHeight
	if treeHeight < 1 {
		treeHeight = 1
	}
	m.tree.SetSize(m.width, treeHeight)
	m.help.Width = m.width
	m.helpPane.Width = m.width
	m.helpPane.Height = max(m.height-1, 1)
	m.helpOK = false
}

// refresh re-renders the rows from the controller
func (m *Model) refresh() {
	m.tree.SetRows(m.ctrl.Rows())
}
