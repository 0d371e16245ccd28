package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color scheme for the explorer
type Theme struct {
	Name        string
	Description string

	// Base colors
	Border lipgloss.Color
	Title  lipgloss.Color

	// UI element colors
	StatusBar     lipgloss.Color
	StatusBarText lipgloss.Color
	Selection     lipgloss.Color
	SelectionText lipgloss.Color

	// File tree colors
	TreeDirectory lipgloss.Color
	TreeFile      lipgloss.Color
	TreeSelected  lipgloss.Color
	TreeExpanded  lipgloss.Color
	TreeMeta      lipgloss.Color

	// Context menu colors
	MenuBorder     lipgloss.Color
	MenuFg         lipgloss.Color
	MenuSelected   lipgloss.Color
	MenuSelectedBg lipgloss.Color

	// glamour standard style used for the help screen
	GlamourStyle string
}

// ThemeManager manages available themes and theme switching
type ThemeManager struct {
	themes       map[string]*Theme
	currentTheme string
}

// NewThemeManager creates a new theme manager with default themes
func NewThemeManager() *ThemeManager {
	tm := &ThemeManager{
		themes:       make(map[string]*Theme),
		currentTheme: "dark",
	}

	tm.RegisterTheme(DefaultDarkTheme())
	tm.RegisterTheme(DefaultLightTheme())
	tm.RegisterTheme(DraculaTheme())

	return tm
}

// RegisterTheme adds a new theme to the manager
func (tm *ThemeManager) RegisterTheme(theme *Theme) {
	tm.themes[theme.Name] = theme
}

// SetTheme changes the current theme
func (tm *ThemeManager) SetTheme(name string) bool {
	if _, exists := tm.themes[name]; exists {
		tm.currentTheme = name
		return true
	}
	return false
}

// GetTheme returns the current theme
func (tm *ThemeManager) GetTheme() *Theme {
	if theme, exists := tm.themes[tm.currentTheme]; exists {
		return theme
	}
	// Fallback to dark theme
	return DefaultDarkTheme()
}

// GetThemeNames returns all available theme names, sorted
func (tm *ThemeManager) GetThemeNames() []string {
	names := make([]string, 0, len(tm.themes))
	for name := range tm.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetCurrentThemeName returns the name of the current theme
func (tm *ThemeManager) GetCurrentThemeName() string {
	return tm.currentTheme
}

// DefaultDarkTheme returns the default dark theme
func DefaultDarkTheme() *Theme {
	return &Theme{
		Name:        "dark",
		Description: "Default dark theme",

		Border: lipgloss.Color("240"),
		Title:  lipgloss.Color("212"),

		StatusBar:     lipgloss.Color("237"),
		StatusBarText: lipgloss.Color("250"),
		Selection:     lipgloss.Color("240"),
		SelectionText: lipgloss.Color("255"),

		TreeDirectory: lipgloss.Color("33"),
		TreeFile:      lipgloss.Color("252"),
		TreeSelected:  lipgloss.Color("212"),
		TreeExpanded:  lipgloss.Color("214"),
		TreeMeta:      lipgloss.Color("242"),

		MenuBorder:     lipgloss.Color("62"),
		MenuFg:         lipgloss.Color("252"),
		MenuSelected:   lipgloss.Color("255"),
		MenuSelectedBg: lipgloss.Color("62"),

		GlamourStyle: "dark",
	}
}

// DefaultLightTheme returns the default light theme
func DefaultLightTheme() *Theme {
	return &Theme{
		Name:        "light",
		Description: "Default light theme",

		Border: lipgloss.Color("250"),
		Title:  lipgloss.Color("33"),

		StatusBar:     lipgloss.Color("250"),
		StatusBarText: lipgloss.Color("235"),
		Selection:     lipgloss.Color("253"),
		SelectionText: lipgloss.Color("235"),

		TreeDirectory: lipgloss.Color("33"),
		TreeFile:      lipgloss.Color("235"),
		TreeSelected:  lipgloss.Color("39"),
		TreeExpanded:  lipgloss.Color("166"),
		TreeMeta:      lipgloss.Color("245"),

		MenuBorder:     lipgloss.Color("33"),
		MenuFg:         lipgloss.Color("235"),
		MenuSelected:   lipgloss.Color("255"),
		MenuSelectedBg: lipgloss.Color("33"),

		GlamourStyle: "light",
	}
}

// DraculaTheme returns the Dracula color theme
func DraculaTheme() *Theme {
	return &Theme{
		Name:        "dracula",
		Description: "Dracula color scheme",

		Border: lipgloss.Color("#44475a"),
		Title:  lipgloss.Color("#ff79c6"),

		StatusBar:     lipgloss.Color("#44475a"),
		StatusBarText: lipgloss.Color("#f8f8f2"),
		Selection:     lipgloss.Color("#44475a"),
		SelectionText: lipgloss.Color("#f8f8f2"),

		TreeDirectory: lipgloss.Color("#bd93f9"),
		TreeFile:      lipgloss.Color("#f8f8f2"),
		TreeSelected:  lipgloss.Color("#ff79c6"),
		TreeExpanded:  lipgloss.Color("#ffb86c"),
		TreeMeta:      lipgloss.Color("#6272a4"),

		MenuBorder:     lipgloss.Color("#bd93f9"),
		MenuFg:         lipgloss.Color("#f8f8f2"),
		MenuSelected:   lipgloss.Color("#282a36"),
		MenuSelectedBg: lipgloss.Color("#bd93f9"),

		GlamourStyle: "dracula",
	}
}

// ThemedStyles contains all UI styles based on the current theme
type ThemedStyles struct {
	title        lipgloss.Style
	rule         lipgloss.Style
	statusBar    lipgloss.Style
	cursor       lipgloss.Style
	dir          lipgloss.Style
	dirExpanded  lipgloss.Style
	file         lipgloss.Style
	meta         lipgloss.Style
	menuBox      lipgloss.Style
	menuItem     lipgloss.Style
	menuSelected lipgloss.Style
}

// NewThemedStyles derives the UI styles from theme
func NewThemedStyles(theme *Theme) ThemedStyles {
	return ThemedStyles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Title),

		rule: lipgloss.NewStyle().
			Foreground(theme.Border),

		statusBar: lipgloss.NewStyle().
			Foreground(theme.StatusBarText).
			Background(theme.StatusBar),

		cursor: lipgloss.NewStyle().
			Foreground(theme.TreeSelected).
			Background(theme.Selection),

		dir: lipgloss.NewStyle().
			Foreground(theme.TreeDirectory),

		dirExpanded: lipgloss.NewStyle().
			Foreground(theme.TreeExpanded),

		file: lipgloss.NewStyle().
			Foreground(theme.TreeFile),

		meta: lipgloss.NewStyle().
			Foreground(theme.TreeMeta).
			Italic(true),

		menuBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.MenuBorder),

		menuItem: lipgloss.NewStyle().
			Foreground(theme.MenuFg).
			Padding(0, 1),

		menuSelected: lipgloss.NewStyle().
			Foreground(theme.MenuSelected).
			Background(theme.MenuSelectedBg).
			Padding(0, 1),
	}
}
