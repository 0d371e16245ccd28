package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// HelpSection represents a section in the help screen
type HelpSection struct {
	Title     string
	Shortcuts []KeyboardShortcut
}

// KeyboardShortcut represents a keyboard or mouse shortcut
type KeyboardShortcut struct {
	Key         string
	Description string
}

func helpSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Navigation",
			Shortcuts: []KeyboardShortcut{
				{"↑/k ↓/j", "Move the cursor"},
				{"g / G", "Jump to the first / last row"},
				{"enter / space", "Open or close a folder; actions on a file"},
				{"→/l", "Expand a folder"},
				{"←/h", "Collapse a folder or go to its parent"},
			},
		},
		{
			Title: "File actions",
			Shortcuts: []KeyboardShortcut{
				{"m", "Open the action menu for the file under the cursor"},
				{"c / d / r", "Copy, delete or rename the menu's file"},
				{"esc", "Close the menu"},
			},
		},
		{
			Title: "Mouse",
			Shortcuts: []KeyboardShortcut{
				{"left click", "Open or close a folder, pick a menu item"},
				{"right click", "Open the action menu on a file"},
			},
		},
		{
			Title: "General",
			Shortcuts: []KeyboardShortcut{
				{"?", "Toggle this help"},
				{"q / ctrl+c", "Quit"},
			},
		},
	}
}

// helpMarkdown builds the markdown source of the help screen
func helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Keyboard & mouse\n")
	for _, section := range helpSections() {
		fmt.Fprintf(&b, "\n## %s\n\n| Key | Action |\n| --- | --- |\n", section.Title)
		for _, s := range section.Shortcuts {
			fmt.Fprintf(&b, "| `%s` | %s |\n", s.Key, s.Description)
		}
	}
	return b.String()
}

// renderHelp renders the help screen with glamour. On failure the raw
// markdown is returned.
func renderHelp(style string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown(), err
	}
	out, err := r.Render(helpMarkdown())
	if err != nil {
		return helpMarkdown(), err
	}
	return out, nil
}
