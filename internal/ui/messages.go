package ui

import "github.com/rubber_duck/explorer/internal/tree"

// TreeLoadedMsg carries a freshly loaded tree that replaces the current one
type TreeLoadedMsg struct {
	Root tree.Node
}

// TreeLoadErrorMsg reports a failed reload; the current tree stays
type TreeLoadErrorMsg struct {
	Err error
}
