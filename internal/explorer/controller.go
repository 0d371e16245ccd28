// Package explorer holds the expansion and context-menu state of the
// file explorer and the rules that move it.
//
// All methods run synchronously on the UI loop; a Controller is not safe
// for concurrent use.
package explorer

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/rubber_duck/explorer/internal/tree"
)

// Action is a context-menu action
type Action string

const (
	ActionCopy   Action = "copy"
	ActionDelete Action = "delete"
	ActionRename Action = "rename"
)

// Actions lists the menu actions in display order
var Actions = []Action{ActionCopy, ActionDelete, ActionRename}

// Notification is sent to the file-operations collaborator after a menu action
type Notification struct {
	Action   Action   `json:"action"`
	FileName string   `json:"fileName"`
	Path     tree.Key `json:"path"`
}

// Notifier receives file-operation notifications. Calls are fire-and-forget:
// implementations must not block the UI loop.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(Notification)

// Notify implements Notifier
func (f NotifierFunc) Notify(n Notification) { f(n) }

// Position is a screen cell
type Position struct {
	Left int
	Top  int
}

// ContextMenu is an open menu and the file it was opened for
type ContextMenu struct {
	Position  Position
	Target    tree.Node
	TargetKey tree.Key
}

// Controller owns the transient UI state of one explorer instance
type Controller struct {
	id        string
	root      tree.Node
	expansion *Expansion
	menu      *ContextMenu
	notifier  Notifier
	logger    *slog.Logger
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the controller's logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSessionID overrides the generated session id
func WithSessionID(id string) Option {
	return func(c *Controller) {
		c.id = id
	}
}

// NewController creates a controller over root. A nil notifier drops
// every notification.
func NewController(root tree.Node, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		id:        uuid.New().String(),
		root:      root,
		expansion: NewExpansion(),
		notifier:  notifier,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = NotifierFunc(func(Notification) {})
	}
	c.logger = c.logger.With("session", c.id)
	return c
}

// SessionID identifies this controller in logs and remote notifications
func (c *Controller) SessionID() string { return c.id }

// Root returns the tree being displayed
func (c *Controller) Root() tree.Node { return c.root }

// Expansion exposes the expansion set for inspection
func (c *Controller) Expansion() *Expansion { return c.expansion }

// Rows renders the current tree under the current expansion state
func (c *Controller) Rows() []Row {
	return Render(c.root, c.expansion)
}

// IsExpanded reports whether the folder at key is open
func (c *Controller) IsExpanded(key tree.Key) bool {
	return c.expansion.Has(key)
}

// ToggleFolder expands a collapsed folder or collapses an expanded one.
// Keys that do not name a folder are ignored and false is returned.
func (c *Controller) ToggleFolder(key tree.Key) bool {
	n, ok := tree.Find(c.root, key)
	if !ok || !n.IsFolder() {
		c.logger.Debug("toggle ignored", "key", key)
		return false
	}
	expanded := c.expansion.Toggle(key)
	c.logger.Debug("folder toggled", "key", key, "expanded", expanded)
	return true
}

// RequestContextMenu opens the menu for the file at key at the given
// position, replacing any menu already open. It returns true when the
// gesture was consumed; callers must not handle a consumed gesture any
// further. Folders never open a menu.
func (c *Controller) RequestContextMenu(pos Position, key tree.Key) bool {
	n, ok := tree.Find(c.root, key)
	if !ok || n.IsFolder() {
		c.logger.Debug("context menu ignored", "key", key)
		return false
	}
	c.menu = &ContextMenu{Position: pos, Target: n, TargetKey: key}
	c.logger.Debug("context menu opened", "key", key, "left", pos.Left, "top", pos.Top)
	return true
}

// Menu returns the open context menu, if any
func (c *Controller) Menu() (ContextMenu, bool) {
	if c.menu == nil {
		return ContextMenu{}, false
	}
	return *c.menu, true
}

// MenuOpen reports whether a context menu is open
func (c *Controller) MenuOpen() bool {
	return c.menu != nil
}

// Selected returns the file the open menu targets
func (c *Controller) Selected() (tree.Node, bool) {
	if c.menu == nil {
		return tree.Node{}, false
	}
	return c.menu.Target, true
}

// Copy notifies a copy of the selected file and closes the menu
func (c *Controller) Copy() { c.Apply(ActionCopy) }

// Delete notifies a delete of the selected file and closes the menu
func (c *Controller) Delete() { c.Apply(ActionDelete) }

// Rename notifies a rename of the selected file and closes the menu
func (c *Controller) Rename() { c.Apply(ActionRename) }

// Apply runs a menu action. The collaborator is only notified when a
// file is selected; the menu is closed either way.
func (c *Controller) Apply(action Action) {
	if c.menu != nil {
		n := Notification{
			Action:   action,
			FileName: c.menu.Target.Name,
			Path:     c.menu.TargetKey,
		}
		c.logger.Info("file operation requested", "action", n.Action, "file", n.FileName, "path", n.Path)
		c.notifier.Notify(n)
	}
	c.menu = nil
}

// Dismiss closes the menu without notifying anyone
func (c *Controller) Dismiss() {
	if c.menu != nil {
		c.logger.Debug("context menu dismissed", "key", c.menu.TargetKey)
	}
	c.menu = nil
}

// ReplaceTree swaps in a new tree. Expanded folders that still exist stay
// open; any open menu is closed.
func (c *Controller) ReplaceTree(root tree.Node) {
	folders := make(map[tree.Key]bool)
	for _, k := range tree.Folders(root) {
		folders[k] = true
	}
	before := c.expansion.Len()
	c.expansion.Retain(func(k tree.Key) bool { return folders[k] })
	c.root = root
	c.menu = nil
	c.logger.Info("tree replaced", "root", root.Name, "pruned", before-c.expansion.Len())
}
