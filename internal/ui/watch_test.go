package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rubber_duck/explorer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher")
		return nil
	}
}

func TestWatcherReloadsTree(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type: folder\nname: src\n"), 0o644))

	w, err := NewWatcher(path, testutil.NewTestLogger(t))
	require.NoError(t, err)
	defer w.Close()

	cmd := w.Next()
	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("type: folder\nname: src\ndata:\n  - type: file\n    name: a.ts\n"), 0o644))

	msg := waitMsg(t, cmd)
	loaded, ok := msg.(TreeLoadedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, "src", loaded.Root.Name)
	require.Len(t, loaded.Root.Children, 1)
	assert.Equal(t, "a.ts", loaded.Root.Children[0].Name)
}

func TestWatcherReportsInvalidTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type: folder\nname: src\n"), 0o644))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	defer w.Close()

	cmd := w.Next()
	require.NoError(t, os.WriteFile(path, []byte("type: nonsense\nname: src\n"), 0o644))

	msg := waitMsg(t, cmd)
	_, ok := msg.(TreeLoadErrorMsg)
	assert.True(t, ok, "got %T", msg)
}

func TestWatcherClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.Nil(t, waitMsg(t, w.Next()))
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "tree.yaml"), nil)
	assert.Error(t, err)
}
