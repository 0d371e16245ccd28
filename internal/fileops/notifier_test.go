package fileops

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/rubber_duck/explorer/internal/config"
	"github.com/rubber_duck/explorer/internal/explorer"
	"github.com/rubber_duck/explorer/internal/phoenix"
	"github.com/rubber_duck/explorer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePusher struct {
	events   []string
	payloads []map[string]any
	err      error
}

func (f *fakePusher) Push(event string, payload map[string]any) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	f.payloads = append(f.payloads, payload)
	return nil
}

var deleteA = explorer.Notification{Action: explorer.ActionDelete, FileName: "a.ts", Path: "src/a.ts"}

func TestLogNotifierWritesDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	n.Notify(deleteA)
	n.Notify(explorer.Notification{Action: explorer.ActionCopy, FileName: "b.ts"})

	out := buf.String()
	assert.True(t, strings.Contains(out, `msg="Deleting a.ts"`), out)
	assert.True(t, strings.Contains(out, `msg="Copying b.ts"`), out)
	assert.True(t, strings.Contains(out, "path=src/a.ts"), out)
}

func TestPhoenixNotifierPushesEvent(t *testing.T) {
	pusher := &fakePusher{}
	n := NewPhoenixNotifier(pusher, "sess-1", testutil.NewTestLogger(t))

	n.Notify(deleteA)

	require.Equal(t, []string{"file:delete"}, pusher.events)
	assert.Equal(t, map[string]any{
		"file_name": "a.ts",
		"path":      "src/a.ts",
		"session":   "sess-1",
	}, pusher.payloads[0])
}

func TestPhoenixNotifierSwallowsPushErrors(t *testing.T) {
	var buf bytes.Buffer
	pusher := &fakePusher{err: phoenix.ErrNotJoined}
	n := NewPhoenixNotifier(pusher, "s", slog.New(slog.NewTextHandler(&buf, nil)))

	assert.NotPanics(t, func() { n.Notify(deleteA) })
	assert.Contains(t, buf.String(), "file operation not forwarded")
}

func TestTee(t *testing.T) {
	var calls []string
	tee := Tee{
		explorer.NotifierFunc(func(n explorer.Notification) { calls = append(calls, "first:"+n.FileName) }),
		explorer.NotifierFunc(func(n explorer.Notification) { calls = append(calls, "second:"+n.FileName) }),
	}

	tee.Notify(deleteA)
	assert.Equal(t, []string{"first:a.ts", "second:a.ts"}, calls)
}

func TestEventNames(t *testing.T) {
	assert.Equal(t, "file:copy", Event(explorer.ActionCopy))
	assert.Equal(t, "file:rename", Event(explorer.ActionRename))
}

func TestNew(t *testing.T) {
	logger := testutil.NewTestLogger(t)
	client := phoenix.NewClient(logger)

	n, err := New(config.NotifierConfig{Kind: config.NotifierLog}, nil, "s", logger)
	require.NoError(t, err)
	assert.IsType(t, &LogNotifier{}, n)

	n, err = New(config.NotifierConfig{Kind: config.NotifierPhoenix}, client, "s", logger)
	require.NoError(t, err)
	assert.IsType(t, &PhoenixNotifier{}, n)

	n, err = New(config.NotifierConfig{Kind: config.NotifierBoth}, client, "s", logger)
	require.NoError(t, err)
	assert.Len(t, n.(Tee), 2)

	_, err = New(config.NotifierConfig{Kind: config.NotifierPhoenix}, nil, "s", logger)
	assert.Error(t, err)

	_, err = New(config.NotifierConfig{Kind: "smoke-signals"}, nil, "s", logger)
	assert.Error(t, err)
}

func TestUnjoinedClientIsDropped(t *testing.T) {
	client := phoenix.NewClient(nil)
	n := NewPhoenixNotifier(client, "s", nil)

	err := client.Push(Event(explorer.ActionCopy), n.Payload(deleteA))
	assert.True(t, errors.Is(err, phoenix.ErrNotJoined))
	assert.NotPanics(t, func() { n.Notify(deleteA) })
}
