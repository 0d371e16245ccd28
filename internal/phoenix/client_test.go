package phoenix

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nshafer/phx"
	"github.com/rubber_duck/explorer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSender struct {
	msgs []tea.Msg
}

func (s *captureSender) Send(msg tea.Msg) { s.msgs = append(s.msgs, msg) }

func TestNewClient(t *testing.T) {
	client := NewClient(nil)

	require.NotNil(t, client)
	assert.Nil(t, client.socket)
	assert.Nil(t, client.channel)
	assert.False(t, client.Joined())
}

func TestEndpoint(t *testing.T) {
	u, err := Endpoint(Config{URL: "ws://localhost:4000/socket", APIKey: "k1"})
	require.NoError(t, err)
	assert.Equal(t, "k1", u.Query().Get("api_key"))
	assert.Equal(t, "/socket", u.Path)

	u, err = Endpoint(Config{URL: "wss://example.com/socket"})
	require.NoError(t, err)
	assert.Empty(t, u.RawQuery)

	_, err = Endpoint(Config{URL: "http://example.com/socket"})
	assert.Error(t, err)

	_, err = Endpoint(Config{URL: "://bad"})
	assert.Error(t, err)
}

func TestConnectWithBadURLReportsDisconnect(t *testing.T) {
	client := NewClient(testutil.NewTestLogger(t))

	msg := client.Connect(Config{URL: "ftp://nowhere"})()

	disc, ok := msg.(DisconnectedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Error(t, disc.Error)
	assert.False(t, disc.Retry, "a bad url will not get better")
}

func TestPushBeforeJoin(t *testing.T) {
	client := NewClient(testutil.NewTestLogger(t))

	err := client.Push("file:copy", map[string]any{"file_name": "a.ts"})
	assert.True(t, errors.Is(err, ErrNotJoined))
}

func TestDisconnectWithoutConnection(t *testing.T) {
	client := NewClient(nil)

	msg := client.Disconnect()()
	assert.Equal(t, DisconnectedMsg{Error: nil}, msg)
}

func TestSendWithoutProgramIsNoop(t *testing.T) {
	client := NewClient(nil)
	assert.NotPanics(t, func() { client.send(ConnectedMsg{}) })

	sender := &captureSender{}
	client.SetProgram(sender)
	client.send(ConnectedMsg{})
	assert.Equal(t, []tea.Msg{ConnectedMsg{}}, sender.msgs)
}

func TestReconnectReturnsTick(t *testing.T) {
	client := NewClient(nil)
	assert.NotNil(t, client.Reconnect(Config{URL: "ws://localhost:4000/socket"}, time.Millisecond))
}

func TestSlogLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := NewSlogLogger(logger)

	l.Printf(phx.LogWarning, "socket", "lost %s", "connection")
	l.Println(phx.LogInfo, "push", "queued")

	out := buf.String()
	assert.True(t, strings.Contains(out, "level=WARN msg=\"lost connection\""), out)
	assert.True(t, strings.Contains(out, "level=DEBUG msg=queued"), out)
}
