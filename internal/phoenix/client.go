// Package phoenix is a small Phoenix channel client used to forward file
// operations to a remote backend.
package phoenix

import (
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nshafer/phx"
)

// Sender delivers messages into the running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Config holds the configuration for the Phoenix client
type Config struct {
	URL    string
	APIKey string
	Topic  string
}

// Client manages the Phoenix WebSocket connection and one channel
type Client struct {
	mu      sync.Mutex
	socket  *phx.Socket
	channel *phx.Channel
	joined  atomic.Bool
	program Sender
	logger  *slog.Logger
}

// NewClient creates a new Phoenix client
func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{logger: logger.With("component", "phoenix")}
}

// SetProgram sets where connection state messages are delivered
func (c *Client) SetProgram(program Sender) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.program = program
}

func (c *Client) send(msg tea.Msg) {
	c.mu.Lock()
	p := c.program
	c.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Endpoint builds the socket URL, adding the API key as a query parameter
func Endpoint(config Config) (*url.URL, error) {
	endPoint, err := url.Parse(config.URL)
	if err != nil {
		return nil, fmt.Errorf("parse phoenix url: %w", err)
	}
	if endPoint.Scheme != "ws" && endPoint.Scheme != "wss" {
		return nil, fmt.Errorf("parse phoenix url: unsupported scheme %q", endPoint.Scheme)
	}
	if config.APIKey != "" {
		q := endPoint.Query()
		q.Set("api_key", config.APIKey)
		endPoint.RawQuery = q.Encode()
	}
	return endPoint, nil
}

// Connect establishes the WebSocket connection and joins config.Topic once
// the socket is open.
func (c *Client) Connect(config Config) tea.Cmd {
	return func() tea.Msg {
		endPoint, err := Endpoint(config)
		if err != nil {
			return DisconnectedMsg{Error: err}
		}

		socket := phx.NewSocket(endPoint)
		socket.Logger = NewSlogLogger(c.logger)

		socket.OnOpen(func() {
			c.send(ConnectedMsg{})
		})
		socket.OnError(func(err error) {
			c.send(DisconnectedMsg{Error: err})
		})
		socket.OnClose(func() {
			c.joined.Store(false)
			c.send(DisconnectedMsg{Error: fmt.Errorf("connection closed")})
		})

		if err := socket.Connect(); err != nil {
			return DisconnectedMsg{Error: err, Retry: true}
		}

		c.mu.Lock()
		c.socket = socket
		c.mu.Unlock()

		return c.join(socket, config.Topic)
	}
}

func (c *Client) join(socket *phx.Socket, topic string) tea.Msg {
	channel := socket.Channel(topic, nil)

	join, err := channel.Join()
	if err != nil {
		return ErrorMsg{Err: err, Component: "Phoenix Channel"}
	}

	c.mu.Lock()
	c.channel = channel
	c.mu.Unlock()

	join.Receive("ok", func(response any) {
		c.joined.Store(true)
		c.logger.Info("channel joined", "topic", topic)
		c.send(ChannelJoinedMsg{Topic: topic})
	})
	join.Receive("error", func(response any) {
		c.send(ErrorMsg{
			Err:       fmt.Errorf("failed to join channel: %v", response),
			Component: "Phoenix Channel",
		})
	})
	join.Receive("timeout", func(response any) {
		c.send(ErrorMsg{
			Err:       fmt.Errorf("timeout joining channel"),
			Component: "Phoenix Channel",
		})
	})

	return ChannelJoiningMsg{Topic: topic}
}

// Joined reports whether the channel join has been acknowledged
func (c *Client) Joined() bool {
	return c.joined.Load()
}

// Push queues event on the channel without waiting for a reply. Replies are
// logged only.
func (c *Client) Push(event string, payload map[string]any) error {
	c.mu.Lock()
	channel := c.channel
	c.mu.Unlock()

	if channel == nil || !c.Joined() {
		return ErrNotJoined
	}

	push, err := channel.Push(event, payload)
	if err != nil {
		return fmt.Errorf("push %s: %w", event, err)
	}

	push.Receive("ok", func(response any) {
		c.logger.Debug("push acknowledged", "event", event)
	})
	push.Receive("error", func(response any) {
		c.logger.Warn("push rejected", "event", event, "response", response)
	})
	push.Receive("timeout", func(response any) {
		c.logger.Warn("push timed out", "event", event)
	})
	return nil
}

// Disconnect leaves the channel and closes the socket
func (c *Client) Disconnect() tea.Cmd {
	return func() tea.Msg {
		c.mu.Lock()
		channel, socket := c.channel, c.socket
		c.channel, c.socket = nil, nil
		c.mu.Unlock()

		c.joined.Store(false)
		if channel != nil {
			channel.Leave()
		}
		if socket != nil {
			socket.Disconnect()
		}
		return DisconnectedMsg{Error: nil}
	}
}

// Reconnect attempts to reconnect after a delay
func (c *Client) Reconnect(config Config, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return RetryMsg{Cmd: c.Connect(config)}
	})
}
