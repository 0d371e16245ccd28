package phoenix

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNotJoined is returned by Push before the channel join is acknowledged
var ErrNotJoined = errors.New("phoenix channel not joined")

// Message types used by Phoenix client
type (
	ConnectedMsg      struct{}
	ChannelJoinedMsg  struct{ Topic string }
	ChannelJoiningMsg struct{ Topic string }

	// DisconnectedMsg reports a lost or failed connection. Retry is set
	// when the socket never came up and connecting again may help.
	DisconnectedMsg struct {
		Error error
		Retry bool
	}

	ErrorMsg struct {
		Err       error
		Component string
	}

	RetryMsg struct {
		Cmd tea.Cmd
	}
)
