package tmux

import (
	"errors"

	"keyhud/keybind"
)

// Error sentinels for consistent error handling
var (
	ErrNotInsideTmux = errors.New("not running inside tmux")
	ErrNoServer      = errors.New("tmux server not running")
	ErrUnknownTable  = errors.New("unknown key table")
)

// KeyLister reads the server's keybinding configuration
type KeyLister interface {
	// ListKeyTables returns the names of all key tables that currently
	// have bindings, in the order the server reports them.
	ListKeyTables() ([]string, error)
	// ListKeys returns the bindings of one key table in declaration order.
	ListKeys(table string) ([]keybind.Binding, error)
}

// ClientStater reads the state of the attached client
type ClientStater interface {
	// CurrentKeyTable returns the key table the attached client is in
	// ("root" outside the prefix, "prefix" after the prefix key, ...).
	CurrentKeyTable() (string, error)
	// PaneSize returns the active pane's width and height in cells.
	PaneSize() (width, height int, err error)
}

// Configurator changes tmux configuration
type Configurator interface {
	BindKey(table, key, command string) error
	DisplayMessage(message string) error
}

// Client is a composite interface for everything the HUD needs from tmux
type Client interface {
	KeyLister
	ClientStater
	Configurator
	InsideTmux() bool
}
