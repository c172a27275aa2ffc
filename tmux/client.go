package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"keyhud/keybind"
	"keyhud/logging"
)

// DefaultClient is the default implementation of the Client interface. It
// shells out to the tmux binary; every call is a short one-shot query.
type DefaultClient struct{}

// Compile-time interface verification
var _ Client = (*DefaultClient)(nil)

// NewClient creates a new DefaultClient instance
func NewClient() *DefaultClient {
	return &DefaultClient{}
}

// InsideTmux reports whether the process runs inside a tmux client
func (c *DefaultClient) InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}

// ListKeyTables returns the key tables the server currently knows about
func (c *DefaultClient) ListKeyTables() ([]string, error) {
	out, err := c.run("list-keys")
	if err != nil {
		return nil, err
	}

	var tables []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(out, "\n") {
		table, _, ok := ParseListKeysLine(line)
		if !ok || seen[table] {
			continue
		}
		seen[table] = true
		tables = append(tables, table)
	}
	return tables, nil
}

// ListKeys returns the bindings of one key table in declaration order
func (c *DefaultClient) ListKeys(table string) ([]keybind.Binding, error) {
	out, err := c.run("list-keys", "-T", table)
	if err != nil {
		if isUnknownTable(err) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
		}
		return nil, fmt.Errorf("failed to list keys for table %s: %w", table, err)
	}

	var bindings []keybind.Binding
	for _, line := range strings.Split(out, "\n") {
		_, b, ok := ParseListKeysLine(line)
		if !ok {
			continue
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}

// CurrentKeyTable returns the key table of the attached client
func (c *DefaultClient) CurrentKeyTable() (string, error) {
	if !c.InsideTmux() {
		return "", ErrNotInsideTmux
	}
	out, err := c.run("display-message", "-p", "#{client_key_table}")
	if err != nil {
		return "", err
	}
	table := strings.TrimSpace(out)
	if table == "" {
		table = "root"
	}
	return table, nil
}

// PaneSize returns the active pane's dimensions in cells
func (c *DefaultClient) PaneSize() (int, int, error) {
	out, err := c.run("display-message", "-p", "#{pane_width} #{pane_height}")
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected pane size output: %q", out)
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad pane width: %w", err)
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad pane height: %w", err)
	}
	return width, height, nil
}

// BindKey binds a key in the specified key table
func (c *DefaultClient) BindKey(table, key, command string) error {
	logging.Logger.Info("Binding key", "table", table, "key", key, "command", command)
	args := append([]string{"bind-key", "-T", table, key}, strings.Fields(command)...)
	if _, err := c.run(args...); err != nil {
		return fmt.Errorf("failed to bind %s in table %s: %w", key, table, err)
	}
	return nil
}

// DisplayMessage shows a message in the tmux status line
func (c *DefaultClient) DisplayMessage(message string) error {
	if _, err := c.run("display-message", message); err != nil {
		return fmt.Errorf("failed to display message: %w", err)
	}
	return nil
}

// isUnknownTable reports whether a list-keys failure names a bad key
// table rather than a missing server. tmux prints "table X doesn't
// exist" on stderr for that case.
func isUnknownTable(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	return strings.Contains(string(exitErr.Stderr), "table")
}

// run executes a tmux command and returns its stdout
func (c *DefaultClient) run(args ...string) (string, error) {
	cmd := exec.Command("tmux", args...)
	out, err := cmd.Output()
	if err != nil {
		if _, lookErr := exec.LookPath("tmux"); lookErr != nil {
			return "", fmt.Errorf("%w: tmux binary not found", ErrNoServer)
		}
		logging.Logger.Debug("tmux command failed", "args", args, "error", err)
		return "", fmt.Errorf("tmux %s: %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}

// Package-level default client for the common single-client case
var defaultClient = NewClient()

// InsideTmux reports whether keyhud itself runs under tmux
func InsideTmux() bool {
	return defaultClient.InsideTmux()
}

// CurrentKeyTable returns the attached client's key table via the default client
func CurrentKeyTable() (string, error) {
	return defaultClient.CurrentKeyTable()
}
