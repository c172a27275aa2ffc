package tmux

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUnknownTable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "bad table name",
			err: fmt.Errorf("tmux list-keys -T nope: %w",
				&exec.ExitError{Stderr: []byte("table nope doesn't exist")}),
			want: true,
		},
		{
			name: "server not running",
			err: fmt.Errorf("tmux list-keys -T prefix: %w",
				&exec.ExitError{Stderr: []byte("no server running on /tmp/tmux-1000/default")}),
			want: false,
		},
		{
			name: "binary missing",
			err:  fmt.Errorf("%w: tmux binary not found", ErrNoServer),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnknownTable(tt.err))
		})
	}
}

func TestListKeysErrorKeepsSentinelsApart(t *testing.T) {
	// A failure caused by a missing server must not read as an unknown
	// table once wrapped the way ListKeys wraps it.
	underlying := fmt.Errorf("tmux list-keys -T prefix: %w", ErrNoServer)
	wrapped := fmt.Errorf("failed to list keys for table %s: %w", "prefix", underlying)

	assert.True(t, errors.Is(wrapped, ErrNoServer))
	assert.False(t, errors.Is(wrapped, ErrUnknownTable))
}
