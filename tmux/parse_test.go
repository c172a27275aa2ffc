package tmux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListKeysLine(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantTable   string
		wantTrigger string
		wantAction  string
	}{
		{
			name:        "plain prefix binding",
			line:        "bind-key    -T prefix       C-o              rotate-window",
			wantTable:   "prefix",
			wantTrigger: "Ctrl+o",
			wantAction:  "rotate panes",
		},
		{
			name:        "repeatable binding",
			line:        "bind-key -r -T prefix       Up               select-pane -U",
			wantTable:   "prefix",
			wantTrigger: "Up",
			wantAction:  "focus up",
		},
		{
			name:        "quoted key",
			line:        `bind-key    -T prefix       '"'              split-window`,
			wantTable:   "prefix",
			wantTrigger: `"`,
			wantAction:  "split vertical",
		},
		{
			name:        "note flag is skipped",
			line:        `bind-key -N 'Kill the pane' -T prefix x confirm-before kill-pane`,
			wantTable:   "prefix",
			wantTrigger: "x",
			wantAction:  "confirm-before kill-pane",
		},
		{
			name:        "copy mode dispatch",
			line:        "bind-key    -T copy-mode-vi v    send-keys -X begin-selection",
			wantTable:   "copy-mode-vi",
			wantTrigger: "v",
			wantAction:  "begin selection",
		},
		{
			name:        "root table binding",
			line:        "bind-key    -T root         MouseDown1Pane   select-pane -t = \\; send-keys -M",
			wantTable:   "root",
			wantTrigger: "MouseDown1Pane",
			wantAction:  "select-pane -t =",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, binding, ok := ParseListKeysLine(tt.line)

			require.True(t, ok)
			assert.Equal(t, tt.wantTable, table)
			assert.Equal(t, tt.wantTrigger, binding.Trigger.String())
			assert.Equal(t, tt.wantAction, binding.Action)
		})
	}
}

func TestParseListKeysLineRejects(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "empty line", line: ""},
		{name: "whitespace only", line: "   \t  "},
		{name: "not a bind-key line", line: "set-option -g prefix C-q"},
		{name: "missing table", line: "bind-key C-o rotate-window"},
		{name: "missing command", line: "bind-key -T prefix C-o"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := ParseListKeysLine(tt.line)

			assert.False(t, ok)
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain fields",
			line: "bind-key -T prefix C-o rotate-window",
			want: []string{"bind-key", "-T", "prefix", "C-o", "rotate-window"},
		},
		{
			name: "collapses runs of whitespace",
			line: "bind-key    -T prefix\t\tC-o   rotate-window",
			want: []string{"bind-key", "-T", "prefix", "C-o", "rotate-window"},
		},
		{
			name: "single quoted token",
			line: `bind-key -T prefix '"' split-window`,
			want: []string{"bind-key", "-T", "prefix", `"`, "split-window"},
		},
		{
			name: "double quoted token with spaces",
			line: `bind-key -N "Kill the pane" -T prefix x kill-pane`,
			want: []string{"bind-key", "-N", "Kill the pane", "-T", "prefix", "x", "kill-pane"},
		},
		{
			name: "backslash escape",
			line: `bind-key -T prefix \; command-prompt`,
			want: []string{"bind-key", "-T", "prefix", ";", "command-prompt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(tt.line))
		})
	}
}
