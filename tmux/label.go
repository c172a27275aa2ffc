package tmux

import "strings"

// friendlyCommands maps common tmux commands to short cheatsheet labels.
// Keys are the normalized command with flags, so variants like
// "split-window -h" and "split-window" get distinct labels.
var friendlyCommands = map[string]string{
	"send-prefix":       "send prefix",
	"detach-client":     "detach",
	"copy-mode":         "copy mode",
	"copy-mode -u":      "copy mode (page up)",
	"new-window":        "new window",
	"kill-window":       "kill window",
	"next-window":       "next window",
	"previous-window":   "previous window",
	"last-window":       "last window",
	"split-window":      "split vertical",
	"split-window -h":   "split horizontal",
	"split-window -v":   "split vertical",
	"kill-pane":         "kill pane",
	"last-pane":         "last pane",
	"rotate-window":     "rotate panes",
	"select-pane -U":    "focus up",
	"select-pane -D":    "focus down",
	"select-pane -L":    "focus left",
	"select-pane -R":    "focus right",
	"resize-pane -U":    "resize up",
	"resize-pane -D":    "resize down",
	"resize-pane -L":    "resize left",
	"resize-pane -R":    "resize right",
	"resize-pane -Z":    "zoom pane",
	"choose-tree -Zs":   "choose session",
	"choose-tree -Zw":   "choose window",
	"command-prompt":    "command prompt",
	"list-keys":         "list keys",
	"clock-mode":        "clock",
	"paste-buffer":      "paste",
	"paste-buffer -p":   "paste",
	"refresh-client -S": "refresh",
	"suspend-client":    "suspend",

	"send-keys -X begin-selection":           "begin selection",
	"send-keys -X copy-selection":            "copy selection",
	"send-keys -X copy-selection-and-cancel": "copy and exit",
	"send-keys -X cancel":                    "exit copy mode",
	"send-keys -X cursor-up":                 "cursor up",
	"send-keys -X cursor-down":               "cursor down",
	"send-keys -X cursor-left":               "cursor left",
	"send-keys -X cursor-right":              "cursor right",
	"send-keys -X page-up":                   "page up",
	"send-keys -X page-down":                 "page down",
	"send-keys -X halfpage-up":               "half page up",
	"send-keys -X halfpage-down":             "half page down",
	"send-keys -X history-top":               "go to top",
	"send-keys -X history-bottom":            "go to bottom",
	"send-keys -X search-forward":            "search forward",
	"send-keys -X search-backward":           "search backward",
	"send-keys -X start-of-line":             "start of line",
	"send-keys -X end-of-line":               "end of line",
	"send-keys -X next-word":                 "next word",
	"send-keys -X previous-word":             "previous word",
	"send-keys -X rectangle-toggle":          "rectangle select",
}

// CommandLabel converts a tmux command into a compact display label.
// Known commands get a friendly name; anything else is returned with
// whitespace collapsed so list-keys column padding doesn't leak into the
// HUD. Chained commands keep only their first segment.
func CommandLabel(command string) string {
	normalized := strings.Join(strings.Fields(command), " ")
	if normalized == "" {
		return command
	}

	// "select-layout even-horizontal ; display-message ..." - the first
	// segment is the action, the rest is decoration.
	if i := strings.Index(normalized, " ; "); i > 0 {
		normalized = normalized[:i]
	}

	if label, ok := friendlyCommands[normalized]; ok {
		return label
	}

	// Unknown send-keys dispatches still read better without the prefix.
	if rest, ok := strings.CutPrefix(normalized, "send-keys -X "); ok {
		return strings.ReplaceAll(rest, "-", " ")
	}

	return normalized
}
