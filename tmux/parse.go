package tmux

import (
	"strings"

	"keyhud/keybind"
)

// ParseListKeysLine parses one line of `tmux list-keys` output, e.g.
//
//	bind-key    -T prefix       C-o              rotate-window
//	bind-key -r -T prefix       Up               select-pane -U
//	bind-key    -T prefix       '"'              split-window
//
// It returns the key table, the binding, and whether the line was a binding
// at all. The command is turned into a display label via CommandLabel.
func ParseListKeysLine(line string) (string, keybind.Binding, bool) {
	tokens := tokenize(line)
	if len(tokens) == 0 || tokens[0] != "bind-key" {
		return "", keybind.Binding{}, false
	}

	table := ""
	i := 1
	for i < len(tokens) && strings.HasPrefix(tokens[i], "-") {
		if tokens[i] == "-T" && i+1 < len(tokens) {
			table = tokens[i+1]
			i += 2
			continue
		}
		// Repeat (-r) and note (-N ...) flags are irrelevant here.
		if tokens[i] == "-N" && i+1 < len(tokens) {
			i += 2
			continue
		}
		i++
	}

	if table == "" || i >= len(tokens) {
		return "", keybind.Binding{}, false
	}

	key := tokens[i]
	command := strings.Join(tokens[i+1:], " ")
	if command == "" {
		return "", keybind.Binding{}, false
	}

	return table, keybind.Binding{
		Trigger: keybind.ParseTrigger(key),
		Action:  CommandLabel(command),
	}, true
}

// tokenize splits a list-keys line on whitespace while honoring single
// quotes, double quotes, and backslash escapes, which tmux uses for keys
// like '"' and \;.
func tokenize(line string) []string {
	var tokens []string
	var current strings.Builder
	inToken := false
	var quote rune

	flush := func() {
		if inToken {
			tokens = append(tokens, current.String())
			current.Reset()
			inToken = false
		}
	}

	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			inToken = true
			escaped = false
		case r == '\\':
			escaped = true
			inToken = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			flush()
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	flush()
	return tokens
}
