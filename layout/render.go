// Package layout packs a resolved binding set into a bounded character-cell
// viewport. Output is plain text lines; no line ever exceeds the viewport
// width and the line count never exceeds the viewport height. When content
// does not fit, entries are elided from the tail and the last visible line
// summarizes how many were dropped. All functions are pure.
package layout

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"keyhud/keybind"
)

// Viewport is the display area in character cells.
type Viewport struct {
	Width  int
	Height int
}

const (
	entrySeparator = "  "
	entryArrow     = " → "
	ellipsis       = "…"
)

// Entry formats a single binding as "<trigger> → <action>".
func Entry(b keybind.Binding) string {
	return b.Trigger.String() + entryArrow + b.Action
}

// Render lays the active set out into the viewport. Entries are joined with
// a two-space separator while they fit on a line; an entry too wide for the
// viewport on its own is cut with an ellipsis. If the packed content is
// taller than the viewport, tail entries are dropped and the last line
// becomes a "+N more" summary.
func Render(active keybind.ActiveSet, vp Viewport) []string {
	if vp.Width < 1 || vp.Height < 1 {
		return nil
	}

	entries := make([]string, len(active))
	for i, b := range active {
		entries[i] = fit(Entry(b), vp.Width)
	}

	lines := pack(entries, vp.Width)
	if len(lines) <= vp.Height {
		return lines
	}

	for k := len(entries) - 1; k >= 0; k-- {
		lines = pack(entries[:k], vp.Width)
		if len(lines) <= vp.Height-1 {
			summary := fmt.Sprintf("+%d more", len(entries)-k)
			return append(lines, fit(summary, vp.Width))
		}
	}

	return []string{fit(ellipsis, vp.Width)}
}

// pack joins entries greedily into lines no wider than width.
func pack(entries []string, width int) []string {
	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, entry := range entries {
		w := runewidth.StringWidth(entry)
		switch {
		case lineWidth == 0:
			line.WriteString(entry)
			lineWidth = w
		case lineWidth+len(entrySeparator)+w <= width:
			line.WriteString(entrySeparator)
			line.WriteString(entry)
			lineWidth += len(entrySeparator) + w
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(entry)
			lineWidth = w
		}
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// fit truncates s with an ellipsis when it is wider than w display cells.
func fit(s string, w int) string {
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, ellipsis)
}
