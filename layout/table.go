package layout

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"keyhud/keybind"
)

// Continuation glyphs mark runs of rows sharing the same action: the first
// row of a run shows the action once, the rest show only the connector.
const (
	GlyphSingle = "━"
	GlyphFirst  = "┳"
	GlyphMiddle = "┫"
	GlyphLast   = "┛"
)

// Row is one table line: a trigger cell, a connector glyph and an action
// cell. Action is empty when the row continues the previous row's action.
type Row struct {
	Key    string
	Glyph  string
	Action string
}

// Rows converts a binding set into table rows, collapsing consecutive
// identical actions into a glyph-connected run. Pair it with SplitShared's
// (action, trigger) ordering so identical actions actually neighbor.
func Rows(set keybind.ActiveSet) []Row {
	rows := make([]Row, 0, len(set))
	for i, b := range set {
		prevMatch := i > 0 && set[i-1].Action == b.Action
		nextMatch := i < len(set)-1 && set[i+1].Action == b.Action

		var glyph string
		switch {
		case !prevMatch && nextMatch:
			glyph = GlyphFirst
		case prevMatch && nextMatch:
			glyph = GlyphMiddle
		case prevMatch && !nextMatch:
			glyph = GlyphLast
		default:
			glyph = GlyphSingle
		}

		action := b.Action
		if prevMatch {
			action = ""
		}
		rows = append(rows, Row{Key: b.Trigger.String(), Glyph: glyph, Action: action})
	}
	return rows
}

// KeyColumnWidth returns the widest trigger cell, for column alignment.
func KeyColumnWidth(rows []Row) int {
	width := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.Key); w > width {
			width = w
		}
	}
	return width
}

// RenderTable renders rows as plain aligned lines bounded by the viewport,
// eliding tail rows behind a "+N more" summary like Render does.
func RenderTable(rows []Row, vp Viewport) []string {
	if vp.Width < 1 || vp.Height < 1 {
		return nil
	}

	visible := rows
	var summary string
	if len(rows) > vp.Height {
		// Copy before patching the cut-off row; rows belongs to the caller.
		visible = append([]Row(nil), rows[:vp.Height-1]...)
		summary = fmt.Sprintf("+%d more", len(rows)-len(visible))
		// A run cut off mid-way must not end on a dangling connector: a
		// cut run head stands alone again, a cut continuation closes.
		if n := len(visible); n > 0 {
			last := visible[n-1]
			switch last.Glyph {
			case GlyphFirst:
				last.Glyph = GlyphSingle
			case GlyphMiddle:
				last.Glyph = GlyphLast
			}
			visible[n-1] = last
		}
	}

	keyWidth := KeyColumnWidth(visible)
	lines := make([]string, 0, len(visible)+1)
	for _, r := range visible {
		key := runewidth.FillLeft(r.Key, keyWidth)
		line := key + " " + r.Glyph + " " + r.Action
		lines = append(lines, fit(strings.TrimRight(line, " "), vp.Width))
	}
	if summary != "" {
		lines = append(lines, fit(summary, vp.Width))
	}
	return lines
}
