package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"keyhud/keybind"
	"keyhud/layout"
)

// Lines reserved around the binding area: title, blank separator, and the
// bottom bar together with its vertical padding.
const chromeLines = 5

// Minimum column width before the shared column folds under the mode column.
const minColumnWidth = 24

func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		if m.help != nil {
			return m.help.View()
		}
	case stateOptions:
		if m.options != nil {
			return m.options.View()
		}
	}
	return m.viewHud()
}

func (m *Model) viewHud() string {
	header := titleStyle.Render("keyhud") + " " + modeStyle.Render(m.modeLabel())
	if m.modeEvents != nil && !m.followLive {
		header += dimStyle.Render("  (pinned)")
	}

	chrome := chromeLines
	if m.err != nil {
		chrome++
	}
	vp := layout.Viewport{Width: m.width, Height: m.height - chrome}

	var body string
	if m.showShared {
		body = m.viewSplit(vp)
	} else {
		body = strings.Join(layout.Render(keybind.Resolve(m.cfg, m.mode), vp), "\n")
	}

	view := header + "\n\n" + body
	if m.err != nil {
		view += "\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	view += "\n" + m.viewBottomBar()
	return view
}

func (m *Model) modeLabel() string {
	if m.mode == "" {
		return "global"
	}
	return m.mode
}

// viewSplit renders the current mode's own bindings next to the bindings it
// shares with other modes, stacking the two sections when the viewport is
// too narrow for columns.
func (m *Model) viewSplit(vp layout.Viewport) string {
	own, shared := keybind.SplitShared(m.cfg, m.mode)

	colWidth := (vp.Width - 3) / 2
	if colWidth >= minColumnWidth {
		colVp := layout.Viewport{Width: colWidth, Height: vp.Height}
		left := m.viewSection(m.modeLabel(), own, colVp)
		right := m.viewSection("shared", shared, colVp)
		gap := strings.Repeat(" ", 3)
		return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
	}

	// Stacked fallback: the mode's own bindings get the top half.
	topHeight := vp.Height / 2
	top := m.viewSection(m.modeLabel(), own, layout.Viewport{Width: vp.Width, Height: topHeight})
	bottom := m.viewSection("shared", shared, layout.Viewport{Width: vp.Width, Height: vp.Height - topHeight - 1})
	return top + "\n" + bottom
}

// viewSection renders a titled, styled binding table. The section title
// consumes one line of the viewport.
func (m *Model) viewSection(title string, set keybind.ActiveSet, vp layout.Viewport) string {
	table := layout.Viewport{Width: vp.Width, Height: vp.Height - 1}
	lines := append(
		[]string{sectionStyle.Render(fit(title, vp.Width))},
		m.styledTable(layout.Rows(set), table)...,
	)
	return strings.Join(lines, "\n")
}

// styledTable is the lipgloss twin of layout.RenderTable: right-aligned key
// column, continuation glyphs dimmed, actions truncated to the viewport.
func (m *Model) styledTable(rows []layout.Row, vp layout.Viewport) []string {
	if vp.Width <= 0 || vp.Height <= 0 || len(rows) == 0 {
		return nil
	}

	visible := rows
	var more int
	if len(rows) > vp.Height {
		visible = rows[:vp.Height-1]
		more = len(rows) - len(visible)
	}

	keyWidth := layout.KeyColumnWidth(rows)
	lines := make([]string, 0, len(visible)+1)
	for i, row := range visible {
		glyph := row.Glyph
		// A run cut off by the viewport must not end on a dangling
		// connector: a cut run head stands alone, a cut continuation closes.
		if more > 0 && i == len(visible)-1 {
			switch glyph {
			case layout.GlyphFirst:
				glyph = layout.GlyphSingle
			case layout.GlyphMiddle:
				glyph = layout.GlyphLast
			}
		}

		actionWidth := vp.Width - keyWidth - 3
		line := keyStyle.Render(runewidth.FillLeft(row.Key, keyWidth)) +
			" " + glyphStyle.Render(glyph) + " " +
			actionStyle.Render(fit(row.Action, actionWidth))
		lines = append(lines, line)
	}
	if more > 0 {
		lines = append(lines, dimStyle.Render(fit(fmt.Sprintf("+%d more", more), vp.Width)))
	}
	return lines
}

func (m *Model) viewBottomBar() string {
	parts := make([]string, 0, 8)
	for _, b := range m.keys.ShortHelp() {
		help := b.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	if m.modeEvents != nil && !m.followLive {
		help := m.keys.Follow.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return helpStyle.Render(fit(strings.Join(parts, "  ·  "), m.width))
}

func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "…")
}
