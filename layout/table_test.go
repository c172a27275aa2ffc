package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsCollapseEqualActions(t *testing.T) {
	set := bindings(
		"h", "move focus",
		"j", "move focus",
		"k", "move focus",
		"q", "quit",
	)

	rows := Rows(set)

	require.Len(t, rows, 4)
	assert.Equal(t, Row{Key: "h", Glyph: "┳", Action: "move focus"}, rows[0])
	assert.Equal(t, Row{Key: "j", Glyph: "┫", Action: ""}, rows[1])
	assert.Equal(t, Row{Key: "k", Glyph: "┛", Action: ""}, rows[2])
	assert.Equal(t, Row{Key: "q", Glyph: "━", Action: "quit"}, rows[3])
}

func TestRowsPairRun(t *testing.T) {
	rows := Rows(bindings("Left", "resize left", "Right", "resize left"))

	require.Len(t, rows, 2)
	assert.Equal(t, "┳", rows[0].Glyph)
	assert.Equal(t, "┛", rows[1].Glyph)
	assert.Empty(t, rows[1].Action)
}

func TestKeyColumnWidth(t *testing.T) {
	rows := Rows(bindings("j", "down", "C-PageUp", "previous tab"))
	assert.Equal(t, len("Ctrl+PageUp"), KeyColumnWidth(rows))
}

func TestRenderTableAlignsKeyColumn(t *testing.T) {
	set := bindings("j", "down", "C-n", "new pane")

	lines := RenderTable(Rows(set), Viewport{Width: 40, Height: 10})

	require.Len(t, lines, 2)
	assert.Equal(t, "     j ━ down", lines[0])
	assert.Equal(t, "Ctrl+n ━ new pane", lines[1])
}

func TestRenderTableElides(t *testing.T) {
	set := bindings(
		"a", "action one",
		"b", "action two",
		"c", "action three",
		"d", "action four",
	)

	lines := RenderTable(Rows(set), Viewport{Width: 30, Height: 3})

	require.Len(t, lines, 3)
	assert.Equal(t, "+2 more", lines[2])
}

func TestRenderTableClosesCutRun(t *testing.T) {
	set := bindings(
		"a", "same action",
		"b", "same action",
		"c", "same action",
		"d", "same action",
	)

	lines := RenderTable(Rows(set), Viewport{Width: 30, Height: 3})

	require.Len(t, lines, 3)
	// The second row is the last visible row of a cut-off run: it must
	// close the connector instead of pointing at an elided row.
	assert.Contains(t, lines[1], "┛")
	assert.Equal(t, "+2 more", lines[2])
}

func TestRenderTableCutRunHeadStandsAlone(t *testing.T) {
	set := bindings(
		"a", "x",
		"b", "y",
		"c", "y",
		"d", "z",
	)

	lines := RenderTable(Rows(set), Viewport{Width: 30, Height: 3})

	// "b" opens a run whose continuation is elided, so it must render as
	// a lone binding instead of pointing at the summary line.
	require.Len(t, lines, 3)
	assert.Equal(t, "a ━ x", lines[0])
	assert.Equal(t, "b ━ y", lines[1])
	assert.Equal(t, "+2 more", lines[2])
}

func TestRenderTableDoesNotMutateRows(t *testing.T) {
	rows := Rows(bindings("a", "same", "b", "same", "c", "same"))
	before := append([]Row(nil), rows...)

	RenderTable(rows, Viewport{Width: 30, Height: 2})

	assert.Equal(t, before, rows)
}
