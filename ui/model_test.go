package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyhud/keybind"
)

func testConfig() *keybind.Config {
	return &keybind.Config{
		Global: []keybind.Binding{
			{Trigger: keybind.ParseTrigger("C-q"), Action: "quit"},
		},
		Modes: []keybind.Mode{
			{Name: "prefix", Bindings: []keybind.Binding{
				{Trigger: keybind.ParseTrigger("z"), Action: "zoom pane"},
			}},
			{Name: "copy-mode-vi", Bindings: []keybind.Binding{
				{Trigger: keybind.ParseTrigger("v"), Action: "begin selection"},
			}},
		},
	}
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelCyclesModes(t *testing.T) {
	m := NewModel(testConfig(), Options{Mode: "prefix"})

	m.cycleMode(1)
	assert.Equal(t, "copy-mode-vi", m.mode)

	m.cycleMode(1)
	assert.Equal(t, "prefix", m.mode)

	m.cycleMode(-1)
	assert.Equal(t, "copy-mode-vi", m.mode)
}

func TestModelCycleDetachesFromLiveTable(t *testing.T) {
	ch := make(chan string)
	m := NewModel(testConfig(), Options{Mode: "prefix", ModeEvents: ch})
	require.True(t, m.followLive)

	m.cycleMode(1)

	assert.False(t, m.followLive)
}

func TestModelFollowsModeChanges(t *testing.T) {
	ch := make(chan string)
	m := NewModel(testConfig(), Options{Mode: "prefix", ModeEvents: ch})

	_, cmd := m.Update(modeChangedMsg{table: "copy-mode-vi"})

	assert.Equal(t, "copy-mode-vi", m.mode)
	assert.NotNil(t, cmd, "should re-arm the mode change subscription")
}

func TestModelPinnedModeIgnoresModeChanges(t *testing.T) {
	ch := make(chan string)
	m := NewModel(testConfig(), Options{Mode: "prefix", ModeEvents: ch})
	m.cycleMode(1)
	pinned := m.mode

	m.Update(modeChangedMsg{table: "root"})

	assert.Equal(t, pinned, m.mode)
}

func TestModelSwapsConfigOnReload(t *testing.T) {
	m := NewModel(testConfig(), Options{Mode: "prefix"})
	next := &keybind.Config{
		Modes: []keybind.Mode{{Name: "prefix", Bindings: []keybind.Binding{
			{Trigger: keybind.ParseTrigger("x"), Action: "kill pane"},
		}}},
	}

	m.Update(configReloadedMsg{cfg: next})

	assert.Same(t, next, m.cfg)
	assert.NoError(t, m.err)
}

func TestModelKeepsConfigOnReloadError(t *testing.T) {
	cfg := testConfig()
	m := NewModel(cfg, Options{Mode: "prefix"})

	_, cmd := m.Update(configReloadedMsg{err: errors.New("tmux exited 1")})

	assert.Same(t, cfg, m.cfg)
	assert.Error(t, m.err)
	assert.NotNil(t, cmd, "error should be cleared after a delay")
}

func TestModelTogglesSharedColumn(t *testing.T) {
	m := NewModel(testConfig(), Options{Mode: "prefix", ShowShared: true})

	m.Update(keyPress('s'))
	assert.False(t, m.showShared)

	m.Update(keyPress('s'))
	assert.True(t, m.showShared)
}

func TestModelTracksWindowSize(t *testing.T) {
	m := NewModel(testConfig(), Options{Mode: "prefix"})

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
}

func TestModelQuits(t *testing.T) {
	m := NewModel(testConfig(), Options{Mode: "prefix"})

	_, cmd := m.Update(keyPress('q'))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelOpensAndClosesHelp(t *testing.T) {
	m := NewModel(testConfig(), Options{Mode: "prefix"})

	m.Update(keyPress('?'))
	assert.Equal(t, stateHelp, m.state)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateHud, m.state)
}
