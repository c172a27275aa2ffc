package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"keyhud/keybind"
	"keyhud/logging"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	modeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("141"))

	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	glyphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(1, 0)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

type uiState int

const (
	stateHud uiState = iota
	stateHelp
	stateOptions
)

// Options configures a Model. Reload refetches the binding configuration;
// ModeEvents delivers live key-table changes and is nil when keyhud runs
// outside tmux.
type Options struct {
	Mode            string
	ModeEvents      <-chan string
	RefreshInterval time.Duration
	Reload          func() (*keybind.Config, error)
	ShowShared      bool
}

type Model struct {
	cfg        *keybind.Config
	err        error
	followLive bool
	height     int
	help       *HelpScreen
	keys       KeyMap
	mode       string
	modeEvents <-chan string
	options    *OptionsMenu
	refresh    time.Duration
	reload     func() (*keybind.Config, error)
	showShared bool
	state      uiState
	width      int
}

func NewModel(cfg *keybind.Config, opts Options) *Model {
	return &Model{
		cfg:        cfg,
		followLive: opts.ModeEvents != nil,
		keys:       NewKeyMap(),
		mode:       opts.Mode,
		modeEvents: opts.ModeEvents,
		refresh:    opts.RefreshInterval,
		reload:     opts.Reload,
		showShared: opts.ShowShared,
		state:      stateHud,
	}
}

type modeChangedMsg struct {
	table string
}

type configReloadedMsg struct {
	cfg *keybind.Config
	err error
}

type refreshTickMsg time.Time

type clearErrorMsg struct{}

// waitForModeChange blocks on the monitor channel and resolves to a
// modeChangedMsg. A closed channel ends the subscription.
func waitForModeChange(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		table, ok := <-ch
		if !ok {
			return nil
		}
		return modeChangedMsg{table: table}
	}
}

func reloadConfig(reload func() (*keybind.Config, error)) tea.Cmd {
	return func() tea.Msg {
		cfg, err := reload()
		return configReloadedMsg{cfg: cfg, err: err}
	}
}

func refreshAfter(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// clearErrorAfterDelay returns a command that sends clearErrorMsg after a delay
func clearErrorAfterDelay() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.modeEvents != nil {
		cmds = append(cmds, waitForModeChange(m.modeEvents))
	}
	if m.reload != nil && m.refresh > 0 {
		cmds = append(cmds, refreshAfter(m.refresh))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Window size and background events apply in every state.
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case modeChangedMsg:
		if m.followLive {
			m.mode = msg.table
		}
		return m, waitForModeChange(m.modeEvents)
	case refreshTickMsg:
		return m, tea.Batch(reloadConfig(m.reload), refreshAfter(m.refresh))
	case configReloadedMsg:
		if msg.err != nil {
			logging.Logger.Error("Failed to reload keybinds", "error", msg.err)
			m.err = fmt.Errorf("failed to reload keybinds: %w", msg.err)
			return m, clearErrorAfterDelay()
		}
		// Whole-snapshot swap; views recompute from the new config.
		m.cfg = msg.cfg
		return m, nil
	case clearErrorMsg:
		m.err = nil
		return m, nil
	}

	switch m.state {
	case stateHud:
		return m.updateHud(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateOptions:
		return m.updateOptions(msg)
	}
	return m, nil
}

func (m *Model) updateHud(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit), key.Matches(keyMsg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help = NewHelpScreen(&m.keys)
		m.state = stateHelp
		return m, m.help.Init()
	case key.Matches(keyMsg, m.keys.Options):
		m.options = NewOptionsMenu(m.showShared, m.followLive)
		m.state = stateOptions
		return m, m.options.Init()
	case key.Matches(keyMsg, m.keys.NextMode):
		m.cycleMode(1)
		return m, nil
	case key.Matches(keyMsg, m.keys.PrevMode):
		m.cycleMode(-1)
		return m, nil
	case key.Matches(keyMsg, m.keys.Follow):
		if m.modeEvents != nil {
			m.followLive = true
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Shared):
		m.showShared = !m.showShared
		return m, nil
	case key.Matches(keyMsg, m.keys.Reload):
		if m.reload != nil {
			return m, reloadConfig(m.reload)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	newHelp, cmd := m.help.Update(msg)
	if h, ok := newHelp.(*HelpScreen); ok {
		m.help = h
	}

	if m.help.Completed {
		m.help = nil
		m.state = stateHud
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.options.Update(msg)
	if om, ok := newMenu.(*OptionsMenu); ok {
		m.options = om
	}

	if m.options.Completed {
		result := m.options.Result()
		m.options = nil
		m.state = stateHud

		if result.Cancelled {
			return m, nil
		}

		switch result.ActionID {
		case actionToggleShared:
			m.showShared = !m.showShared
		case actionFollowLive:
			if m.modeEvents != nil {
				m.followLive = true
			}
		case actionReload:
			if m.reload != nil {
				return m, reloadConfig(m.reload)
			}
		}
		return m, nil
	}

	return m, cmd
}

// cycleMode steps through the configured modes and detaches from the live
// key table; Follow reattaches.
func (m *Model) cycleMode(delta int) {
	names := m.cfg.ModeNames()
	if len(names) == 0 {
		return
	}

	m.followLive = false

	current := -1
	for i, name := range names {
		if name == m.mode {
			current = i
			break
		}
	}
	m.mode = names[((current+delta)%len(names)+len(names))%len(names)]
}
