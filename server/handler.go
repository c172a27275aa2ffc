package server

import (
	"fmt"
	"time"

	"keyhud/config"
	"keyhud/keybind"
	"keyhud/logging"
	"keyhud/paths"
	"keyhud/tmux"
	"keyhud/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
)

const defaultRefreshInterval = 5 * time.Second

// sessionModel wraps ui.Model to handle resource cleanup
type sessionModel struct {
	*ui.Model
	monitor   *tmux.Monitor
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check for quit message to trigger cleanup
	if _, ok := msg.(tea.QuitMsg); ok {
		if s.monitor != nil {
			s.monitor.Stop()
			s.monitor = nil
		}

		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// teaHandler creates a Bubbletea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	// Get PTY info
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	client := tmux.NewClient()
	reload := func() (*keybind.Config, error) {
		return loadKeybinds(client)
	}

	cfg, err := reload()
	if err != nil {
		logging.Logger.Error("Failed to load keybinds for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	showShared := true
	if s.settings.ShowShared != nil {
		showShared = *s.settings.ShowShared
	}

	opts := ui.Options{
		Mode:            s.settings.Mode,
		RefreshInterval: s.settings.RefreshIntervalDuration(defaultRefreshInterval),
		Reload:          reload,
		ShowShared:      showShared,
	}

	// Without a mode override, follow the host's attached client when its
	// key table is visible from here.
	var monitor *tmux.Monitor
	if opts.Mode == "" {
		if table, err := client.CurrentKeyTable(); err == nil {
			events := make(chan string, 1)
			monitor = tmux.NewMonitor(client, events)
			monitor.Start(500 * time.Millisecond)
			opts.Mode = table
			opts.ModeEvents = events
		}
	}

	// Wrap model to handle cleanup
	wrappedModel := &sessionModel{
		Model:     ui.NewModel(cfg, opts),
		monitor:   monitor,
		sessionID: sessionID,
		startTime: time.Now(),
	}

	return wrappedModel, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loadKeybinds snapshots the running tmux server, falling back to the
// keybinds file when no server is reachable.
func loadKeybinds(client tmux.KeyLister) (*keybind.Config, error) {
	cfg, err := tmux.Snapshot(client)
	if err == nil {
		return cfg, nil
	}
	logging.Logger.Debug("Falling back to keybinds file", "error", err)

	cfg, fileErr := config.LoadKeybinds(paths.KeybindsPath())
	if fileErr == nil {
		return cfg, nil
	}

	return nil, fmt.Errorf("failed to snapshot tmux keybinds: %w", err)
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
