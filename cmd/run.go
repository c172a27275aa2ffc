package cmd

import (
	"fmt"
	"time"

	"keyhud/config"
	"keyhud/keybind"
	"keyhud/logging"
	"keyhud/tmux"
	"keyhud/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Mode            string `help:"Pin the HUD to one mode instead of following the live key table"`
	RefreshInterval string `help:"How often to re-snapshot the keybinds (Go duration, e.g. 2s)" default:"5s"`
	PollInterval    string `help:"How often to poll the client key table for mode changes" default:"500ms"`
	Shared          bool   `help:"Split the view into mode-specific and shared bindings" default:"true"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	// Apply RunCmd-specific settings with proper precedence
	// Only apply if flag is at default value

	if cli.settings != nil {
		if r.Mode == "" && cli.settings.Mode != "" {
			r.Mode = cli.settings.Mode
		}

		if r.RefreshInterval == "5s" && cli.settings.RefreshInterval != "" {
			r.RefreshInterval = cli.settings.RefreshInterval
		}

		if r.Shared && cli.settings.ShowShared != nil {
			r.Shared = *cli.settings.ShowShared
		}
	}

	refresh, err := time.ParseDuration(r.RefreshInterval)
	if err != nil {
		return fmt.Errorf("invalid refresh interval %q: %w", r.RefreshInterval, err)
	}
	poll, err := time.ParseDuration(r.PollInterval)
	if err != nil {
		return fmt.Errorf("invalid poll interval %q: %w", r.PollInterval, err)
	}

	logging.Logger.Info("Starting keyhud TUI", "mode", r.Mode, "shared", r.Shared)

	client := tmux.NewClient()

	opts := ui.Options{
		Mode:            r.Mode,
		RefreshInterval: refresh,
		ShowShared:      r.Shared,
	}

	var cfg *keybind.Config
	var monitor *tmux.Monitor

	if client.InsideTmux() {
		cfg, err = tmux.Snapshot(client)
		if err != nil {
			return fmt.Errorf("failed to snapshot tmux keybinds: %w", err)
		}
		opts.Reload = func() (*keybind.Config, error) {
			return tmux.Snapshot(client)
		}

		if opts.Mode == "" {
			table, err := client.CurrentKeyTable()
			if err != nil {
				return fmt.Errorf("failed to read the current key table: %w", err)
			}
			opts.Mode = table

			events := make(chan string, 1)
			monitor = tmux.NewMonitor(client, events)
			monitor.Start(poll)
			defer monitor.Stop()
			opts.ModeEvents = events
		}
	} else {
		logging.Logger.Info("Not inside tmux, using keybinds file", "path", cli.Keybinds)
		cfg, err = config.LoadKeybinds(cli.Keybinds)
		if err != nil {
			logging.Logger.Warn("Failed to load keybinds file, using defaults", "error", err)
			cfg = config.DefaultKeybinds()
		} else {
			opts.Reload = func() (*keybind.Config, error) {
				return config.LoadKeybinds(cli.Keybinds)
			}
		}
	}

	logging.Logger.Debug("Initializing Bubble Tea program")
	p := tea.NewProgram(
		ui.NewModel(cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
