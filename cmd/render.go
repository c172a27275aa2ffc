package cmd

import (
	"fmt"
	"strings"

	"keyhud/config"
	"keyhud/keybind"
	"keyhud/layout"
	"keyhud/logging"
	"keyhud/tmux"
)

// RenderCmd resolves one mode and prints its cheatsheet to stdout. It is
// meant for embedding: tmux display-popup, status bars, scripts.
type RenderCmd struct {
	Mode   string `help:"Mode to render (defaults to the current key table inside tmux)"`
	Width  int    `help:"Viewport width in cells (defaults to the pane width inside tmux, else 80)"`
	Height int    `help:"Viewport height in lines (defaults to the pane height inside tmux, else 24)"`
	Table  bool   `help:"Render an aligned key table instead of packed lines"`
}

// Run executes the render command
func (r *RenderCmd) Run(cli *CLI) error {
	client := tmux.NewClient()

	cfg, err := loadKeybinds(client, cli.Keybinds)
	if err != nil {
		return err
	}

	mode := r.Mode
	if mode == "" && client.InsideTmux() {
		if table, err := client.CurrentKeyTable(); err == nil {
			mode = table
		}
	}

	vp := layout.Viewport{Width: r.Width, Height: r.Height}
	if vp.Width == 0 || vp.Height == 0 {
		width, height := 80, 24
		if client.InsideTmux() {
			if w, h, err := client.PaneSize(); err == nil {
				width, height = w, h
			}
		}
		if vp.Width == 0 {
			vp.Width = width
		}
		if vp.Height == 0 {
			vp.Height = height
		}
	}

	logging.Logger.Debug("Rendering once", "mode", mode, "width", vp.Width, "height", vp.Height, "table", r.Table)

	var lines []string
	if r.Table {
		// Display ordering groups identical actions so the table can
		// collapse them into glyph runs.
		own, shared := keybind.SplitShared(cfg, mode)
		lines = layout.RenderTable(layout.Rows(append(own, shared...)), vp)
	} else {
		lines = layout.Render(keybind.Resolve(cfg, mode), vp)
	}

	if len(lines) > 0 {
		fmt.Println(strings.Join(lines, "\n"))
	}
	return nil
}

// loadKeybinds snapshots the running tmux server, falling back to the
// keybinds file and finally the built-in defaults.
func loadKeybinds(client tmux.KeyLister, keybindsPath string) (*keybind.Config, error) {
	cfg, err := tmux.Snapshot(client)
	if err == nil {
		return cfg, nil
	}
	logging.Logger.Debug("Falling back to keybinds file", "error", err, "path", keybindsPath)

	cfg, fileErr := config.LoadKeybinds(keybindsPath)
	if fileErr == nil {
		return cfg, nil
	}

	return config.DefaultKeybinds(), nil
}
