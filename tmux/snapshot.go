package tmux

import (
	"golang.org/x/sync/errgroup"

	"keyhud/keybind"
	"keyhud/logging"
)

// Snapshot builds a complete keybinding configuration from the running tmux
// server. The "root" table becomes the global binding set since its keys
// work without the prefix in every mode; every other table becomes a mode.
// Tables are fetched concurrently; the result preserves the server's table
// order.
func Snapshot(client KeyLister) (*keybind.Config, error) {
	tables, err := client.ListKeyTables()
	if err != nil {
		return nil, err
	}

	results := make([][]keybind.Binding, len(tables))
	var g errgroup.Group
	for i, table := range tables {
		g.Go(func() error {
			bindings, err := client.ListKeys(table)
			if err != nil {
				return err
			}
			results[i] = bindings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cfg := &keybind.Config{}
	for i, table := range tables {
		if table == "root" {
			cfg.Global = results[i]
			continue
		}
		cfg.Modes = append(cfg.Modes, keybind.Mode{
			Name:     table,
			Bindings: results[i],
		})
	}

	logging.Logger.Debug("Snapshotted tmux keybinds",
		"tables", len(tables),
		"global", len(cfg.Global),
		"modes", len(cfg.Modes))

	return cfg, nil
}
