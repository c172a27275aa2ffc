package cmd

import (
	"fmt"

	"keyhud/tmux"
)

// ModesCmd lists the known modes
type ModesCmd struct{}

// Run executes the modes command
func (m *ModesCmd) Run(cli *CLI) error {
	client := tmux.NewClient()

	cfg, err := loadKeybinds(client, cli.Keybinds)
	if err != nil {
		return err
	}

	current := ""
	if client.InsideTmux() {
		if table, err := client.CurrentKeyTable(); err == nil {
			current = table
		}
	}

	for _, name := range cfg.ModeNames() {
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
	}
	return nil
}
