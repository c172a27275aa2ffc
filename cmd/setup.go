package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"keyhud/tmux"
)

// SetupCmd configures tmux automatically
type SetupCmd struct {
	Key string `help:"Prefix key that opens the keyhud popup" default:"K"`

	TmuxClient tmux.Configurator `kong:"-"`
}

const setupMarker = "# Added by keyhud setup"

// popupCommand is what the bound key runs: a keyhud popup sized to stay
// readable on small panes.
const popupCommand = `display-popup -w 80% -h 60% -E "keyhud"`

// Run executes the setup command
func (s *SetupCmd) Run() error {
	// Verify required dependencies
	if err := s.verifyDependencies(); err != nil {
		return err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	// Setup tmux configuration
	if err := s.setupTmux(homeDir); err != nil {
		return err
	}

	fmt.Println("\n✓ Setup complete!")
	fmt.Printf("Press prefix + %s in tmux to open the cheatsheet\n", s.Key)

	return nil
}

// setupTmux adds the popup binding to ~/.tmux.conf (idempotent) and applies
// it to the running server
func (s *SetupCmd) setupTmux(homeDir string) error {
	tmuxConfPath := filepath.Join(homeDir, ".tmux.conf")

	// Read existing config
	existingConfig, err := os.ReadFile(tmuxConfPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read .tmux.conf: %w", err)
	}

	bindLine := fmt.Sprintf("bind-key %s %s %s", s.Key, popupCommand, setupMarker)

	// Check if already configured (idempotent)
	if strings.Contains(string(existingConfig), setupMarker) {
		fmt.Println("✓ Popup binding already configured in ~/.tmux.conf")
	} else {
		f, err := os.OpenFile(tmuxConfPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open .tmux.conf: %w", err)
		}
		defer f.Close()

		if _, err := f.WriteString("\n# keyhud popup binding\n" + bindLine + "\n"); err != nil {
			return fmt.Errorf("failed to write to .tmux.conf: %w", err)
		}

		fmt.Println("✓ Added popup binding to ~/.tmux.conf")
	}

	// Bind on the running server too, so it takes effect immediately
	client := s.TmuxClient
	if client == nil {
		client = tmux.NewClient()
	}
	if err := client.BindKey("prefix", s.Key, popupCommand); err != nil {
		// It's OK if this fails (tmux might not be running)
		fmt.Println("  Note: tmux is not currently running. The binding will load when you start tmux.")
	} else {
		fmt.Println("✓ Bound key on the running tmux server")
		_ = client.DisplayMessage(fmt.Sprintf("keyhud bound to prefix+%s", s.Key))
	}

	return nil
}

// verifyDependencies checks if required binaries are installed
func (s *SetupCmd) verifyDependencies() error {
	fmt.Println("Checking dependencies...")

	if _, err := exec.LookPath("tmux"); err != nil {
		fmt.Println("✗ tmux not found")
		return fmt.Errorf("missing required dependency: tmux\n  Install with: apt install tmux (Ubuntu/Debian), brew install tmux (macOS), or pacman -S tmux (Arch)")
	}

	fmt.Println("✓ tmux found")
	fmt.Println()
	return nil
}
