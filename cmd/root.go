package cmd

import (
	"fmt"
	"os"

	"keyhud/config"
	"keyhud/logging"
	"keyhud/paths"

	"github.com/alecthomas/kong"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Keybinds    string           `help:"Path to the keybinds file used when no tmux server is reachable" type:"path" default:"~/.keyhud/keybinds.yaml" env:"KEYHUD_KEYBINDS"`

	Run    RunCmd    `cmd:"" help:"Start the keyhud TUI (default)" default:"1"`
	Render RenderCmd `cmd:"render" help:"Render the cheatsheet once to stdout (for popups and status bars)"`
	Modes  ModesCmd  `cmd:"modes" help:"List the known modes"`
	Server ServerCmd `cmd:"server" help:"Serve the TUI over SSH"`
	Setup  SetupCmd  `cmd:"setup" help:"Bind a tmux key that opens keyhud in a popup"`

	// Internal field for settings (not a flag)
	settings *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		// Apply Keybinds setting
		if c.Keybinds == defaultKeybindsPath() {
			if _, hasEnv := os.LookupEnv("KEYHUD_KEYBINDS"); !hasEnv {
				if c.settings.KeybindsPath != "" {
					c.Keybinds = paths.ExpandPath(c.settings.KeybindsPath)
				}
			}
		}

		// Apply MaxLogFiles setting
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("KEYHUD_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		// Apply DebugFile setting
		if c.DebugFile == "" {
			if _, hasEnv := os.LookupEnv("KEYHUD_DEBUG_FILE"); !hasEnv {
				if c.settings.DebugFile != "" {
					c.DebugFile = c.settings.DebugFile
				}
			}
		}

		// Apply Debug setting
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("KEYHUD_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes inherit debug settings
	// and use the SAME log file (important for correlating parent/child process logs)
	if c.Debug || c.DebugFile != "" {
		os.Setenv("KEYHUD_DEBUG", "1")
		// Share the log file path with subprocesses so they append to the same file
		if logFilePath != "" {
			os.Setenv("KEYHUD_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("KEYHUD_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	return nil
}

// defaultKeybindsPath mirrors the Keybinds flag default after kong's ~ expansion
func defaultKeybindsPath() string {
	return paths.ExpandPath("~/.keyhud/keybinds.yaml")
}
