package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"keyhud/layout"
)

var (
	// Help screen styles
	helpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("141")).
			MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Width(25)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// HelpScreen displays keyhud's own shortcuts organized by category
type HelpScreen struct {
	Completed bool
	keys      *KeyMap
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		Completed: false,
		keys:      keys,
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle key press
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "h", "?":
			h.Completed = true
			return h, nil
		}
	}

	return h, nil
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	var content string

	// Modes
	content += helpGroupStyle.Render("Modes") + "\n"
	content += h.renderBinding(h.keys.NextMode)
	content += h.renderBinding(h.keys.PrevMode)
	content += h.renderBinding(h.keys.Follow)

	// Display
	content += "\n" + helpGroupStyle.Render("Display") + "\n"
	content += h.renderBinding(h.keys.Shared)
	content += h.renderBinding(h.keys.Reload)
	content += h.renderBinding(h.keys.Options)

	// Application
	content += "\n" + helpGroupStyle.Render("Application") + "\n"
	content += h.renderBinding(h.keys.Help)
	content += h.renderBinding(h.keys.Quit)
	content += h.renderBinding(h.keys.ForceQuit)

	// Table glyphs
	content += "\n" + helpGroupStyle.Render("Table Glyphs (read-only)") + "\n"
	content += h.renderShortcut(layout.GlyphSingle, "Key bound to the action on its row")
	content += h.renderShortcut(layout.GlyphFirst, "First key of a group sharing one action")
	content += h.renderShortcut(layout.GlyphMiddle, "Key continues the group above")
	content += h.renderShortcut(layout.GlyphLast, "Last key of the group")

	// Footer instruction
	content += "\n\n" + helpStyle.Render("Press esc, q, h, or ? to close")

	return content
}

// renderBinding renders a single shortcut line from a key binding
func (h *HelpScreen) renderBinding(binding key.Binding) string {
	help := binding.Help()
	return h.renderShortcut(help.Key, help.Desc)
}

// renderShortcut renders a single shortcut line with key and description
func (h *HelpScreen) renderShortcut(key, description string) string {
	return helpKeyStyle.Render(key) + helpDescStyle.Render(description) + "\n"
}
