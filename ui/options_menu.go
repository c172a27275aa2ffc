package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"keyhud/logging"
)

// Action identifiers for options menu selections
const (
	actionToggleShared = "toggle-shared"
	actionFollowLive   = "follow-live"
	actionReload       = "reload"
)

// OptionsMenuResult contains the result of the options menu selection
type OptionsMenuResult struct {
	ActionID  string // Selected action identifier
	Cancelled bool   // User pressed ESC/Ctrl+C
}

// OptionsMenu is a Bubble Tea component for display options
type OptionsMenu struct {
	Completed    bool
	form         *huh.Form
	result       OptionsMenuResult
	selectedItem string // Holds the selected option
}

// NewOptionsMenu creates a new options menu reflecting the current display state
func NewOptionsMenu(showShared, followLive bool) *OptionsMenu {
	om := &OptionsMenu{}

	sharedLabel := "Show shared bindings column"
	if showShared {
		sharedLabel = "Hide shared bindings column"
	}
	followLabel := "Follow the live key table"
	if followLive {
		followLabel = "Following the live key table (active)"
	}

	// Build menu options
	options := []huh.Option[string]{
		huh.NewOption(sharedLabel, actionToggleShared),
		huh.NewOption(followLabel, actionFollowLive),
		huh.NewOption("Reload keybinds now", actionReload),
	}

	// Set initial selected value
	om.selectedItem = actionToggleShared

	// Build form with select field
	om.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Display options").
				Options(options...).
				Value(&om.selectedItem),
		),
	)

	return om
}

func (om *OptionsMenu) Init() tea.Cmd {
	return om.form.Init()
}

func (om *OptionsMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Escape or Ctrl+C to cancel
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			om.result.Cancelled = true
			om.Completed = true
			return om, nil
		}
	}

	// Forward message to form
	form, cmd := om.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		om.form = f
	}

	// Check if form completed
	if om.form.State == huh.StateCompleted {
		om.Completed = true
		om.result.ActionID = om.selectedItem

		logging.Logger.Info("Options menu selection", "action", om.selectedItem)

		return om, nil
	}

	return om, cmd
}

func (om *OptionsMenu) View() string {
	if om.form != nil {
		return om.form.View()
	}
	return ""
}

// Result returns the menu result
func (om *OptionsMenu) Result() OptionsMenuResult {
	return om.result
}
