// Package keybind models a multiplexer's keybinding configuration and
// resolves which bindings are effective in a given input mode. Everything in
// this package is pure: a Config is an immutable snapshot owned by whoever
// loaded it, and resolution never mutates or fails.
package keybind

// Binding pairs a key trigger with a human-readable action label.
type Binding struct {
	Trigger Trigger
	Action  string
}

// Mode is a named input context owning an ordered list of bindings.
type Mode struct {
	Name     string
	Bindings []Binding
}

// Config is a full keybinding configuration snapshot: global bindings active
// in every mode plus per-mode bindings that override them. Reloads replace
// the whole snapshot; a Config is never modified in place.
type Config struct {
	Global []Binding
	Modes  []Mode
}

// Mode returns the named mode and whether it exists.
func (c *Config) Mode(name string) (Mode, bool) {
	for _, m := range c.Modes {
		if m.Name == name {
			return m, true
		}
	}
	return Mode{}, false
}

// HasMode reports whether the configuration defines the named mode.
func (c *Config) HasMode(name string) bool {
	_, ok := c.Mode(name)
	return ok
}

// ModeNames returns the mode names in declaration order.
func (c *Config) ModeNames() []string {
	names := make([]string, 0, len(c.Modes))
	for _, m := range c.Modes {
		names = append(names, m.Name)
	}
	return names
}

// ActiveSet is the ordered, trigger-unique list of bindings effective in the
// current mode. Order follows first declaration, with mode-local bindings
// replacing global ones for the same trigger in place.
type ActiveSet []Binding
