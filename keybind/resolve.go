package keybind

// Resolve computes the bindings effective in the given mode: the global
// bindings overlaid with the mode's own, where a mode binding for an
// already-seen trigger replaces the earlier entry in place and a trigger
// bound twice in the same list resolves last-declaration-wins. An unknown
// mode degrades to the global-only view rather than erroring.
func Resolve(cfg *Config, mode string) ActiveSet {
	if cfg == nil {
		return nil
	}

	active := make(ActiveSet, 0, len(cfg.Global))
	index := make(map[Trigger]int, len(cfg.Global))

	overlay := func(bindings []Binding) {
		for _, b := range bindings {
			if i, ok := index[b.Trigger]; ok {
				active[i].Action = b.Action
				continue
			}
			index[b.Trigger] = len(active)
			active = append(active, b)
		}
	}

	overlay(cfg.Global)
	if m, ok := cfg.Mode(mode); ok {
		overlay(m.Bindings)
	}

	return active
}
