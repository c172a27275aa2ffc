package keybind

import "sort"

// SplitShared partitions the mode's active set into bindings particular to
// the current mode and bindings "shared" across the configuration: a binding
// counts as shared when the identical (trigger, action) pair is also
// effective in at least two other modes. Both groups come back sorted by
// (action, trigger display) so equal actions cluster together for display.
func SplitShared(cfg *Config, mode string) (own, shared ActiveSet) {
	active := Resolve(cfg, mode)
	if len(active) == 0 {
		return nil, nil
	}

	// Count, per (trigger, action) pair, how many other modes bind it
	// identically.
	counts := make(map[Binding]int)
	for _, m := range cfg.Modes {
		if m.Name == mode {
			continue
		}
		other := Resolve(cfg, m.Name)
		seen := make(map[Binding]bool, len(other))
		for _, b := range other {
			if !seen[b] {
				seen[b] = true
				counts[b]++
			}
		}
	}

	for _, b := range active {
		if counts[b] >= 2 {
			shared = append(shared, b)
		} else {
			own = append(own, b)
		}
	}

	sortForDisplay(own)
	sortForDisplay(shared)
	return own, shared
}

// sortForDisplay orders bindings by action label, then trigger display, so
// runs of equal actions sit next to each other.
func sortForDisplay(set ActiveSet) {
	sort.SliceStable(set, func(i, j int) bool {
		if set[i].Action != set[j].Action {
			return set[i].Action < set[j].Action
		}
		return set[i].Trigger.String() < set[j].Trigger.String()
	})
}
