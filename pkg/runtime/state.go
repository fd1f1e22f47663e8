package runtime

import "sort"

// State holds the variable bindings for a single program execution. Bindings
// are created lazily on first assignment; reading an unassigned name is the
// caller's error to signal. A State is never shared across executions.
type State struct {
	values map[string]int64
}

// NewState creates an empty state.
func NewState() *State {
	return &State{values: make(map[string]int64)}
}

// Get retrieves a binding; the second result reports whether it exists.
func (s *State) Get(name string) (int64, bool) {
	value, ok := s.values[name]
	return value, ok
}

// Set inserts or overwrites a binding.
func (s *State) Set(name string, value int64) {
	s.values[name] = value
}

// Len reports the number of bindings.
func (s *State) Len() int {
	return len(s.values)
}

// Snapshot returns a copy of the current bindings.
func (s *State) Snapshot() map[string]int64 {
	out := make(map[string]int64, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Keys returns the bound names in sorted order (useful for determinism when
// reporting bindings).
func (s *State) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
