package fragment

import "sort"

// OverrideSet maps module prefixes to their declared extra source-root
// patterns. Declaration order within a module is preserved because it
// expresses user priority; duplicates are dropped silently.
type OverrideSet struct {
	patterns map[string][]string
}

// NewOverrideSet returns an empty OverrideSet.
func NewOverrideSet() *OverrideSet {
	return &OverrideSet{patterns: make(map[string][]string)}
}

// Add appends pattern to the module's override list, preserving declaration
// order. It reports whether the pattern was actually added.
func (s *OverrideSet) Add(module, pattern string) bool {
	for _, p := range s.patterns[module] {
		if p == pattern {
			return false
		}
	}
	s.patterns[module] = append(s.patterns[module], pattern)
	return true
}

// Patterns returns the module's overrides in declaration order.
func (s *OverrideSet) Patterns(module string) []string {
	return append([]string(nil), s.patterns[module]...)
}

// HasOverrides reports whether the module declared any override.
func (s *OverrideSet) HasOverrides(module string) bool {
	return len(s.patterns[module]) > 0
}

// All returns every override pattern across all modules, deduplicated and
// sorted. The stable order keeps module-prefix derivation deterministic no
// matter which fragment declared a pattern first.
func (s *OverrideSet) All() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range s.patterns {
		for _, p := range list {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// Modules returns the module prefixes with at least one override, sorted.
func (s *OverrideSet) Modules() []string {
	out := make([]string, 0, len(s.patterns))
	for m := range s.patterns {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
