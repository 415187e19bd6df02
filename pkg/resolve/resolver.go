package resolve

import (
	"path"
	"sort"
	"strings"

	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/catalog"
	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/pathmatch"
)

// resolvePrefix derives the owning module prefix for a path. Built-in roots
// win over overrides; configuration fragments with no recognizable root fall
// back to their parent directory; everything else belongs to the repository
// root module. Paths under generated directories never derive a prefix from
// pattern matching.
func (r *Run) resolvePrefix(p string) string {
	if !catalog.MatchesGenerated(p) {
		for _, pattern := range catalog.BuiltinPatterns() {
			if idx := pathmatch.SegmentIndex(p, pattern); idx != pathmatch.NotFound {
				return prefixBefore(p, idx)
			}
		}
		for _, pattern := range r.overrides.All() {
			if idx := pathmatch.SegmentIndex(p, pattern); idx != pathmatch.NotFound {
				return prefixBefore(p, idx)
			}
		}
	}
	if r.isFragment(p) {
		return parentDir(p)
	}
	// Ambiguous but deterministic: unmatched source files belong to the
	// repository root module.
	return ""
}

// detectPattern returns the most specific source-root pattern occurring in
// the path, considering built-ins plus the module's own overrides. Candidates
// are tried longest first so a short pattern cannot shadow a nested one.
// Paths under generated directories contribute nothing.
func (r *Run) detectPattern(p, module string) (string, bool) {
	if catalog.MatchesGenerated(p) {
		return "", false
	}
	candidates := append(catalog.BuiltinPatterns(), r.overrides.Patterns(module)...)
	sort.SliceStable(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) > len(candidates[j])
		}
		return candidates[i] < candidates[j]
	})
	for _, pattern := range candidates {
		if pathmatch.Contains(p, pattern) {
			return pattern, true
		}
	}
	return "", false
}

func (r *Run) isFragment(p string) bool {
	return path.Base(p) == r.fragmentName
}

func prefixBefore(p string, idx int) string {
	if idx == 0 {
		return ""
	}
	return strings.TrimSuffix(p[:idx], "/")
}

func parentDir(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[:i]
	}
	return ""
}

func joinPrefix(module, pattern string) string {
	if module == "" {
		return pattern
	}
	return module + "/" + pattern
}
