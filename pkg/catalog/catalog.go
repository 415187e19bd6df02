// Package catalog holds the built-in source-root patterns recognized during
// module resolution, their selection ranking, and the generated-output
// patterns that must never be classified as hand-authored roots.
package catalog

import (
	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/pathmatch"
)

// Root describes one built-in source-root pattern and its selection rank.
// Lower rank wins during target selection.
type Root struct {
	Pattern  string
	Priority int
}

const (
	// PriorityCustom ranks override patterns that carry no built-in rank.
	PriorityCustom = 50
	// PriorityTest ranks test roots, eligible only as a last resort.
	PriorityTest = 100
)

// DefaultRoot is the global fallback used when a run detects no usable root
// for the single remaining module.
const DefaultRoot = "src/main/java"

var builtinRoots = []Root{
	{Pattern: "src/main/java", Priority: 0},
	{Pattern: "src/main/kotlin", Priority: 1},
	{Pattern: "src/java", Priority: 2},
	{Pattern: "src/it/java", Priority: 3},
	{Pattern: "src/integrationTest/java", Priority: 4},
	{Pattern: "src/test/java", Priority: PriorityTest},
	{Pattern: "src/test/kotlin", Priority: PriorityTest},
	{Pattern: "src/it/kotlin", Priority: PriorityTest},
	{Pattern: "src/integrationTest/kotlin", Priority: PriorityTest},
}

var generatedRoots = []string{
	"target/generated-sources",
	"target/generated-test-sources",
	"build/generated",
}

// BuiltinPatterns returns the built-in source-root patterns in catalog order.
// The returned slice is a copy and safe to reorder.
func BuiltinPatterns() []string {
	out := make([]string, len(builtinRoots))
	for i, r := range builtinRoots {
		out[i] = r.Pattern
	}
	return out
}

// BuiltinRoots returns the full catalog, including ranks.
func BuiltinRoots() []Root {
	return append([]Root(nil), builtinRoots...)
}

// GeneratedPatterns returns the generated-output patterns.
func GeneratedPatterns() []string {
	return append([]string(nil), generatedRoots...)
}

// IsGenerated reports whether pattern is exactly one of the generated-root
// patterns.
func IsGenerated(pattern string) bool {
	for _, g := range generatedRoots {
		if g == pattern {
			return true
		}
	}
	return false
}

// MatchesGenerated reports whether any generated pattern occurs in path at a
// segment boundary. The boundary rule makes this cover whole subtrees: a '/'
// follows the match for "build/generated/source/kapt" while unrelated names
// like "build/generated-x" never match.
func MatchesGenerated(path string) bool {
	for _, g := range generatedRoots {
		if pathmatch.Contains(path, g) {
			return true
		}
	}
	return false
}

// PriorityOf returns the selection rank for a detected pattern. Patterns
// outside the catalog are user overrides and rank between the main roots and
// the test roots.
func PriorityOf(pattern string) int {
	for _, r := range builtinRoots {
		if r.Pattern == pattern {
			return r.Priority
		}
	}
	return PriorityCustom
}
