// Package pathmatch implements literal, segment-bounded matching of directory
// patterns inside forward-slash paths. Patterns are plain path fragments, never
// globs or regular expressions.
package pathmatch

import "strings"

// NotFound is returned by SegmentIndex when no bounded occurrence exists.
const NotFound = -1

// SegmentIndex returns the index of the first occurrence of pattern in path
// whose ends both fall on segment boundaries: each end is adjacent to a '/'
// or to the corresponding end of the string. This keeps "src/main/java" from
// matching inside "src/main/javax/Foo.java".
func SegmentIndex(path, pattern string) int {
	if pattern == "" || len(pattern) > len(path) {
		return NotFound
	}
	from := 0
	for {
		i := strings.Index(path[from:], pattern)
		if i < 0 {
			return NotFound
		}
		i += from
		end := i + len(pattern)
		startOK := i == 0 || path[i-1] == '/'
		endOK := end == len(path) || path[end] == '/'
		if startOK && endOK {
			return i
		}
		from = i + 1
	}
}

// Contains reports whether pattern occurs anywhere in path at a segment
// boundary.
func Contains(path, pattern string) bool {
	return SegmentIndex(path, pattern) != NotFound
}

// Normalize rewrites backslashes to forward slashes and strips a trailing
// slash. Paths are normalized exactly once, at ingestion; nothing else ever
// rewrites a path.
func Normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	return strings.TrimSuffix(p, "/")
}
