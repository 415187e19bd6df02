// Package fragment handles the per-module configuration fragments that
// declare extra source-root patterns. Fragments are accumulated verbatim
// during a run's first phase and parsed only at commit time.
package fragment

import (
	"fmt"
	"strings"

	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/catalog"
	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/pathmatch"
)

// Key is the single recognized top-level key in a fragment.
const Key = "source-roots"

// DefaultFileName identifies configuration fragments inside a scanned tree.
const DefaultFileName = ".ejb2spring"

// Diagnostic is an advisory record about a rejected or suspicious fragment
// entry. Diagnostics never abort a run.
type Diagnostic struct {
	Fragment string `json:"fragment"`
	Entry    string `json:"entry,omitempty"`
	Reason   string `json:"reason"`
}

func (d Diagnostic) String() string {
	if d.Entry == "" {
		return fmt.Sprintf("%s: %s", d.Fragment, d.Reason)
	}
	return fmt.Sprintf("%s: %q: %s", d.Fragment, d.Entry, d.Reason)
}

// Parse extracts the override entries declared in a fragment body. The
// format is intentionally minimal: one recognized top-level key followed by
// indented "- " items, optionally quoted, with "#" comment lines.
//
//	source-roots:
//	  - custom/java
//	  - "gen/handwritten"
//
// Parsing stops at the next unindented line or at an indented line that is
// not a list item. Content that does not fit the shape contributes nothing;
// a malformed fragment is never a hard error.
func Parse(content string) []string {
	var items []string
	inList := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		indented := len(line) > 0 && (line[0] == ' ' || line[0] == '\t')
		if !inList {
			if !indented && trimmed == Key+":" {
				inList = true
			}
			continue
		}
		if !indented || !strings.HasPrefix(trimmed, "- ") {
			break
		}
		item := unquote(strings.TrimSpace(strings.TrimPrefix(trimmed, "- ")))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Sanitize normalizes a parsed override entry and reports why it must be
// rejected, if it must. An empty reason means the entry is usable.
//
// An entry that ends in a built-in source root after some prefix encodes a
// redundant module boundary and would double-count the module; an entry
// matching a generated pattern would direct hand-authored artifacts into
// build output. Both are dropped with a diagnostic.
func Sanitize(raw string) (pattern, reason string) {
	p := pathmatch.Normalize(strings.TrimSpace(raw))
	if p == "" {
		return "", "empty entry"
	}
	for _, b := range catalog.BuiltinPatterns() {
		if idx := pathmatch.SegmentIndex(p, b); idx > 0 && idx+len(b) == len(p) {
			return "", fmt.Sprintf("embeds built-in source root %q; module prefixes are derived from file locations", b)
		}
	}
	if catalog.MatchesGenerated(p) {
		return "", "points at a generated directory"
	}
	return p, ""
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
