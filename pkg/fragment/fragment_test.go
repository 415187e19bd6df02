package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name: "basic list",
			content: `source-roots:
  - custom/java
  - gen/handwritten
`,
			want: []string{"custom/java", "gen/handwritten"},
		},
		{
			name: "quoted items",
			content: `source-roots:
  - "custom/java"
  - 'other/kotlin'
`,
			want: []string{"custom/java", "other/kotlin"},
		},
		{
			name: "comments and blank lines are skipped",
			content: `# module overrides
source-roots:

  # the handwritten sources
  - custom/java

  - extra/java
`,
			want: []string{"custom/java", "extra/java"},
		},
		{
			name: "stops at next top-level key",
			content: `source-roots:
  - custom/java
other-key:
  - not/ours
`,
			want: []string{"custom/java"},
		},
		{
			name: "stops at indented non-item line",
			content: `source-roots:
  - custom/java
  nested: value
  - too/late
`,
			want: []string{"custom/java"},
		},
		{
			name: "tab indentation",
			content: "source-roots:\n\t- custom/java\n",
			want:    []string{"custom/java"},
		},
		{
			name:    "crlf line endings",
			content: "source-roots:\r\n  - custom/java\r\n",
			want:    []string{"custom/java"},
		},
		{
			name: "unrecognized key only",
			content: `something-else:
  - custom/java
`,
			want: nil,
		},
		{
			name:    "empty content",
			content: "",
			want:    nil,
		},
		{
			name:    "free text is a no-op",
			content: "this fragment is not well formed\nat all",
			want:    nil,
		},
		{
			name: "empty items are dropped",
			content: `source-roots:
  - ""
  - custom/java
`,
			want: []string{"custom/java"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.content))
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		want       string
		wantReject bool
	}{
		{name: "plain entry", raw: "custom/java", want: "custom/java"},
		{name: "backslashes normalized", raw: "custom\\java", want: "custom/java"},
		{name: "trailing slash stripped", raw: "custom/java/", want: "custom/java"},
		{name: "surrounding whitespace trimmed", raw: "  custom/java ", want: "custom/java"},
		{name: "empty entry rejected", raw: "", wantReject: true},
		{name: "redundant module prefix rejected", raw: "lib/src/main/java", wantReject: true},
		{name: "redundant kotlin prefix rejected", raw: "services/order/src/main/kotlin", wantReject: true},
		{name: "generated directory rejected", raw: "build/generated", wantReject: true},
		{name: "generated subtree rejected", raw: "x/target/generated-sources/y", wantReject: true},
		{name: "builtin in the middle is allowed", raw: "tools/src/main/java/extra", want: "tools/src/main/java/extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := Sanitize(tt.raw)
			if tt.wantReject {
				assert.NotEmpty(t, reason)
				assert.Empty(t, got)
			} else {
				assert.Empty(t, reason)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Fragment: "app/.ejb2spring", Entry: "build/generated", Reason: "points at a generated directory"}
	assert.Equal(t, `app/.ejb2spring: "build/generated": points at a generated directory`, d.String())

	d = Diagnostic{Fragment: "app/.ejb2spring", Reason: "unreadable"}
	assert.Equal(t, "app/.ejb2spring: unreadable", d.String())
}
