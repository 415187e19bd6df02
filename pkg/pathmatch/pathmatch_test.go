package pathmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentIndex(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		pattern string
		want    int
	}{
		{
			name:    "match at start",
			path:    "src/main/java/com/acme/Foo.java",
			pattern: "src/main/java",
			want:    0,
		},
		{
			name:    "match after module prefix",
			path:    "a/src/main/java/b/C.java",
			pattern: "src/main/java",
			want:    2,
		},
		{
			name:    "match at end of string",
			path:    "app/src/main/java",
			pattern: "src/main/java",
			want:    4,
		},
		{
			name:    "whole path is the pattern",
			path:    "src/main/java",
			pattern: "src/main/java",
			want:    0,
		},
		{
			name:    "no partial segment match on suffix",
			path:    "src/main/javax/Foo.java",
			pattern: "src/main/java",
			want:    NotFound,
		},
		{
			name:    "no partial segment match on prefix",
			path:    "mysrc/main/java/Foo.java",
			pattern: "src/main/java",
			want:    NotFound,
		},
		{
			name:    "skips unbounded occurrence, finds later bounded one",
			path:    "src/main/javax/src/main/java/Foo.java",
			pattern: "src/main/java",
			want:    15,
		},
		{
			name:    "generated subtree matches because slash follows",
			path:    "app/build/generated/source/kapt/X.java",
			pattern: "build/generated",
			want:    4,
		},
		{
			name:    "hyphenated sibling does not match",
			path:    "app/build/generated-x/X.java",
			pattern: "build/generated",
			want:    NotFound,
		},
		{
			name:    "empty pattern never matches",
			path:    "a/b/c",
			pattern: "",
			want:    NotFound,
		},
		{
			name:    "pattern longer than path",
			path:    "src",
			pattern: "src/main/java",
			want:    NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SegmentIndex(tt.path, tt.pattern))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("a/src/main/java/B.java", "src/main/java"))
	assert.False(t, Contains("a/src/main/javax/B.java", "src/main/java"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "backslashes become slashes", in: "app\\src\\main\\java\\Foo.java", want: "app/src/main/java/Foo.java"},
		{name: "trailing slash stripped", in: "custom/java/", want: "custom/java"},
		{name: "mixed separators", in: "app\\custom/java\\", want: "app/custom/java"},
		{name: "already normalized", in: "a/b/c", want: "a/b/c"},
		{name: "empty stays empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
