package dirpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSegments(t *testing.T) {
	testCases := []struct {
		name string
		path string
		want []string
	}{
		{name: "nested path", path: "a/b/c", want: []string{"a", "b", "c"}},
		{name: "leading and trailing separators", path: "/a/b/", want: []string{"a", "b"}},
		{name: "duplicate separators", path: "a//b", want: []string{"a", "b"}},
		{name: "only separators", path: "///", want: []string{}},
		{name: "empty path", path: "", want: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseSegments(tc.path))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a/b", Normalize("//a///b/"))
	assert.Equal(t, "", Normalize("/"))
}

func TestBase(t *testing.T) {
	assert.Equal(t, "c", Base("a/b/c"))
	assert.Equal(t, "a", Base("a/"))
	assert.Equal(t, "", Base(""))
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 3, Depth("a/b/c"))
	assert.Equal(t, 1, Depth("/a/"))
	assert.Equal(t, 0, Depth(""))
}

func TestParentPath(t *testing.T) {
	testCases := []struct {
		name string
		path string
		want string
	}{
		{name: "nested path", path: "parent/child", want: "parent"},
		{name: "deeply nested path", path: "a/b/c", want: "a/b"},
		{name: "top-level path", path: "a", want: ""},
		{name: "trailing separator", path: "a/b/", want: "a"},
		{name: "empty path", path: "", want: ""},
		{name: "double separator", path: "a//b", want: "a"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParentPath(tc.path))
		})
	}
}

func TestAncestorChain(t *testing.T) {
	testCases := []struct {
		name string
		path string
		want []string
	}{
		{name: "nested path", path: "a/b/c", want: []string{"a", "a/b", "a/b/c"}},
		{name: "top-level path", path: "a", want: []string{"a"}},
		{name: "unnormalized path", path: "/a//b/", want: []string{"a", "a/b"}},
		{name: "empty path", path: "", want: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AncestorChain(tc.path))
		})
	}
}

func TestIsWithin(t *testing.T) {
	testCases := []struct {
		name          string
		candidatePath string
		path          string
		want          bool
	}{
		{name: "same path", candidatePath: "a/b", path: "a/b", want: true},
		{name: "child", candidatePath: "a", path: "a/b", want: true},
		{name: "grandchild", candidatePath: "a", path: "a/b/c", want: true},
		{name: "sibling sharing a prefix", candidatePath: "a", path: "ab", want: false},
		{name: "parent", candidatePath: "a/b", path: "a", want: false},
		{name: "unrelated", candidatePath: "a", path: "b/a", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsWithin(tc.candidatePath, tc.path))
		})
	}
}

func TestRewritePath(t *testing.T) {
	testCases := []struct {
		name      string
		old       string
		oldPrefix string
		newPrefix string
		want      string
	}{
		{name: "rewrite the root", old: "a/b", oldPrefix: "a/b", newPrefix: "c/b", want: "c/b"},
		{name: "keep the remainder", old: "a/b/x/y", oldPrefix: "a/b", newPrefix: "c/b", want: "c/b/x/y"},
		{name: "keep a path sharing only a string prefix", old: "a/bc", oldPrefix: "a/b", newPrefix: "c/b", want: "a/bc"},
		{name: "keep an unrelated path", old: "d", oldPrefix: "a", newPrefix: "c/a", want: "d"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RewritePath(tc.old, tc.oldPrefix, tc.newPrefix))
		})
	}
}

func TestDescendantRange(t *testing.T) {
	lower, upper := DescendantRange("a")

	inRange := func(path string) bool {
		return lower <= path && path < upper
	}
	for _, path := range []string{"a/b", "a/b/c", "a/-", "a/~"} {
		assert.True(t, inRange(path), path)
	}
	for _, path := range []string{"a", "ab", "a.b", "a0", "b"} {
		assert.False(t, inRange(path), path)
	}
}
