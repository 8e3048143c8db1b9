// Package dirpath implements the path algebra of the namespace.
//
// A path is a "/" separated list of non-empty segments. Functions in this package
// accept paths with leading, trailing or repeated separators and treat them as if
// they were normalized.
package dirpath

import "strings"

const Separator = "/"

// ParseSegments splits path into its non-empty segments.
func ParseSegments(path string) []string {
	result := make([]string, 0)
	for _, segment := range strings.Split(path, Separator) {
		if segment == "" {
			continue
		}
		result = append(result, segment)
	}
	return result
}

func Normalize(path string) string {
	return strings.Join(ParseSegments(path), Separator)
}

// Base returns the last segment of path, or an empty string if path has no segment.
func Base(path string) string {
	segments := ParseSegments(path)
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

func ParentPath(path string) string {
	segments := ParseSegments(path)
	if len(segments) <= 1 {
		return ""
	}
	return strings.Join(segments[:len(segments)-1], Separator)
}

// Depth returns the number of segments of path.
func Depth(path string) int {
	return len(ParseSegments(path))
}

// AncestorChain returns the cumulative paths from the first segment to path itself,
// for example a/b/c returns [a a/b a/b/c].
func AncestorChain(path string) []string {
	segments := ParseSegments(path)
	result := make([]string, 0, len(segments))
	for i := range segments {
		result = append(result, strings.Join(segments[:i+1], Separator))
	}
	return result
}

// IsWithin reports whether path is candidatePath itself or one of its descendants.
func IsWithin(candidatePath, path string) bool {
	return path == candidatePath || strings.HasPrefix(path, candidatePath+Separator)
}

// RewritePath replaces the oldPrefix of old with newPrefix.
// old is returned as is if it isn't within oldPrefix.
func RewritePath(old, oldPrefix, newPrefix string) string {
	if !IsWithin(oldPrefix, old) {
		return old
	}
	return newPrefix + strings.TrimPrefix(old, oldPrefix)
}

// DescendantRange returns the half-open range [lower, upper) of strings which
// contains every strict descendant of path and nothing else.
// '0' is the byte right after '/'.
func DescendantRange(path string) (lower, upper string) {
	return path + Separator, path + "0"
}
