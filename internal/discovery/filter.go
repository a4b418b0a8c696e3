// Package discovery selects which registered tests take part in a run.
package discovery

import (
	"path"
	"strings"
)

// Filter filters test names by pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the test names matching pattern, preserving order.
// Supports wildcard patterns like "fib*" or "*cache*"; a pattern without
// wildcards matches any name containing it. An empty pattern keeps everything.
func (f *Filter) FilterByName(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}

	hasWildcard := strings.ContainsAny(pattern, "*?")
	var filtered []string

	for _, name := range names {
		// path.Match supports * and ? wildcards
		if matched, err := path.Match(pattern, name); err == nil && matched {
			filtered = append(filtered, name)
			continue
		}

		if hasWildcard {
			if matchParts(pattern, name) {
				filtered = append(filtered, name)
			}
			continue
		}

		if strings.Contains(name, pattern) {
			filtered = append(filtered, name)
		}
	}

	return filtered
}

// matchParts reports whether every non-empty part of a "*"-separated pattern
// occurs in name. Patterns made only of wildcards never match here.
func matchParts(pattern, name string) bool {
	hasNonEmptyPart := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		if strings.ContainsRune(part, '?') {
			return false
		}
		hasNonEmptyPart = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasNonEmptyPart
}
