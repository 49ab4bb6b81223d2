package discovery

import (
	"path/filepath"
	"strings"

	"verity/internal/domain"
	"verity/pkg/unit"
)

// Filter selects registered cases by name pattern and suite
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Matches reports whether name matches pattern using wildcard matching.
// Supports patterns like "Test *confirm*" or "*float*"; a pattern without
// wildcards matches any name containing it. An empty pattern matches all.
func (f *Filter) Matches(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	// Try to match using filepath.Match (supports * and ? wildcards)
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	// If pattern contains wildcards but filepath.Match didn't match,
	// try a more flexible match on the parts between the wildcards
	if strings.Contains(pattern, "*") {
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	// If no wildcards, do a simple contains check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}

// FilterByName returns the names that match pattern
func (f *Filter) FilterByName(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}

	var filtered []string
	for _, name := range names {
		if f.Matches(name, pattern) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

// Select returns the part of reg whose case names match pattern and, when
// suite is set, that belong to that suite. The ungrouped suite is selected
// with "Single Tests". Selecting seals reg.
func (f *Filter) Select(reg *unit.Registry, pattern, suite string) *unit.Registry {
	return reg.Select(func(c *unit.Case) bool {
		if suite != "" && domain.SuiteLabel(c.Suite) != suite {
			return false
		}
		return f.Matches(c.Name, pattern)
	})
}
