package model

import "strings"

// ExclusionSet holds lower-cased repository names hidden from the portfolio.
type ExclusionSet map[string]struct{}

// NewExclusionSet builds a set from the given names, lower-casing each one.
func NewExclusionSet(names ...string) ExclusionSet {
	set := make(ExclusionSet, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = struct{}{}
	}
	return set
}

// Contains reports whether name is excluded, ignoring case.
func (s ExclusionSet) Contains(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}
