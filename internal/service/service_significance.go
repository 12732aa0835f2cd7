package service

import "github.com/MKhiriev/go-sync-keeper/internal/config"

type ignoreKey struct {
	class    string
	property string
}

// ChangeFilter decides whether a change set carries anything besides
// properties configured as ignored for the object's exact class.
type ChangeFilter struct {
	ignored map[ignoreKey]struct{}
}

// NewChangeFilter builds a filter from the ignore rules. Repeated rules
// count once.
func NewChangeFilter(rules []config.IgnoreProperty) *ChangeFilter {
	ignored := make(map[ignoreKey]struct{}, len(rules))
	for _, rule := range rules {
		ignored[ignoreKey{class: rule.Class, property: rule.Property}] = struct{}{}
	}
	return &ChangeFilter{ignored: ignored}
}

// HasSignificantChange reports whether at least one property in changed is
// not ignored for class. Rules of other classes, including supertypes, never
// match. An empty change set is never significant.
func (f *ChangeFilter) HasSignificantChange(class string, changed []string) bool {
	count := len(changed)
	for _, property := range changed {
		if _, ok := f.ignored[ignoreKey{class: class, property: property}]; ok {
			count--
		}
	}
	return count > 0
}
