package slicing

import (
	"fmt"

	"github.com/decycle-go/decycle/pattern"
)

// Registry collects all slicings, the ignore list, and the global
// include/exclude patterns for a single Configuration.
type Registry struct {
	order    []string
	slicings map[string]*Slicing
	ignores  []IgnoreRule

	including []*pattern.Pattern
	excluding []*pattern.Pattern
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{slicings: make(map[string]*Slicing)}
}

// AddSlicing registers a slicing. Returns an error if a slicing with the
// same name is already registered.
func (r *Registry) AddSlicing(s *Slicing) error {
	if _, exists := r.slicings[s.Name()]; exists {
		return fmt.Errorf("slicing.Registry: duplicate slicing name %q", s.Name())
	}
	r.slicings[s.Name()] = s
	r.order = append(r.order, s.Name())
	return nil
}

// Slicing returns the registered slicing by name, and whether it exists.
func (r *Registry) Slicing(name string) (*Slicing, bool) {
	s, ok := r.slicings[name]
	return s, ok
}

// SlicingsInOrder returns all registered slicings in registration order.
func (r *Registry) SlicingsInOrder() []*Slicing {
	out := make([]*Slicing, len(r.order))
	for i, name := range r.order {
		out[i] = r.slicings[name]
	}
	return out
}

// AddIgnoreRule registers an ignore rule.
func (r *Registry) AddIgnoreRule(rule IgnoreRule) {
	r.ignores = append(r.ignores, rule)
}

// AddIncluding registers a pattern that must match for a class to
// participate, when at least one including pattern is registered.
func (r *Registry) AddIncluding(p *pattern.Pattern) {
	r.including = append(r.including, p)
}

// AddExcluding registers a pattern that removes a class from participation
// even if it matches an including pattern.
func (r *Registry) AddExcluding(p *pattern.Pattern) {
	r.excluding = append(r.excluding, p)
}

// Categorizer builds a Categorizer over all registered slicings, in
// registration order.
func (r *Registry) Categorizer() *Categorizer {
	return NewCategorizer(r.SlicingsInOrder()...)
}

// NodeFilter builds the global include/exclude NodeFilter.
func (r *Registry) NodeFilter() *NodeFilter {
	return NewNodeFilter(r.including, r.excluding)
}

// EdgePairFilter builds the EdgePairFilter from all registered ignore
// rules.
func (r *Registry) EdgePairFilter() *EdgePairFilter {
	return NewEdgePairFilter(r.ignores)
}
