package slicing

import "github.com/decycle-go/decycle/pattern"

// Slicing is a named, ordered list of patterns.
type Slicing struct {
	name     string
	patterns []*pattern.Pattern
}

// NewSlicing constructs a Slicing. Panics if name is empty or no patterns
// are given, since an empty slicing can never classify anything.
func NewSlicing(name string, patterns ...*pattern.Pattern) *Slicing {
	if name == "" {
		panic("slicing.NewSlicing: empty name")
	}
	if len(patterns) == 0 {
		panic("slicing.NewSlicing: no patterns")
	}
	cp := make([]*pattern.Pattern, len(patterns))
	copy(cp, patterns)
	return &Slicing{name: name, patterns: cp}
}

// Name returns the slicing's name.
func (s *Slicing) Name() string {
	return s.name
}

// Patterns returns a copy of the slicing's ordered pattern list.
func (s *Slicing) Patterns() []*pattern.Pattern {
	out := make([]*pattern.Pattern, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Match applies the slicing's patterns in declaration order, returning the
// label produced by the first pattern that matches className.
func (s *Slicing) Match(className string) (label string, ok bool) {
	for _, p := range s.patterns {
		if label, ok := p.Match(className); ok {
			return label, true
		}
	}
	return "", false
}
