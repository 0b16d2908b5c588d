package decycle

import (
	"log/slog"

	"github.com/decycle-go/decycle/constraint"
)

// Option configures Configuration construction.
type Option func(*configBuilder)

type slicingSpec struct {
	name     string
	patterns []string
}

type ignoreSpec struct {
	from, to string
}

type configBuilder struct {
	including   []string
	excluding   []string
	ignoring    []ignoreSpec
	slicings    []slicingSpec
	constraints []constraint.Constraint
	logger      *slog.Logger
}

// WithIncluding registers class-name patterns; when at least one is
// registered across the whole configuration, only matching classes
// participate in the graph.
func WithIncluding(patterns ...string) Option {
	return func(b *configBuilder) {
		b.including = append(b.including, patterns...)
	}
}

// WithExcluding registers class-name patterns subtracted after including.
func WithExcluding(patterns ...string) Option {
	return func(b *configBuilder) {
		b.excluding = append(b.excluding, patterns...)
	}
}

// WithIgnoring registers a pair of patterns; a reference whose source
// matches from and whose target matches to is dropped before constraint
// evaluation.
func WithIgnoring(from, to string) Option {
	return func(b *configBuilder) {
		b.ignoring = append(b.ignoring, ignoreSpec{from: from, to: to})
	}
}

// WithSlicing registers a named slicing as an ordered list of patterns.
func WithSlicing(name string, patterns ...string) Option {
	return func(b *configBuilder) {
		b.slicings = append(b.slicings, slicingSpec{name: name, patterns: patterns})
	}
}

// WithConstraint registers a constraint to evaluate during Check, in
// registration order.
func WithConstraint(c constraint.Constraint) Option {
	return func(b *configBuilder) {
		b.constraints = append(b.constraints, c)
	}
}

// WithLogger enables debug logging for graph and configuration operations.
func WithLogger(logger *slog.Logger) Option {
	return func(b *configBuilder) {
		b.logger = logger
	}
}
