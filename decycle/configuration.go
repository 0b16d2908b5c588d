package decycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/decycle-go/decycle/constraint"
	"github.com/decycle-go/decycle/depgraph"
	"github.com/decycle-go/decycle/diag"
	"github.com/decycle-go/decycle/ingest"
	"github.com/decycle-go/decycle/internal/trace"
	"github.com/decycle-go/decycle/pattern"
	"github.com/decycle-go/decycle/slicing"
)

// Configuration is the orchestrator: it owns the graph, the registered
// constraints, and the ingest source, and drives a single Check() from
// filters and slicings to a violation list.
//
// Configuration is built once via [New] and is safe to [Configuration.Check]
// repeatedly; each call re-walks the source and re-evaluates constraints
// against fresh slice projections.
type Configuration struct {
	graph       *depgraph.Graph
	source      ingest.Source
	constraints []constraint.Constraint
	logger      *slog.Logger
}

// New builds a Configuration from the given ingest source and options.
//
// Configuration errors (an invalid pattern, a duplicate slicing name, an
// ignore rule missing a pattern, a duplicate constraint ID, a constraint
// over an unregistered slicing, a nil source) are reported in the returned
// diag.Result rather than as a Go error; they do not prevent a
// *Configuration from being returned, but every affected option is skipped,
// so callers should treat a non-OK result as fatal to Check before using it.
func New(source ingest.Source, opts ...Option) (*Configuration, diag.Result, error) {
	b := &configBuilder{}
	for _, opt := range opts {
		opt(b)
	}

	collector := diag.NewCollector(diag.NoLimit)

	if source == nil {
		issue := diag.NewIssue(diag.Error, diag.E_EMPTY_CLASSPATH, "no ingest source configured").Build()
		collector.Collect(issue)
	}

	reg := slicing.NewRegistry()

	for _, s := range b.slicings {
		patterns, ok := parsePatterns(collector, s.patterns)
		if !ok || len(patterns) == 0 {
			continue
		}
		if err := reg.AddSlicing(slicing.NewSlicing(s.name, patterns...)); err != nil {
			collector.Collect(diag.NewIssue(diag.Error, diag.E_DUPLICATE_SLICING, err.Error()).Build())
		}
	}

	if including, ok := parsePatterns(collector, b.including); ok {
		for _, p := range including {
			reg.AddIncluding(p)
		}
	}
	if excluding, ok := parsePatterns(collector, b.excluding); ok {
		for _, p := range excluding {
			reg.AddExcluding(p)
		}
	}

	for _, ig := range b.ignoring {
		if ig.from == "" || ig.to == "" {
			msg := fmt.Sprintf("ignore rule missing %s pattern", missingSide(ig))
			collector.Collect(diag.NewIssue(diag.Error, diag.E_UNKNOWN_IGNORE_KEY, msg).Build())
			continue
		}
		fromP, err1 := pattern.Parse(ig.from)
		toP, err2 := pattern.Parse(ig.to)
		if err1 != nil {
			collector.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_PATTERN, err1.Error()).Build())
			continue
		}
		if err2 != nil {
			collector.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_PATTERN, err2.Error()).Build())
			continue
		}
		reg.AddIgnoreRule(slicing.IgnoreRule{From: fromP, To: toP})
	}

	seenIDs := make(map[string]bool, len(b.constraints))
	constraints := make([]constraint.Constraint, 0, len(b.constraints))
	for _, c := range b.constraints {
		if seenIDs[c.ID()] {
			msg := fmt.Sprintf("duplicate constraint id %q", c.ID())
			collector.Collect(diag.NewIssue(diag.Error, diag.E_DUPLICATE_CONSTRAINT_ID, msg).Build())
			continue
		}
		seenIDs[c.ID()] = true

		if _, ok := reg.Slicing(c.SlicingName()); !ok {
			msg := fmt.Sprintf("constraint %q references unregistered slicing %q", c.ID(), c.SlicingName())
			collector.Collect(diag.NewIssue(diag.Error, diag.E_UNKNOWN_LAYER_MEMBER, msg).Build())
			continue
		}
		constraints = append(constraints, c)
	}

	g := depgraph.New(reg.Categorizer(), reg.NodeFilter(), reg.EdgePairFilter(), depgraph.WithLogger(b.logger))

	cfg := &Configuration{
		graph:       g,
		source:      source,
		constraints: constraints,
		logger:      b.logger,
	}
	return cfg, collector.Result(), nil
}

func missingSide(ig ignoreSpec) string {
	switch {
	case ig.from == "" && ig.to == "":
		return "from and to"
	case ig.from == "":
		return "from"
	default:
		return "to"
	}
}

func parsePatterns(collector *diag.Collector, raw []string) ([]*pattern.Pattern, bool) {
	patterns := make([]*pattern.Pattern, 0, len(raw))
	ok := true
	for _, s := range raw {
		p, err := pattern.Parse(s)
		if err != nil {
			collector.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_PATTERN, err.Error()).Build())
			ok = false
			continue
		}
		patterns = append(patterns, p)
	}
	return patterns, ok
}

// Check walks the ingest source to populate the graph, then evaluates every
// registered constraint against its slicing's projection, returning the
// concatenated violations in constraint registration order.
//
// Return semantics:
//   - (violations, nil): Check completed; an empty slice means no violations.
//   - (nil, error): the ingest source failed, or Check was called on a nil
//     receiver or with a cancelled context.
func (cfg *Configuration) Check(ctx context.Context) ([]constraint.Violation, error) {
	if cfg == nil {
		return nil, ErrNilConfiguration
	}
	if ctx == nil {
		panic("decycle.Configuration.Check: nil context")
	}

	op := trace.Begin(ctx, cfg.logger, "decycle.configuration.check",
		slog.String("run_id", cfg.graph.RunID().String()),
	)
	var retErr error
	defer func() { op.End(retErr) }()

	if err := ctx.Err(); err != nil {
		retErr = err
		return nil, retErr
	}

	if err := cfg.source.Walk(ctx, &visitorAdapter{graph: cfg.graph}); err != nil {
		retErr = err
		return nil, retErr
	}

	var violations []constraint.Violation
	for _, c := range cfg.constraints {
		src := cfg.graph.Slice(c.SlicingName())
		violations = append(violations, c.Evaluate(src)...)
	}

	trace.Debug(ctx, cfg.logger, "check completed",
		slog.Int("violation_count", len(violations)),
	)

	return violations, nil
}

// Slice exposes the named slicing's current projection, e.g. for DOT export
// via [*depgraph.Result.ToDOT] after a Check has populated the graph. An
// unrecognized slicing name yields an empty projection, never an error.
func (cfg *Configuration) Slice(slicingName string) *depgraph.Result {
	if cfg == nil {
		return nil
	}
	return cfg.graph.Slice(slicingName)
}
