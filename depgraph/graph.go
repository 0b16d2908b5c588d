package depgraph

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/decycle-go/decycle/diag"
	"github.com/decycle-go/decycle/internal/trace"
	"github.com/decycle-go/decycle/model"
	"github.com/decycle-go/decycle/slicing"
)

// Graph is the mutable directed multigraph of class and slice-group nodes.
//
// Graph is safe for concurrent use from multiple goroutines. [Graph.Add] and
// [Graph.Connect] may be called concurrently during ingest; [Graph.Slice] and
// the read accessors take a read lock and observe a consistent snapshot of
// whatever has been committed so far.
//
// Two edge kinds coexist in the same multigraph: CONTAINS edges form a
// forest from slice-group nodes down to the class nodes (and intermediate
// slice-group nodes) they categorize, except that a ParentAwareNode has one
// CONTAINS in-edge from each of its vals; REFERENCES edges record the raw
// class-to-class associations discovered during ingest.
type Graph struct {
	config graphConfig
	mu     sync.RWMutex

	categorizer *slicing.Categorizer
	nodeFilter  *slicing.NodeFilter
	edgeFilter  *slicing.EdgePairFilter

	runID uuid.UUID

	nodes map[string]model.Node

	// containsParents maps a child node's key to its CONTAINS in-edge
	// sources, in insertion order. A SimpleNode has at most one entry
	// (a single category); a ParentAwareNode has one entry per val, since
	// each of its vals contains it.
	containsParents map[string][]model.Node

	// containsChildren maps a parent node's key to the nodes it directly
	// contains, in insertion order.
	containsChildren map[string][]model.Node
	containsSeen     map[string]struct{}

	// refs maps a source node's key to the REFERENCES targets it points
	// at, in insertion order.
	refs    map[string][]model.Node
	refEdge []model.Edge // all REFERENCES edges, insertion order
	refSeen map[string]struct{}

	collector *diag.Collector
}

// New constructs an empty Graph bound to a categorizer and the global node
// and edge-pair filters.
//
// Panics if categorizer, nodeFilter, or edgeFilter is nil: a Graph cannot
// meaningfully classify or filter nodes without them, and accepting nil here
// would defer the failure to the first Add/Connect call.
func New(categorizer *slicing.Categorizer, nodeFilter *slicing.NodeFilter, edgeFilter *slicing.EdgePairFilter, opts ...GraphOption) *Graph {
	if categorizer == nil {
		panic("depgraph.New: nil categorizer")
	}
	if nodeFilter == nil {
		panic("depgraph.New: nil nodeFilter")
	}
	if edgeFilter == nil {
		panic("depgraph.New: nil edgeFilter")
	}

	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph{
		config:           cfg,
		categorizer:      categorizer,
		nodeFilter:       nodeFilter,
		edgeFilter:       edgeFilter,
		runID:            uuid.New(),
		nodes:            make(map[string]model.Node),
		containsParents:  make(map[string][]model.Node),
		containsChildren: make(map[string][]model.Node),
		containsSeen:     make(map[string]struct{}),
		refs:             make(map[string][]model.Node),
		refSeen:          make(map[string]struct{}),
		collector:        diag.NewCollector(diag.NoLimit),
	}
}

// RunID returns the UUID stamped on this Graph at construction, used to
// correlate log lines from a single ingest-and-check run.
func (g *Graph) RunID() uuid.UUID {
	if g == nil {
		return uuid.UUID{}
	}
	return g.runID
}

// Add inserts a class node into the graph by name, categorizing it and
// recursively inserting the slice-group nodes that contain it.
//
// Return semantics:
//   - (result, nil): operation completed; check result.OK() for success.
//   - (empty, error): internal failure (nil receiver, empty class name) or
//     context cancellation.
func (g *Graph) Add(ctx context.Context, className string) (diag.Result, error) {
	if g == nil {
		return diag.OK(), ErrNilGraph
	}
	if className == "" {
		return diag.OK(), ErrEmptyClassName
	}
	if ctx == nil {
		panic("depgraph.Add: nil context")
	}

	op := trace.Begin(ctx, g.config.logger, "decycle.depgraph.add",
		slog.String("class", className),
	)
	var retErr error
	defer func() { op.End(retErr) }()

	if err := ctx.Err(); err != nil {
		retErr = err
		return diag.OK(), retErr
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	leaf := model.NewSimpleNode(className, model.ClassType)
	g.addNode(leaf)

	return diag.OK(), nil
}

// Connect records a REFERENCES edge between two classes by name, inserting
// both endpoints as a side effect. Self-loops and pairs rejected by the
// global node filter or an ignore rule are silently dropped; they are
// configuration-driven exclusions, not errors.
func (g *Graph) Connect(ctx context.Context, fromClassName, toClassName string) (diag.Result, error) {
	if g == nil {
		return diag.OK(), ErrNilGraph
	}
	if fromClassName == "" || toClassName == "" {
		return diag.OK(), ErrEmptyClassName
	}
	if ctx == nil {
		panic("depgraph.Connect: nil context")
	}

	op := trace.Begin(ctx, g.config.logger, "decycle.depgraph.connect",
		slog.String("from", fromClassName),
		slog.String("to", toClassName),
	)
	var retErr error
	defer func() { op.End(retErr) }()

	if err := ctx.Err(); err != nil {
		retErr = err
		return diag.OK(), retErr
	}

	if fromClassName == toClassName {
		return diag.OK(), nil
	}
	if !g.nodeFilter.AcceptName(fromClassName) || !g.nodeFilter.AcceptName(toClassName) {
		return diag.OK(), nil
	}
	if !g.edgeFilter.Accept(fromClassName, toClassName) {
		return diag.OK(), nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	from := model.NewSimpleNode(fromClassName, model.ClassType)
	to := model.NewSimpleNode(toClassName, model.ClassType)

	g.addNode(from)
	g.addNode(to)
	g.addRefEdge(from, to)

	return diag.OK(), nil
}

// addNode inserts n and, for SimpleNode and ParentAwareNode leaves, its
// containing slice-group nodes, stopping at the fixed point where
// categorization returns the node unchanged. Callers must hold g.mu.
func (g *Graph) addNode(n model.Node) {
	key := n.Key()
	if _, exists := g.nodes[key]; exists {
		return
	}
	if !g.nodeFilter.Accept(n) {
		return
	}
	g.nodes[key] = n

	switch v := n.(type) {
	case *model.ParentAwareNode:
		for _, val := range v.Vals() {
			g.addNode(val)
			g.addContainsEdge(val, n)
		}
	case *model.SimpleNode:
		cat := g.categorizer.Categorize(v)
		if model.Equal(cat, n) {
			return
		}
		g.addNode(cat)
		g.addContainsEdge(cat, n)
	}
}

func (g *Graph) addContainsEdge(parent, child model.Node) {
	edgeKey := model.NewEdge(parent, child, model.Contains).Key()
	if _, seen := g.containsSeen[edgeKey]; seen {
		return
	}
	g.containsSeen[edgeKey] = struct{}{}
	g.containsParents[child.Key()] = append(g.containsParents[child.Key()], parent)
	g.containsChildren[parent.Key()] = append(g.containsChildren[parent.Key()], child)
}

func (g *Graph) addRefEdge(from, to model.Node) {
	edge := model.NewEdge(from, to, model.References)
	if _, seen := g.refSeen[edge.Key()]; seen {
		return
	}
	g.refSeen[edge.Key()] = struct{}{}
	g.refs[from.Key()] = append(g.refs[from.Key()], to)
	g.refEdge = append(g.refEdge, edge)
}

// AllNodes returns every node currently in the graph, sorted by key.
func (g *Graph) AllNodes() []model.Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return newSnapshot(g.nodes, nil).Nodes()
}

// TopNodes returns the nodes with no incoming CONTAINS edge: the roots of
// the containment forest.
func (g *Graph) TopNodes() []model.Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	tops := make(map[string]model.Node)
	for key, n := range g.nodes {
		if len(g.containsParents[key]) == 0 {
			tops[key] = n
		}
	}
	return newSnapshot(tops, nil).Nodes()
}

// ContentsOf returns the nodes directly contained by group (its CONTAINS
// out-neighbors), sorted by key.
func (g *Graph) ContentsOf(group model.Node) []model.Node {
	if group == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return sortedNodes(g.containsChildren[group.Key()])
}

// ConnectionsOf returns the nodes node directly references (its REFERENCES
// out-neighbors), sorted by key.
func (g *Graph) ConnectionsOf(node model.Node) []model.Node {
	if node == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return sortedNodes(g.refs[node.Key()])
}

// Snapshot returns a point-in-time copy of the full graph, independent of
// subsequent mutation.
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]model.Edge, 0, len(g.refEdge)+len(g.containsSeen))
	edges = append(edges, g.refEdge...)
	for childKey, parents := range g.containsParents {
		child := g.nodes[childKey]
		for _, parent := range parents {
			edges = append(edges, model.NewEdge(parent, child, model.Contains))
		}
	}
	return newSnapshot(g.nodes, edges)
}

// Slice projects the graph onto a single slicing: every node carrying that
// slicing's type, and a REFERENCES edge between two such nodes for every raw
// class-to-class edge that lifts to a distinct pair.
func (g *Graph) Slice(slicingName string) *Result {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var nodes []*model.SimpleNode
	for _, n := range g.nodes {
		sn, ok := n.(*model.SimpleNode)
		if !ok {
			continue
		}
		if sn.HasType(slicingName) {
			nodes = append(nodes, sn)
		}
	}

	finder := NewSliceNodeFinder(slicingName, g)
	var edges []Ref
	for _, e := range g.refEdge {
		from, ok := finder.Lift(e.From())
		if !ok {
			continue
		}
		to, ok := finder.Lift(e.To())
		if !ok {
			continue
		}
		if from.Key() == to.Key() {
			continue
		}
		edges = append(edges, Ref{From: from, To: to})
	}

	return newResult(slicingName, nodes, edges)
}

func sortedNodes(nodes []model.Node) []model.Node {
	m := make(map[string]model.Node, len(nodes))
	for _, n := range nodes {
		m[n.Key()] = n
	}
	return newSnapshot(m, nil).Nodes()
}
