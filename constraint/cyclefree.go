package constraint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/decycle-go/decycle/model"
)

// CycleFree reports every strongly-connected component of size ≥ 2 in a
// slicing's projection, plus any node with a direct self-reference.
type CycleFree struct {
	id          string
	slicingName string
}

// NewCycleFree constructs a CycleFree constraint over the named slicing,
// reported under id.
func NewCycleFree(id, slicingName string) *CycleFree {
	return &CycleFree{id: id, slicingName: slicingName}
}

// ID returns the constraint's stable identifier.
func (c *CycleFree) ID() string { return c.id }

// SlicingName returns the slicing this constraint projects against.
func (c *CycleFree) SlicingName() string { return c.slicingName }

// Evaluate finds every cycle in src and returns one violation per
// strongly-connected component, ordered by the SCC's lexicographically
// smallest member name.
func (c *CycleFree) Evaluate(src SliceSource) []Violation {
	nodeByName := make(map[string]*model.SimpleNode)
	for _, n := range src.Nodes() {
		nodeByName[n.Name()] = n
	}

	adj := make(map[string][]string)
	selfLoop := make(map[string]bool)
	for _, e := range src.Edges() {
		nodeByName[e.From.Name()] = e.From
		nodeByName[e.To.Name()] = e.To
		if e.From.Name() == e.To.Name() {
			selfLoop[e.From.Name()] = true
			continue
		}
		adj[e.From.Name()] = append(adj[e.From.Name()], e.To.Name())
	}
	for k, vs := range adj {
		sorted := slices.Clone(vs)
		slices.Sort(sorted)
		adj[k] = slices.Compact(sorted)
	}

	names := make([]string, 0, len(nodeByName))
	for n := range nodeByName {
		names = append(names, n)
	}
	slices.Sort(names)

	sccs := tarjanSCCs(names, adj)

	var violations []Violation
	for _, scc := range sccs {
		cyclic := len(scc) >= 2
		if len(scc) == 1 && selfLoop[scc[0]] {
			cyclic = true
		}
		if !cyclic {
			continue
		}
		deps := canonicalCycle(scc, adj, selfLoop, nodeByName)
		violations = append(violations, Violation{
			ConstraintID:     c.id,
			ShortDescription: fmt.Sprintf("cycle: %s", strings.Join(scc, ", ")),
			Dependencies:     deps,
		})
	}

	slices.SortFunc(violations, func(a, b Violation) int {
		return strings.Compare(minDependencyName(a), minDependencyName(b))
	})
	return violations
}

func minDependencyName(v Violation) string {
	best := ""
	for _, d := range v.Dependencies {
		if best == "" || d.From.Name() < best {
			best = d.From.Name()
		}
	}
	return best
}

// canonicalCycle builds a deterministic closed walk over an SCC's member
// names: visit the names in sorted order as waypoints, connecting
// consecutive waypoints (wrapping back to the first) by the shortest path
// within the SCC's induced subgraph. The induced subgraph of a
// strongly-connected component is itself strongly connected, so every
// waypoint-to-waypoint hop is reachable.
func canonicalCycle(scc []string, adj map[string][]string, selfLoop map[string]bool, nodeByName map[string]*model.SimpleNode) []Dependency {
	sorted := slices.Clone(scc)
	slices.Sort(sorted)

	if len(sorted) == 1 {
		n := sorted[0]
		if selfLoop[n] {
			return []Dependency{{From: nodeByName[n], To: nodeByName[n]}}
		}
		return nil
	}

	members := make(map[string]bool, len(sorted))
	for _, n := range sorted {
		members[n] = true
	}

	var deps []Dependency
	for i, from := range sorted {
		to := sorted[(i+1)%len(sorted)]
		path := bfsPath(adj, members, from, to)
		for j := 0; j+1 < len(path); j++ {
			deps = append(deps, Dependency{From: nodeByName[path[j]], To: nodeByName[path[j+1]]})
		}
	}
	return deps
}

// bfsPath finds a shortest path from start to goal using only edges whose
// endpoints are both in members, breaking ties deterministically by
// exploring neighbors in sorted order.
func bfsPath(adj map[string][]string, members map[string]bool, start, goal string) []string {
	if start == goal {
		return []string{start}
	}
	prev := map[string]string{start: ""}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if !members[next] {
				continue
			}
			if _, seen := prev[next]; seen {
				continue
			}
			prev[next] = cur
			if next == goal {
				return reconstructPath(prev, start, goal)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

func reconstructPath(prev map[string]string, start, goal string) []string {
	var path []string
	for n := goal; n != ""; n = prev[n] {
		path = append([]string{n}, path...)
		if n == start {
			break
		}
	}
	return path
}

func tarjanSCCs(names []string, adj map[string][]string) [][]string {
	type state struct {
		index, lowlink int
		onStack        bool
	}
	states := make(map[string]*state)
	var stack []string
	var sccs [][]string
	counter := 0

	var strongconnect func(v string)
	strongconnect = func(v string) {
		states[v] = &state{index: counter, lowlink: counter, onStack: true}
		counter++
		stack = append(stack, v)

		for _, w := range adj[v] {
			if states[w] == nil {
				strongconnect(w)
				if states[w].lowlink < states[v].lowlink {
					states[v].lowlink = states[w].lowlink
				}
			} else if states[w].onStack {
				if states[w].index < states[v].lowlink {
					states[v].lowlink = states[w].index
				}
			}
		}

		if states[v].lowlink == states[v].index {
			var scc []string
			for {
				n := len(stack) - 1
				w := stack[n]
				stack = stack[:n]
				states[w].onStack = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for _, v := range names {
		if states[v] == nil {
			strongconnect(v)
		}
	}
	return sccs
}
