package domain

import "fmt"

// DerivationGraph is an insert-only DAG over entity names. Edges point
// from a child to the parents it derives from. The graph is not safe for
// concurrent use on its own; the registry serializes access.
type DerivationGraph struct {
	parents  map[string]map[string]struct{}
	children map[string]map[string]struct{}
}

func NewDerivationGraph() *DerivationGraph {
	return &DerivationGraph{
		parents:  make(map[string]map[string]struct{}),
		children: make(map[string]map[string]struct{}),
	}
}

// AddNode registers a name with no edges. Idempotent.
func (g *DerivationGraph) AddNode(name string) {
	if _, ok := g.parents[name]; !ok {
		g.parents[name] = make(map[string]struct{})
	}
	if _, ok := g.children[name]; !ok {
		g.children[name] = make(map[string]struct{})
	}
}

// AddEdges links child to each parent, creating missing nodes. The whole
// call is all-or-nothing: every edge is cycle-checked before any edge is
// committed, so concurrent readers walking closures never observe a
// transient cycle.
func (g *DerivationGraph) AddEdges(child string, parents []string) error {
	for _, parent := range parents {
		if parent == child || g.reachesDown(child, parent) {
			return fmt.Errorf("%w: %s -> %s", ErrCycle, child, parent)
		}
	}

	g.AddNode(child)
	for _, parent := range parents {
		g.AddNode(parent)
		g.parents[child][parent] = struct{}{}
		g.children[parent][child] = struct{}{}
	}
	return nil
}

// reachesDown reports whether target lies on some child-direction path
// from start, i.e. target is already a transitive dependent of start.
func (g *DerivationGraph) reachesDown(start, target string) bool {
	for _, name := range g.closure(start, g.children) {
		if name == target {
			return true
		}
	}
	return false
}

// Ancestors returns the transitive parent closure of name in BFS order.
// Unknown names and roots yield an empty slice.
func (g *DerivationGraph) Ancestors(name string) []string {
	return g.closure(name, g.parents)
}

// Descendants returns the transitive child closure of name in BFS order.
func (g *DerivationGraph) Descendants(name string) []string {
	return g.closure(name, g.children)
}

// Parents returns the direct parent set of name.
func (g *DerivationGraph) Parents(name string) []string {
	out := make([]string, 0, len(g.parents[name]))
	for p := range g.parents[name] {
		out = append(out, p)
	}
	return out
}

// Children returns the direct child set of name.
func (g *DerivationGraph) Children(name string) []string {
	out := make([]string, 0, len(g.children[name]))
	for c := range g.children[name] {
		out = append(out, c)
	}
	return out
}

// EdgeCount returns the number of child-to-parent edges in the graph.
func (g *DerivationGraph) EdgeCount() int {
	n := 0
	for _, set := range g.parents {
		n += len(set)
	}
	return n
}

func (g *DerivationGraph) closure(start string, index map[string]map[string]struct{}) []string {
	visited := map[string]struct{}{start: {}}
	queue := []string{start}
	var out []string

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for next := range index[current] {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			out = append(out, next)
			queue = append(queue, next)
		}
	}
	return out
}
