package domain

import (
	"errors"
	"sort"
	"testing"
)

func buildGraph(t *testing.T, edges map[string][]string) *DerivationGraph {
	t.Helper()
	g := NewDerivationGraph()
	// Insert in an order where parents exist first
	for _, child := range []string{"b", "c", "d", "e", "f"} {
		if parents, ok := edges[child]; ok {
			if err := g.AddEdges(child, parents); err != nil {
				t.Fatalf("AddEdges(%s): %v", child, err)
			}
		}
	}
	return g
}

func sorted(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}

func TestAddNodeIdempotent(t *testing.T) {
	g := NewDerivationGraph()
	g.AddNode("a")
	g.AddNode("a")

	if got := g.Ancestors("a"); len(got) != 0 {
		t.Errorf("Ancestors = %v, want empty", got)
	}
	if got := g.EdgeCount(); got != 0 {
		t.Errorf("EdgeCount = %d, want 0", got)
	}
}

func TestClosures(t *testing.T) {
	// a -> b -> d, a -> c -> d (diamond), d -> e
	g := buildGraph(t, map[string][]string{
		"b": {"a"},
		"c": {"a"},
		"d": {"b", "c"},
		"e": {"d"},
	})

	tests := []struct {
		name      string
		ancestors []string
		deps      []string
	}{
		{"a", nil, []string{"b", "c", "d", "e"}},
		{"b", []string{"a"}, []string{"d", "e"}},
		{"d", []string{"a", "b", "c"}, []string{"e"}},
		{"e", []string{"a", "b", "c", "d"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotAnc := sorted(g.Ancestors(tt.name))
			wantAnc := sorted(tt.ancestors)
			if len(gotAnc) != len(wantAnc) {
				t.Fatalf("Ancestors(%s) = %v, want %v", tt.name, gotAnc, wantAnc)
			}
			for i := range gotAnc {
				if gotAnc[i] != wantAnc[i] {
					t.Fatalf("Ancestors(%s) = %v, want %v", tt.name, gotAnc, wantAnc)
				}
			}

			gotDep := sorted(g.Descendants(tt.name))
			wantDep := sorted(tt.deps)
			if len(gotDep) != len(wantDep) {
				t.Fatalf("Descendants(%s) = %v, want %v", tt.name, gotDep, wantDep)
			}
			for i := range gotDep {
				if gotDep[i] != wantDep[i] {
					t.Fatalf("Descendants(%s) = %v, want %v", tt.name, gotDep, wantDep)
				}
			}
		})
	}
}

func TestClosuresAreTotal(t *testing.T) {
	g := NewDerivationGraph()
	if got := g.Ancestors("ghost"); len(got) != 0 {
		t.Errorf("Ancestors(unknown) = %v, want empty", got)
	}
	if got := g.Descendants("ghost"); len(got) != 0 {
		t.Errorf("Descendants(unknown) = %v, want empty", got)
	}
}

func TestAddEdgesRejectsSelfLoop(t *testing.T) {
	g := NewDerivationGraph()
	err := g.AddEdges("a", []string{"a"})
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestAddEdgesRejectsCycle(t *testing.T) {
	g := buildGraph(t, map[string][]string{
		"b": {"a"},
		"c": {"b"},
	})

	// a derives from c would close a -> b -> c -> a
	err := g.AddEdges("a", []string{"c"})
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestCycleRejectionCommitsNothing(t *testing.T) {
	g := buildGraph(t, map[string][]string{
		"b": {"a"},
		"c": {"b"},
	})
	before := g.EdgeCount()

	// Second parent closes a cycle; the valid first edge must roll back too
	err := g.AddEdges("a", []string{"x", "c"})
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}

	if got := g.EdgeCount(); got != before {
		t.Errorf("EdgeCount = %d after failed insert, want %d", got, before)
	}
	if got := g.Ancestors("a"); len(got) != 0 {
		t.Errorf("Ancestors(a) = %v after failed insert, want empty", got)
	}
	if got := g.Descendants("x"); len(got) != 0 {
		t.Errorf("Descendants(x) = %v after failed insert, want empty", got)
	}
}

func TestAddEdgesCreatesMissingParents(t *testing.T) {
	g := NewDerivationGraph()
	if err := g.AddEdges("child", []string{"p1", "p2"}); err != nil {
		t.Fatalf("AddEdges: %v", err)
	}

	if got := sorted(g.Ancestors("child")); len(got) != 2 {
		t.Errorf("Ancestors(child) = %v, want [p1 p2]", got)
	}
	if got := g.Descendants("p1"); len(got) != 1 || got[0] != "child" {
		t.Errorf("Descendants(p1) = %v, want [child]", got)
	}
}
