package graph_test

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/seankmartin/SKMNeuralConnections/graph"
)

// TestNew_Errors verifies vertex-count validation.
func TestNew_Errors(t *testing.T) {
	if _, err := graph.New(-1); !errors.Is(err, graph.ErrBadVertexCount) {
		t.Errorf("New(-1): want ErrBadVertexCount, got %v", err)
	}
	g, err := graph.New(0)
	if err != nil {
		t.Fatalf("New(0): unexpected error %v", err)
	}
	if g.Order() != 0 {
		t.Errorf("Order = %d; want 0", g.Order())
	}
}

// TestFromAdjacency_Validation rejects out-of-range targets instead of
// silently truncating them.
func TestFromAdjacency_Validation(t *testing.T) {
	if _, err := graph.FromAdjacency([][]int{{1}, {3}}); !errors.Is(err, graph.ErrVertexOutOfRange) {
		t.Errorf("target 3 in a 2-vertex graph: want ErrVertexOutOfRange, got %v", err)
	}
	if _, err := graph.FromAdjacency([][]int{{-1}}); !errors.Is(err, graph.ErrVertexOutOfRange) {
		t.Errorf("negative target: want ErrVertexOutOfRange, got %v", err)
	}
}

// TestFromAdjacency_DeepCopies ensures the graph does not alias caller storage.
func TestFromAdjacency_DeepCopies(t *testing.T) {
	raw := [][]int{{1, 1, 0}, {}}
	g, err := graph.FromAdjacency(raw)
	if err != nil {
		t.Fatal(err)
	}
	raw[0][0] = 0
	if got := g.Out(0); !reflect.DeepEqual(got, []int{1, 1, 0}) {
		t.Errorf("Out(0) = %v; want [1 1 0] (duplicates and loops preserved)", got)
	}
}

// TestAddEdge covers endpoint validation, loops, and duplicates.
func TestAddEdge(t *testing.T) {
	g, _ := graph.New(2)
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(1, 1); err != nil { // self-loop
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 1); err != nil { // duplicate
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 2); !errors.Is(err, graph.ErrVertexOutOfRange) {
		t.Errorf("AddEdge(0,2): want ErrVertexOutOfRange, got %v", err)
	}
	if err := g.AddEdge(-1, 0); !errors.Is(err, graph.ErrVertexOutOfRange) {
		t.Errorf("AddEdge(-1,0): want ErrVertexOutOfRange, got %v", err)
	}
	if got := g.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount = %d; want 3", got)
	}
}

// TestReverse checks the direction flip on a small graph.
func TestReverse(t *testing.T) {
	// 0→1, 0→2, 1→0, 2→2
	g, err := graph.FromAdjacency([][]int{{1, 2}, {0}, {2}})
	if err != nil {
		t.Fatal(err)
	}
	rev := g.Reverse()
	want := [][]int{{1}, {0}, {0, 2}}
	if got := rev.Adjacency(); !reflect.DeepEqual(got, want) {
		t.Errorf("Reverse = %v; want %v", got, want)
	}
	// Receiver untouched.
	if got := g.Out(0); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("Reverse mutated its receiver: Out(0) = %v", got)
	}
}

// TestReverse_Involution: reversing twice restores each vertex's multiset
// of out-edges (order within a vertex is not part of the contract).
func TestReverse_Involution(t *testing.T) {
	g, err := graph.FromAdjacency([][]int{{1, 2, 2}, {0, 1}, {}, {0}})
	if err != nil {
		t.Fatal(err)
	}
	back := g.Reverse().Reverse()
	if back.Order() != g.Order() {
		t.Fatalf("Order = %d; want %d", back.Order(), g.Order())
	}
	for v := 0; v < g.Order(); v++ {
		a := append([]int(nil), g.Out(v)...)
		b := append([]int(nil), back.Out(v)...)
		sort.Ints(a)
		sort.Ints(b)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("vertex %d: out-edges %v; want %v", v, b, a)
		}
	}
}

// TestOut_OutOfRange: absent vertices have no out-edges, not a panic.
func TestOut_OutOfRange(t *testing.T) {
	g, _ := graph.New(1)
	if got := g.Out(5); got != nil {
		t.Errorf("Out(5) = %v; want nil", got)
	}
	if got := g.Out(-1); got != nil {
		t.Errorf("Out(-1) = %v; want nil", got)
	}
}

// TestVertexSet covers membership and sorted export.
func TestVertexSet(t *testing.T) {
	s := graph.NewVertexSet(3, 1, 3)
	s.Add(2)
	if !s.Has(1) || !s.Has(2) || !s.Has(3) || s.Has(0) {
		t.Errorf("membership wrong: %v", s)
	}
	if got, want := s.Sorted(), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted = %v; want %v", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d; want 3", s.Len())
	}
}
