package graph_test

import (
	"cmp"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/bookgraph/graph"
)

// buildSquare returns the ordered cycle A–B–C–D–A.
func buildSquare() *graph.Undirected[string] {
	g := graph.New(graph.WithOrder(cmp.Compare[string]))
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "D")
	_ = g.AddEdge("D", "A")
	return g
}

// TestBFS_CycleAndDepths covers layering on a square.
func TestBFS_CycleAndDepths(t *testing.T) {
	res, err := buildSquare().BFS("A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for v, want := range map[string]int{"A": 0, "B": 1, "D": 1, "C": 2} {
		if got, _ := res.Depth.Get(v); got != want {
			t.Errorf("Depth[%s] = %d; want %d", v, got, want)
		}
	}
	if _, ok := res.Parent.Get("A"); ok {
		t.Error("start vertex must have no parent")
	}
	path, ok := res.PathTo("C")
	if !ok || !reflect.DeepEqual(path, []string{"A", "B", "C"}) {
		t.Errorf("PathTo(C) = %v, %v; want [A B C], true", path, ok)
	}
}

// TestBFS_MaxDepth verifies the depth limit.
func TestBFS_MaxDepth(t *testing.T) {
	res, _ := buildSquare().BFS("A", graph.WithMaxDepth[string](1))
	if want := []string{"A", "B", "D"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if _, ok := res.PathTo("C"); ok {
		t.Error("C lies beyond depth 1")
	}
}

// TestBFS_StopAt verifies that the walk ends once the target is dequeued.
func TestBFS_StopAt(t *testing.T) {
	res, _ := buildSquare().BFS("A", graph.WithStopAt("B"))
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := buildSquare().BFS("A", graph.WithContext[string](ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestDFS_Order checks pre-order discovery following sorted neighbors.
func TestDFS_Order(t *testing.T) {
	g := buildSquare()
	_ = g.AddEdge("B", "E")
	res, err := g.DFS("A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C", "D", "E"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if p, _ := res.Parent.Get("D"); p != "C" {
		t.Errorf("Parent[D] = %q; want C", p)
	}
	if d, _ := res.Depth.Get("D"); d != 3 {
		t.Errorf("Depth[D] = %d; want 3", d)
	}
	if !reflect.DeepEqual(res.Roots, []string{"A"}) {
		t.Errorf("Roots = %v; want [A]", res.Roots)
	}
}

func TestDFS_FullTraversal(t *testing.T) {
	g := buildSquare()
	_ = g.AddEdge("X", "Y")
	g.AddVertex("Q")

	res, err := g.DFS("", graph.WithFullTraversal[string]())
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "Q", "X"}; !reflect.DeepEqual(res.Roots, want) {
		t.Errorf("Roots = %v; want %v", res.Roots, want)
	}
	if len(res.Order) != g.VertexCount() {
		t.Errorf("visited %d of %d vertices", len(res.Order), g.VertexCount())
	}
}

func TestDFS_MaxDepthAndStop(t *testing.T) {
	g := buildSquare()
	res, _ := g.DFS("A", graph.WithMaxDepth[string](1))
	if want := []string{"A", "B", "D"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	res, _ = g.DFS("A", graph.WithStopAt("C"))
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestComponents_Ordered checks deterministic component listing.
func TestComponents_Ordered(t *testing.T) {
	g := graph.New(graph.WithOrder(cmp.Compare[string]))
	_ = g.AddEdge("C", "B")
	_ = g.AddEdge("B", "A")
	g.AddVertex("D")
	got := g.ConnectedComponents()
	want := [][]string{{"A", "B", "C"}, {"D"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ConnectedComponents() = %v; want %v", got, want)
	}
}
