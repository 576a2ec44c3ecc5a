package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/katalvlaran/conformity/bfs"
	"github.com/katalvlaran/conformity/builder"
	"github.com/katalvlaran/conformity/core"
)

func TestBFS_InvalidInput(t *testing.T) {
	if _, err := bfs.BFS(nil, "0"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: got %v", err)
	}
	g := fixture(t, nil, builder.Path(3))
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("unknown start: got %v", err)
	}
	if _, err := bfs.BFS(g, "0", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: got %v", err)
	}
}

func TestBFS_Depths(t *testing.T) {
	tests := []struct {
		name  string
		cons  builder.Constructor
		start string
		order []string
		depth map[string]int
	}{
		{
			name:  "lone",
			cons:  builder.Complete(1),
			start: "0",
			order: []string{"0"},
			depth: map[string]int{"0": 0},
		},
		{
			name:  "cycle",
			cons:  builder.Cycle(4),
			start: "0",
			order: []string{"0", "1", "3", "2"},
			depth: map[string]int{"0": 0, "1": 1, "3": 1, "2": 2},
		},
		{
			name:  "path from middle",
			cons:  builder.Path(5),
			start: "2",
			order: []string{"2", "1", "3", "0", "4"},
			depth: map[string]int{"0": 2, "1": 1, "2": 0, "3": 1, "4": 2},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := bfs.BFS(fixture(t, nil, tc.cons), tc.start)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(res.Order, tc.order) {
				t.Errorf("Order = %v; want %v", res.Order, tc.order)
			}
			if !reflect.DeepEqual(res.Depth, tc.depth) {
				t.Errorf("Depth = %v; want %v", res.Depth, tc.depth)
			}
		})
	}
}

func TestBFS_StaysInComponent(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("a", "b")
	g.AddEdge("x", "y")

	res, err := bfs.BFS(g, "y")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"y", "x"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if _, ok := res.Depth["a"]; ok {
		t.Error("vertex of another component reached")
	}
}

func TestBFS_MaxDepth(t *testing.T) {
	g := fixture(t, nil, builder.Path(4))
	for _, tc := range []struct {
		limit int
		want  []string
	}{
		{1, []string{"0", "1"}},
		{2, []string{"0", "1", "2"}},
		{0, []string{"0", "1", "2", "3"}},
		{99, []string{"0", "1", "2", "3"}},
	} {
		res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(tc.limit))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(res.Order, tc.want) {
			t.Errorf("MaxDepth(%d): Order = %v; want %v", tc.limit, res.Order, tc.want)
		}
	}
}

func TestBFS_FilterNeighbor(t *testing.T) {
	g := fixture(t, nil, builder.Cycle(4))
	// Hide 0-3 so the far side is reached the long way round.
	res, err := bfs.BFS(g, "0", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "0" && nbr == "3")
	}))
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Depth["3"]; got != 3 {
		t.Errorf("Depth[3] = %d; want 3", got)
	}
	path, _ := res.PathTo("3")
	if want := []string{"0", "1", "2", "3"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(3) = %v; want %v", path, want)
	}
}

func TestBFS_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	g.AddEdge("a", "a")
	g.AddEdge("a", "b")

	res, err := bfs.BFS(g, "a")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

func TestBFS_HookSequence(t *testing.T) {
	g := fixture(t, nil, builder.Path(3))

	var enq, deq, vis []string
	record := func(dst *[]string) func(string, int) {
		return func(id string, d int) { *dst = append(*dst, fmt.Sprintf("%s@%d", id, d)) }
	}
	onVisit := record(&vis)
	_, err := bfs.BFS(g, "0",
		bfs.WithOnEnqueue(record(&enq)),
		bfs.WithOnDequeue(record(&deq)),
		bfs.WithOnVisit(func(id string, d int) error { onVisit(id, d); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"0@0", "1@1", "2@2"}
	for name, got := range map[string][]string{"enqueue": enq, "dequeue": deq, "visit": vis} {
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s = %v; want %v", name, got, want)
		}
	}
}

func TestBFS_VisitErrorAborts(t *testing.T) {
	g := fixture(t, nil, builder.Path(5))
	stop := errors.New("stop")

	res, err := bfs.BFS(g, "0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "2" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("err = %v; want wrapped stop", err)
	}
	if want := []string{"0", "1", "2"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("partial Order = %v; want %v", res.Order, want)
	}
}

func TestBFS_PathTo(t *testing.T) {
	g := fixture(t, nil, builder.Grid(3, 3))
	res, err := bfs.BFS(g, "0,0")
	if err != nil {
		t.Fatal(err)
	}
	if path, _ := res.PathTo("0,0"); !reflect.DeepEqual(path, []string{"0,0"}) {
		t.Errorf("PathTo(start) = %v", path)
	}
	path, err := res.PathTo("2,2")
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 5 || path[0] != "0,0" || path[4] != "2,2" {
		t.Errorf("PathTo(2,2) = %v; want 5 hops from 0,0 to 2,2", path)
	}
	if _, err = res.PathTo("nowhere"); err == nil {
		t.Error("PathTo(unreached) returned no error")
	}
}

func TestBFS_Cancelled(t *testing.T) {
	g := fixture(t, nil, builder.Path(100))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v; want context.Canceled", err)
	}
}

func TestBFS_ConcurrentReaders(t *testing.T) {
	g := fixture(t, nil, builder.KarateClub())
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := bfs.BFS(g, "1")
			if err == nil && len(res.Order) != 34 {
				err = fmt.Errorf("reached %d vertices", len(res.Order))
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Error(err)
		}
	}
}

func TestBFS_Layers(t *testing.T) {
	g := fixture(t, nil, builder.Star(4))
	hub := builder.CenterVertexID
	g.AddEdge("3", "tail")

	res, err := bfs.BFS(g, "1")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"1"}, {hub}, {"2", "3"}, {"tail"}}
	if got := res.Layers(); !reflect.DeepEqual(got, want) {
		t.Errorf("Layers = %v; want %v", got, want)
	}
	if got := res.Eccentricity(); got != 3 {
		t.Errorf("Eccentricity = %d; want 3", got)
	}
	if got := (&bfs.BFSResult{}).Layers(); got != nil {
		t.Errorf("empty result Layers = %v; want nil", got)
	}
}

func TestComponents(t *testing.T) {
	if _, err := bfs.Components(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: got %v", err)
	}
	if ok, _ := bfs.IsConnected(core.NewGraph()); ok {
		t.Error("empty graph reported connected")
	}

	g := core.NewGraph()
	g.AddEdge("Y", "X")
	g.AddEdge("Q", "P")
	g.AddEdge("P", "R")
	g.AddVertex("Z")

	comps, err := bfs.Components(g)
	if err != nil {
		t.Fatal(err)
	}
	if want := [][]string{{"P", "Q", "R"}, {"X", "Y"}, {"Z"}}; !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v; want %v", comps, want)
	}
	if ok, _ := bfs.IsConnected(g); ok {
		t.Error("three components reported connected")
	}

	g.AddEdge("R", "X")
	g.AddEdge("Z", "Y")
	if ok, err := bfs.IsConnected(g); err != nil || !ok {
		t.Errorf("IsConnected = %v, %v; want true", ok, err)
	}
	if ok, _ := bfs.IsConnected(fixture(t, nil, builder.KarateClub())); !ok {
		t.Error("karate club reported disconnected")
	}
}
