// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conformity/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.NeighborIDs("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReadersAndAttributes mixes attribute writes with neighbor and attribute reads.
func TestConcurrentReadersAndAttributes(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		_, _ = g.AddEdge("hub", fmt.Sprintf("L%d", i))
	}

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.SetAttribute(fmt.Sprintf("L%d", id%50), "round", fmt.Sprint(id))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = g.NeighborIDs("hub")
			_, _ = g.Attribute("L1", "round")
			_ = g.Clone()
		}()
	}
	wg.Wait()
}
