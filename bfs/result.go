package bfs

import "fmt"

// BFSResult is the outcome of one walk. Order lists reached vertices in
// visit sequence, which is non-decreasing in Depth. Parent maps every
// reached vertex except the start to its predecessor on a shortest path.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Eccentricity returns the largest depth reached, 0 for a lone start vertex.
func (r *BFSResult) Eccentricity() int {
	if len(r.Order) == 0 {
		return 0
	}

	return r.Depth[r.Order[len(r.Order)-1]]
}

// Layers groups Order by hop distance: Layers()[d] holds the vertices at
// distance d in visit order, and Layers()[0] is the start alone.
//
// Complexity: O(V).
func (r *BFSResult) Layers() [][]string {
	if len(r.Order) == 0 {
		return nil
	}
	layers := make([][]string, r.Eccentricity()+1)
	var d int
	for _, id := range r.Order {
		d = r.Depth[id]
		layers[d] = append(layers[d], id)
	}

	return layers
}

// PathTo walks Parent links back from dest and returns the start→dest path.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := make([]string, d+1)
	cur := dest
	for i := d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
