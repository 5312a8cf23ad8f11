package routing

import (
	"github.com/lintang-b-s/Flightx/pkg"
	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
)

// ShortestPathTree. distance and parent tables of one single-source run, indexed by vertex id.
// unreachable vertices keep pkg.INF_WEIGHT and have no parent, same as the source.
type ShortestPathTree struct {
	source da.Index
	dist   []float64
	parent []da.Index
}

func newShortestPathTree(source da.Index, n int) *ShortestPathTree {
	dist := make([]float64, n)
	parent := make([]da.Index, n)
	for v := 0; v < n; v++ {
		dist[v] = pkg.INF_WEIGHT
		parent[v] = da.INVALID_VERTEX_ID
	}
	dist[source] = 0
	return &ShortestPathTree{
		source: source,
		dist:   dist,
		parent: parent,
	}
}

func (t *ShortestPathTree) GetSource() da.Index {
	return t.source
}

func (t *ShortestPathTree) NumberOfVertices() int {
	return len(t.dist)
}

func (t *ShortestPathTree) GetDistance(v da.Index) float64 {
	return t.dist[v]
}

// GetParent. previous vertex on the shortest path to v, da.INVALID_VERTEX_ID for the source and unreachable vertices
func (t *ShortestPathTree) GetParent(v da.Index) da.Index {
	return t.parent[v]
}

func (t *ShortestPathTree) IsReachable(v da.Index) bool {
	return t.dist[v] < pkg.INF_WEIGHT
}

func (t *ShortestPathTree) Distances() []float64 {
	dist := make([]float64, len(t.dist))
	copy(dist, t.dist)
	return dist
}

func (t *ShortestPathTree) Parents() []da.Index {
	parent := make([]da.Index, len(t.parent))
	copy(parent, t.parent)
	return parent
}
