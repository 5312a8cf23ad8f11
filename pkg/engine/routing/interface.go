package routing

import (
	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
)

// Metric. weight of the route u -> v. only asked for pairs joined by a route.
type Metric interface {
	GetWeight(u, v da.Index) float64
}

// Router. single-source shortest paths from s to every city of the graph
type Router interface {
	ShortestPaths(s da.Index) (*ShortestPathTree, error)
}

// SearchObserver. hooks called while a router runs.
// OnSettle when a vertex is selected and its distance becomes final, OnRelax when a tentative distance improves.
type SearchObserver interface {
	OnSettle(v da.Index, dist float64)
	OnRelax(u, v da.Index, dist float64)
}

type noopObserver struct{}

func (noopObserver) OnSettle(v da.Index, dist float64) {}

func (noopObserver) OnRelax(u, v da.Index, dist float64) {}
