package routing

import (
	"sort"

	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/util"
)

// DestinationSelector. either every city of the graph or an explicit set of cities
type DestinationSelector struct {
	all bool
	ids []da.Index
}

func AllDestinations() DestinationSelector {
	return DestinationSelector{all: true}
}

func Destinations(ids ...da.Index) DestinationSelector {
	return DestinationSelector{ids: removeDuplicates(ids)}
}

func (ds DestinationSelector) IsAll() bool {
	return ds.all
}

func (ds DestinationSelector) resolve(n int) ([]da.Index, error) {
	if ds.all {
		ids := make([]da.Index, n)
		for v := 0; v < n; v++ {
			ids[v] = da.Index(v)
		}
		return ids, nil
	}

	for _, id := range ds.ids {
		if int(id) >= n {
			return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "destination %d is not a city of the graph", id)
		}
	}
	ids := make([]da.Index, len(ds.ids))
	copy(ids, ds.ids)
	return ids, nil
}

// PathEdge. one route of a shortest path, walked backwards: from Vertex to its Parent
type PathEdge struct {
	Vertex da.Index
	Parent da.Index
}

type PathResult struct {
	destination da.Index
	reachable   bool
	distance    float64
	edges       []PathEdge
}

func (pr PathResult) GetDestination() da.Index {
	return pr.destination
}

func (pr PathResult) IsReachable() bool {
	return pr.reachable
}

// GetDistance. total weight of the path, ok is false when the destination is unreachable
func (pr PathResult) GetDistance() (float64, bool) {
	if !pr.reachable {
		return 0, false
	}
	return pr.distance, true
}

// GetEdges. routes from the destination back to the source, empty for the source itself and unreachable cities
func (pr PathResult) GetEdges() []PathEdge {
	return pr.edges
}

// GetVertices. cities on the path from the destination back to the source, both included
func (pr PathResult) GetVertices() []da.Index {
	if !pr.reachable {
		return []da.Index{}
	}
	vertices := make([]da.Index, 0, len(pr.edges)+1)
	vertices = append(vertices, pr.destination)
	for _, e := range pr.edges {
		vertices = append(vertices, e.Parent)
	}
	return vertices
}

// Reconstruct. turns the tables of a shortest path tree into one PathResult per requested destination.
// an out of range destination fails the whole call.
func Reconstruct(tree *ShortestPathTree, destinations DestinationSelector) (map[da.Index]PathResult, error) {
	ids, err := destinations.resolve(tree.NumberOfVertices())
	if err != nil {
		return nil, err
	}

	results := make(map[da.Index]PathResult, len(ids))
	for _, d := range ids {
		pr, err := unpackPath(tree, d)
		if err != nil {
			return nil, err
		}
		results[d] = pr
	}
	return results, nil
}

// ReconstructOrdered. same as Reconstruct, sorted by destination id
func ReconstructOrdered(tree *ShortestPathTree, destinations DestinationSelector) ([]PathResult, error) {
	results, err := Reconstruct(tree, destinations)
	if err != nil {
		return nil, err
	}
	ordered := make([]PathResult, 0, len(results))
	for _, pr := range results {
		ordered = append(ordered, pr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].destination < ordered[j].destination
	})
	return ordered, nil
}

func unpackPath(tree *ShortestPathTree, d da.Index) (PathResult, error) {
	if !tree.IsReachable(d) {
		return PathResult{destination: d, edges: []PathEdge{}}, nil
	}

	edges := make([]PathEdge, 0, 4)
	cur := d
	for tree.GetParent(cur) != da.INVALID_VERTEX_ID {
		if len(edges) >= tree.NumberOfVertices() {
			return PathResult{}, util.WrapErrorf(ErrCorruptedTree, util.ErrInternalServerError,
				"walk from %d does not reach source %d", d, tree.GetSource())
		}
		parent := tree.GetParent(cur)
		edges = append(edges, PathEdge{Vertex: cur, Parent: parent})
		cur = parent
	}

	if cur != tree.GetSource() {
		return PathResult{}, util.WrapErrorf(ErrCorruptedTree, util.ErrInternalServerError,
			"walk from %d ends at %d instead of source %d", d, cur, tree.GetSource())
	}

	return PathResult{
		destination: d,
		reachable:   true,
		distance:    tree.GetDistance(d),
		edges:       edges,
	}, nil
}
