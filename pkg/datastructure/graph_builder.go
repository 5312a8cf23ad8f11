package datastructure

import (
	"errors"

	"github.com/lintang-b-s/Flightx/pkg/geo"
	"github.com/lintang-b-s/Flightx/pkg/util"
)

var (
	ErrBuilderFinalized = errors.New("graph builder already finalized")
	ErrCitiesSealed     = errors.New("cities can not be added after the first route")
)

type routeKey struct {
	from, to Index
}

// GraphBuilder. two-phase construction of a Graph: every city first, then the routes between them.
// routes are resolved by index, so all cities must exist before the first AddRoute.
type GraphBuilder struct {
	cities    []*City
	nameToId  map[string]Index
	adjList   [][]Index
	seen      map[routeKey]struct{}
	sealed    bool
	finalized bool
}

func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{
		cities:   make([]*City, 0, 64),
		nameToId: make(map[string]Index),
		seen:     make(map[routeKey]struct{}),
	}
}

// AddCity. registers a city and returns its index. indices are assigned in insertion order.
func (b *GraphBuilder) AddCity(name string, lat, lon float64) (Index, error) {
	if b.finalized {
		return INVALID_VERTEX_ID, ErrBuilderFinalized
	}
	if b.sealed {
		return INVALID_VERTEX_ID, ErrCitiesSealed
	}
	if name == "" {
		return INVALID_VERTEX_ID, util.WrapErrorf(nil, util.ErrInvalidArgument, "city name must not be empty")
	}
	if _, ok := b.nameToId[name]; ok {
		return INVALID_VERTEX_ID, util.WrapErrorf(nil, util.ErrInvalidArgument, "duplicate city %q", name)
	}
	if !geo.NewCoordinate(lat, lon).Valid() {
		return INVALID_VERTEX_ID, util.WrapErrorf(nil, util.ErrInvalidArgument,
			"invalid coordinate (%v, %v) for city %q", lat, lon, name)
	}

	id := Index(len(b.cities))
	b.cities = append(b.cities, NewCity(name, lat, lon, id))
	b.nameToId[name] = id
	return id, nil
}

// GetCityId. index of a city added with exactly this name
func (b *GraphBuilder) GetCityId(name string) (Index, bool) {
	id, ok := b.nameToId[name]
	return id, ok
}

func (b *GraphBuilder) GetCityName(id Index) string {
	return b.cities[id].name
}

func (b *GraphBuilder) NumberOfCities() int {
	return len(b.cities)
}

// AddRoute. adds the directed route from -> to. self loops and repeated routes are dropped and reported as not added.
func (b *GraphBuilder) AddRoute(from, to Index) (bool, error) {
	if b.finalized {
		return false, ErrBuilderFinalized
	}
	if int(from) >= len(b.cities) || int(to) >= len(b.cities) {
		return false, util.WrapErrorf(nil, util.ErrInvalidArgument,
			"route %d -> %d references a city outside the graph", from, to)
	}
	if !b.sealed {
		b.sealed = true
		b.adjList = make([][]Index, len(b.cities))
	}
	if from == to {
		return false, nil
	}
	key := routeKey{from: from, to: to}
	if _, ok := b.seen[key]; ok {
		return false, nil
	}
	b.seen[key] = struct{}{}
	b.adjList[from] = append(b.adjList[from], to)
	return true, nil
}

// Build. flattens the adjacency into an immutable Graph. the builder can not be used afterwards.
func (b *GraphBuilder) Build() (*Graph, error) {
	if b.finalized {
		return nil, ErrBuilderFinalized
	}
	if len(b.cities) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "graph has no cities")
	}
	b.finalized = true

	n := len(b.cities)
	firstOut := make([]Index, n+1)
	heads := make([]Index, 0, len(b.seen))
	for v := 0; v < n; v++ {
		firstOut[v] = Index(len(heads))
		if b.adjList != nil {
			heads = append(heads, b.adjList[v]...)
		}
	}
	firstOut[n] = Index(len(heads))

	g := newGraph(b.cities, firstOut, heads)
	b.cities, b.adjList, b.seen, b.nameToId = nil, nil, nil, nil
	return g, nil
}
