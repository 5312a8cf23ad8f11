package datastructure

import (
	"math"

	"github.com/lintang-b-s/Flightx/pkg/geo"
)

type Index uint32

const (
	INVALID_VERTEX_ID Index = math.MaxUint32
)

// City. a vertex of the flight graph
type City struct {
	name string
	lat  float64
	lon  float64
	id   Index
}

func NewCity(name string, lat, lon float64, id Index) *City {
	return &City{
		name: name,
		lat:  lat,
		lon:  lon,
		id:   id,
	}
}

func (c *City) GetID() Index {
	return c.id
}

func (c *City) GetName() string {
	return c.name
}

func (c *City) GetLat() float64 {
	return c.lat
}

func (c *City) GetLon() float64 {
	return c.lon
}

func (c *City) GetCoordinate() geo.Coordinate {
	return geo.NewCoordinate(c.lat, c.lon)
}

// Graph. immutable directed flight graph.
// outgoing routes of vertex v are heads[firstOut[v]:firstOut[v+1]], edge weights are not stored.
type Graph struct {
	cities   []*City
	firstOut []Index
	heads    []Index
	sccs     []Index
	numSCCs  int
}

func newGraph(cities []*City, firstOut, heads []Index) *Graph {
	g := &Graph{
		cities:   cities,
		firstOut: firstOut,
		heads:    heads,
	}
	g.RunKosaraju()
	return g
}

func (g *Graph) NumberOfVertices() int {
	return len(g.cities)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.heads)
}

func (g *Graph) IsValidVertex(v Index) bool {
	return int(v) < len(g.cities)
}

func (g *Graph) GetCity(v Index) *City {
	return g.cities[v]
}

func (g *Graph) GetCities() []*City {
	cities := make([]*City, len(g.cities))
	copy(cities, g.cities)
	return cities
}

func (g *Graph) GetVertexCoordinates(v Index) (float64, float64) {
	c := g.cities[v]
	return c.lat, c.lon
}

func (g *Graph) GetOutDegree(v Index) Index {
	return g.firstOut[v+1] - g.firstOut[v]
}

// GetOutNeighbors. heads of the outgoing routes of v. callers must not modify the returned slice.
func (g *Graph) GetOutNeighbors(v Index) []Index {
	return g.heads[g.firstOut[v]:g.firstOut[v+1]]
}

func (g *Graph) ForOutEdgesOf(u Index, handle func(v Index)) {
	for e := g.firstOut[u]; e < g.firstOut[u+1]; e++ {
		handle(g.heads[e])
	}
}

// ForOutEdges. iterate every route of the graph as (tail, head)
func (g *Graph) ForOutEdges(handle func(tail, head Index)) {
	for u := Index(0); u < Index(len(g.cities)); u++ {
		for e := g.firstOut[u]; e < g.firstOut[u+1]; e++ {
			handle(u, g.heads[e])
		}
	}
}

func (g *Graph) HasEdge(u, v Index) bool {
	for _, head := range g.GetOutNeighbors(u) {
		if head == v {
			return true
		}
	}
	return false
}

func (g *Graph) GetSCCOfAVertex(v Index) Index {
	return g.sccs[v]
}

func (g *Graph) NumberOfSCCs() int {
	return g.numSCCs
}

func (g *Graph) setSCCs(sccs []Index, numSCCs int) {
	g.sccs = sccs
	g.numSCCs = numSCCs
}
