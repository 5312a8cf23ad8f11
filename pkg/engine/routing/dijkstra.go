package routing

import (
	"github.com/lintang-b-s/Flightx/pkg"
	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
)

// Dijkstra. single-source dijkstra that selects the next vertex by scanning every unvisited vertex, O(V^2).
// fine for flight graphs of a few dozen cities.
type Dijkstra struct {
	graph    *da.Graph
	metric   Metric
	observer SearchObserver

	numSettledNodes int
}

func NewDijkstra(graph *da.Graph, metric Metric) *Dijkstra {
	return &Dijkstra{
		graph:    graph,
		metric:   metric,
		observer: noopObserver{},
	}
}

func (us *Dijkstra) SetObserver(observer SearchObserver) {
	us.observer = observer
}

func (us *Dijkstra) GetNumSettledNodes() int {
	return us.numSettledNodes
}

// ShortestPaths. single-source shortest paths, from s to all other vertices
func (us *Dijkstra) ShortestPaths(s da.Index) (*ShortestPathTree, error) {
	if err := validateQuery(us.graph, s); err != nil {
		return nil, err
	}

	n := us.graph.NumberOfVertices()
	tree := newShortestPathTree(s, n)
	visited := make([]bool, n)
	us.numSettledNodes = 0

	for round := 0; round < n; round++ {
		uId := selectMinUnvisited(tree.dist, visited)
		if uId == da.INVALID_VERTEX_ID {
			// every vertex left is unreachable from s
			break
		}

		visited[uId] = true
		us.numSettledNodes++
		us.observer.OnSettle(uId, tree.dist[uId])

		us.graph.ForOutEdgesOf(uId, func(vId da.Index) {
			if visited[vId] {
				return
			}

			newDist := tree.dist[uId] + us.metric.GetWeight(uId, vId)
			if newDist >= pkg.INF_WEIGHT {
				return
			}

			if newDist < tree.dist[vId] {
				tree.dist[vId] = newDist
				tree.parent[vId] = uId
				us.observer.OnRelax(uId, vId, newDist)
			}
		})
	}

	return tree, nil
}

// selectMinUnvisited. unvisited vertex with the smallest finite tentative distance.
// on ties the lowest index wins, callers must not rely on that.
func selectMinUnvisited(dist []float64, visited []bool) da.Index {
	minId := da.INVALID_VERTEX_ID
	minDist := pkg.INF_WEIGHT
	for v := range dist {
		if !visited[v] && dist[v] < minDist {
			minDist = dist[v]
			minId = da.Index(v)
		}
	}
	return minId
}
