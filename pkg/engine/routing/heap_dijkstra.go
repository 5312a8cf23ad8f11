package routing

import (
	"github.com/lintang-b-s/Flightx/pkg"
	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
)

// HeapDijkstra. single-source dijkstra with a 4-ary min heap and decrease-key, O((V+E) log V).
// distances are identical to Dijkstra, the parent picked among equally short paths may differ.
type HeapDijkstra struct {
	graph    *da.Graph
	metric   Metric
	observer SearchObserver

	pq              *da.MinHeap[da.Index]
	numSettledNodes int
}

func NewHeapDijkstra(graph *da.Graph, metric Metric) *HeapDijkstra {
	return &HeapDijkstra{
		graph:    graph,
		metric:   metric,
		observer: noopObserver{},
		pq:       da.NewFourAryHeap[da.Index](),
	}
}

func (us *HeapDijkstra) SetObserver(observer SearchObserver) {
	us.observer = observer
}

func (us *HeapDijkstra) GetNumSettledNodes() int {
	return us.numSettledNodes
}

func (us *HeapDijkstra) ShortestPaths(s da.Index) (*ShortestPathTree, error) {
	if err := validateQuery(us.graph, s); err != nil {
		return nil, err
	}

	n := us.graph.NumberOfVertices()
	tree := newShortestPathTree(s, n)
	visited := make([]bool, n)
	heapNodes := make([]*da.PriorityQueueNode[da.Index], n)
	us.numSettledNodes = 0

	us.pq.Preallocate(n)
	heapNodes[s] = da.NewPriorityQueueNode(0, s)
	us.pq.Insert(heapNodes[s])

	for !us.pq.IsEmpty() {
		uNode, _ := us.pq.ExtractMin()
		uId := uNode.GetItem()

		visited[uId] = true
		us.numSettledNodes++
		us.observer.OnSettle(uId, tree.dist[uId])

		us.graph.ForOutEdgesOf(uId, func(vId da.Index) {
			if visited[vId] {
				return
			}

			newDist := tree.dist[uId] + us.metric.GetWeight(uId, vId)
			if newDist >= pkg.INF_WEIGHT || newDist >= tree.dist[vId] {
				return
			}

			tree.dist[vId] = newDist
			tree.parent[vId] = uId
			us.observer.OnRelax(uId, vId, newDist)

			if heapNodes[vId] == nil {
				heapNodes[vId] = da.NewPriorityQueueNode(newDist, vId)
				us.pq.Insert(heapNodes[vId])
			} else {
				// vId is labelled but not settled, so it is still in the heap
				_ = us.pq.DecreaseKey(heapNodes[vId], newDist)
			}
		})
	}

	return tree, nil
}
