package routing

import (
	"github.com/lintang-b-s/Flightx/pkg"
	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
	met "github.com/lintang-b-s/Flightx/pkg/metrics"
	"github.com/lintang-b-s/Flightx/pkg/util"
	"go.uber.org/zap"
)

// RoutingEngine. answers shortest path queries on one immutable graph. safe for concurrent use,
// every query gets its own router and its own tables.
type RoutingEngine struct {
	graph    *da.Graph
	metrics  *met.Metric
	strategy pkg.SearchStrategy
	logger   *zap.Logger
}

func NewRoutingEngine(graph *da.Graph, metrics *met.Metric, strategy pkg.SearchStrategy,
	logger *zap.Logger) (*RoutingEngine, error) {
	switch strategy {
	case pkg.NAIVE_SELECTION, pkg.HEAP_SELECTION:
	case "":
		strategy = pkg.NAIVE_SELECTION
	default:
		return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "unknown search strategy %q", strategy)
	}

	return &RoutingEngine{
		graph:    graph,
		metrics:  metrics,
		strategy: strategy,
		logger:   logger,
	}, nil
}

func (re *RoutingEngine) GetGraph() *da.Graph {
	return re.graph
}

func (re *RoutingEngine) GetMetrics() *met.Metric {
	return re.metrics
}

func (re *RoutingEngine) GetStrategy() pkg.SearchStrategy {
	return re.strategy
}

func (re *RoutingEngine) NewRouter() Router {
	if re.strategy == pkg.HEAP_SELECTION {
		return NewHeapDijkstra(re.graph, re.metrics)
	}
	return NewDijkstra(re.graph, re.metrics)
}

func (re *RoutingEngine) ShortestPaths(source da.Index) (*ShortestPathTree, error) {
	return re.NewRouter().ShortestPaths(source)
}

type QueryResult struct {
	source  da.Index
	tree    *ShortestPathTree
	results []PathResult
}

func (qr *QueryResult) GetSource() da.Index {
	return qr.source
}

func (qr *QueryResult) GetTree() *ShortestPathTree {
	return qr.tree
}

// GetResults. one result per requested destination, sorted by destination id
func (qr *QueryResult) GetResults() []PathResult {
	return qr.results
}

// Query. shortest paths from source, reconstructed for the selected destinations. destinations are checked
// before the search runs so an invalid query never pays for it.
func (re *RoutingEngine) Query(source da.Index, destinations DestinationSelector) (*QueryResult, error) {
	if _, err := destinations.resolve(re.graph.NumberOfVertices()); err != nil {
		return nil, err
	}

	tree, err := re.ShortestPaths(source)
	if err != nil {
		return nil, err
	}

	results, err := ReconstructOrdered(tree, destinations)
	if err != nil {
		return nil, err
	}

	reachable := 0
	for _, r := range results {
		if r.IsReachable() {
			reachable++
		}
	}
	re.logger.Debug("shortest path query",
		zap.Uint32("source", uint32(source)),
		zap.Bool("all_destinations", destinations.IsAll()),
		zap.Int("destinations", len(results)),
		zap.Int("reachable", reachable),
		zap.String("strategy", string(re.strategy)))

	return &QueryResult{
		source:  source,
		tree:    tree,
		results: results,
	}, nil
}
