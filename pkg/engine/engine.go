package engine

import (
	"github.com/lintang-b-s/Flightx/pkg"
	"github.com/lintang-b-s/Flightx/pkg/costfunction"
	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/engine/routing"
	"github.com/lintang-b-s/Flightx/pkg/metrics"
	"go.uber.org/zap"
)

type Engine struct {
	routingEngine *routing.RoutingEngine
}

func (e *Engine) GetRoutingEngine() *routing.RoutingEngine {
	return e.routingEngine
}

func NewEngine(graphFilePath string, costFunctionType pkg.CostFunctionType, strategy pkg.SearchStrategy,
	logger *zap.Logger) (*Engine, error) {

	logger.Info("Starting flight shortest path engine...")

	logger.Info("Reading graph from ", zap.String("graphFilePath", graphFilePath))
	graph, err := datastructure.ReadGraph(graphFilePath)
	if err != nil {
		return nil, err
	}

	return NewEngineDirect(graph, costFunctionType, strategy, logger)
}

// NewEngineDirect. engine over an already built graph. every route weight is validated before the engine is returned.
func NewEngineDirect(graph *datastructure.Graph, costFunctionType pkg.CostFunctionType, strategy pkg.SearchStrategy,
	logger *zap.Logger) (*Engine, error) {
	costFunction, err := costfunction.New(costFunctionType)
	if err != nil {
		return nil, err
	}

	metric := metrics.NewMetric(graph, costFunction)
	if err := metric.Validate(); err != nil {
		return nil, err
	}

	routingEngine, err := routing.NewRoutingEngine(graph, metric, strategy, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Flight graph loaded",
		zap.Int("cities", graph.NumberOfVertices()),
		zap.Int("routes", graph.NumberOfEdges()),
		zap.Int("strongly_connected_components", graph.NumberOfSCCs()),
		zap.String("cost_function", string(costFunctionType)),
		zap.String("strategy", string(routingEngine.GetStrategy())))

	return &Engine{
		routingEngine: routingEngine,
	}, nil
}
