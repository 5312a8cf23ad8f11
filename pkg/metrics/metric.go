package metrics

import (
	"math"

	"github.com/lintang-b-s/Flightx/pkg/costfunction"
	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/util"
)

// Metric. evaluates route weights of a graph on demand through its cost function. nothing is precomputed,
// a weight is only ever asked for cities joined by a route.
type Metric struct {
	graph        *da.Graph
	costFunction costfunction.CostFunction
}

func NewMetric(graph *da.Graph, costFunction costfunction.CostFunction) *Metric {
	return &Metric{
		graph:        graph,
		costFunction: costFunction,
	}
}

func (met *Metric) GetWeight(u, v da.Index) float64 {
	return met.costFunction.GetWeight(met.graph.GetCity(u), met.graph.GetCity(v))
}

func (met *Metric) GetCostFunction() costfunction.CostFunction {
	return met.costFunction
}

// Validate. checks once that every route has a finite non-negative weight. Dijkstra is only correct on such weights.
func (met *Metric) Validate() error {
	var err error
	met.graph.ForOutEdges(func(tail, head da.Index) {
		if err != nil {
			return
		}
		w := met.GetWeight(tail, head)
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			err = util.WrapErrorf(nil, util.ErrInvalidArgument, "route %s -> %s has invalid weight %v",
				met.graph.GetCity(tail).GetName(), met.graph.GetCity(head).GetName(), w)
		}
	})
	return err
}
