package usecases

import (
	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/engine/routing"
)

type RoutingEngine interface {
	GetGraph() *datastructure.Graph
	Query(source datastructure.Index, destinations routing.DestinationSelector) (*routing.QueryResult, error)
}

type SpatialIndex interface {
	NearestCity(graph *datastructure.Graph, qLat, qLon, radius float64) (datastructure.Index, float64, bool)
}
