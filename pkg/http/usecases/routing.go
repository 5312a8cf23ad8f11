package usecases

import (
	"runtime"

	"github.com/lintang-b-s/Flightx/pkg/concurrent"
	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/engine/routing"
	"github.com/lintang-b-s/Flightx/pkg/guidance"
	"github.com/lintang-b-s/Flightx/pkg/metrics"
	"github.com/lintang-b-s/Flightx/pkg/util"
	"go.uber.org/zap"
)

type GraphSummary struct {
	Cities                      int
	Routes                      int
	StronglyConnectedComponents int
}

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	metric       *metrics.Metric
	spatialIndex SpatialIndex
	searchRadius float64
	numWorkers   int
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, metric *metrics.Metric, spatialIndex SpatialIndex,
	searchRadius float64) *RoutingService {
	return &RoutingService{
		log:          log,
		engine:       engine,
		metric:       metric,
		spatialIndex: spatialIndex,
		searchRadius: searchRadius,
		numWorkers:   runtime.NumCPU(),
	}
}

// Cities. every city of the graph ordered by id
func (rs *RoutingService) Cities() []*datastructure.City {
	return rs.engine.GetGraph().GetCities()
}

func (rs *RoutingService) NumberOfCities() int {
	return rs.engine.GetGraph().NumberOfVertices()
}

// ComputeRoutes. shortest paths from origin to the selected destinations, one layer per destination
func (rs *RoutingService) ComputeRoutes(origin datastructure.Index,
	destinations routing.DestinationSelector) (*Route, error) {
	qr, err := rs.engine.Query(origin, destinations)
	if err != nil {
		return nil, err
	}

	graph := rs.engine.GetGraph()
	renderer := layerRenderer{graph: graph, itinerary: guidance.NewItineraryBuilder(graph, rs.metric)}
	layers := concurrent.Map(rs.numWorkers, qr.GetResults(), renderer.render)

	return &Route{
		Source: origin,
		Name:   graph.GetCity(origin).GetName(),
		Layers: layers,
	}, nil
}

// ComputeRoutesByCoords. snaps both points to the nearest city within the search radius. without a destination
// point every city is a destination.
func (rs *RoutingService) ComputeRoutesByCoords(origLat, origLon float64, dstLat, dstLon *float64) (*Route, error) {
	graph := rs.engine.GetGraph()

	origin, dist, ok := rs.spatialIndex.NearestCity(graph, origLat, origLon, rs.searchRadius)
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "no city within %.1f km of %f,%f",
			rs.searchRadius, origLat, origLon)
	}
	rs.log.Debug("snapped origin", zap.Uint32("city", uint32(origin)), zap.Float64("distance_km", dist))

	destinations := routing.AllDestinations()
	if dstLat != nil && dstLon != nil {
		dst, dist, ok := rs.spatialIndex.NearestCity(graph, *dstLat, *dstLon, rs.searchRadius)
		if !ok {
			return nil, util.WrapErrorf(nil, util.ErrNotFound, "no city within %.1f km of %f,%f",
				rs.searchRadius, *dstLat, *dstLon)
		}
		rs.log.Debug("snapped destination", zap.Uint32("city", uint32(dst)), zap.Float64("distance_km", dist))
		destinations = routing.Destinations(dst)
	}

	return rs.ComputeRoutes(origin, destinations)
}

func (rs *RoutingService) GraphSummary() GraphSummary {
	graph := rs.engine.GetGraph()
	return GraphSummary{
		Cities:                      graph.NumberOfVertices(),
		Routes:                      graph.NumberOfEdges(),
		StronglyConnectedComponents: graph.NumberOfSCCs(),
	}
}
