package spatialindex

import (
	"math"

	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree. city locations indexed by their coordinate, used to snap a map click to the nearest city
type Rtree struct {
	tr *rtree.RTreeG[datastructure.Index]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Index]
	return &Rtree{
		tr: &tr,
	}
}

// Build. one point entry per city
func (rt *Rtree) Build(graph *datastructure.Graph, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	for v := datastructure.Index(0); v < datastructure.Index(graph.NumberOfVertices()); v++ {
		lat, lon := graph.GetVertexCoordinates(v)
		rt.tr.Insert([2]float64{lon, lat}, [2]float64{lon, lat}, v)
	}
	log.Info("R-tree spatial index built.", zap.Int("cities", rt.tr.Len()))
}

// SearchWithinRadius search for all cities inside the bounding box of the circle with radius (in km) around (qLat, qLon)
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []datastructure.Index {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius*math.Sqrt2)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius*math.Sqrt2)

	results := make([]datastructure.Index, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data datastructure.Index) bool {
			results = append(results, data)
			return true
		})
	return results
}

// NearestCity. closest city by haversine distance within radius km of (qLat, qLon)
func (rt *Rtree) NearestCity(graph *datastructure.Graph, qLat, qLon, radius float64) (datastructure.Index, float64, bool) {
	best := datastructure.INVALID_VERTEX_ID
	bestDist := math.MaxFloat64
	for _, v := range rt.SearchWithinRadius(qLat, qLon, radius) {
		lat, lon := graph.GetVertexCoordinates(v)
		dist := geo.CalculateHaversineDistance(qLat, qLon, lat, lon)
		if dist <= radius && (dist < bestDist || (dist == bestDist && v < best)) {
			best = v
			bestDist = dist
		}
	}
	if best == datastructure.INVALID_VERTEX_ID {
		return best, 0, false
	}
	return best, bestDist, true
}
