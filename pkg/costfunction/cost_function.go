package costfunction

import (
	"github.com/lintang-b-s/Flightx/pkg"
	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/geo"
	"github.com/lintang-b-s/Flightx/pkg/util"
)

// CostFunction. weight of the route between two cities, derived from their coordinates only.
// implementations must be symmetric, deterministic and return a finite non-negative value.
type CostFunction interface {
	GetWeight(u, v *datastructure.City) float64
}

func New(costFunctionType pkg.CostFunctionType) (CostFunction, error) {
	switch costFunctionType {
	case pkg.GEODESIC, "":
		return NewGeodesicCostFunction(), nil
	case pkg.HAVERSINE:
		return NewHaversineCostFunction(), nil
	case pkg.EUCLIDEAN:
		return NewEuclideanCostFunction(), nil
	default:
		return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "unknown cost function %q", costFunctionType)
	}
}

// GeodesicCostFunction. great circle distance in km on the s2 sphere
type GeodesicCostFunction struct{}

func NewGeodesicCostFunction() GeodesicCostFunction {
	return GeodesicCostFunction{}
}

func (GeodesicCostFunction) GetWeight(u, v *datastructure.City) float64 {
	return geo.CalculateGeodesicDistance(u.GetLat(), u.GetLon(), v.GetLat(), v.GetLon())
}

type HaversineCostFunction struct{}

func NewHaversineCostFunction() HaversineCostFunction {
	return HaversineCostFunction{}
}

func (HaversineCostFunction) GetWeight(u, v *datastructure.City) float64 {
	return geo.CalculateHaversineDistance(u.GetLat(), u.GetLon(), v.GetLat(), v.GetLon())
}

// EuclideanCostFunction. planar distance in degree units
type EuclideanCostFunction struct{}

func NewEuclideanCostFunction() EuclideanCostFunction {
	return EuclideanCostFunction{}
}

func (EuclideanCostFunction) GetWeight(u, v *datastructure.City) float64 {
	return geo.CalculateEuclideanDistance(u.GetLat(), u.GetLon(), v.GetLat(), v.GetLon())
}
