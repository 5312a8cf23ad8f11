package pkg

const (
	// INF_WEIGHT marks a vertex that has no finite distance from the source.
	INF_WEIGHT float64 = 1e15

	// DISTANCE_PRECISION is the number of decimals distance labels are rounded to.
	DISTANCE_PRECISION = 2
	// earth mean radius used by both geodesic and haversine weights
	EARTH_RADIUS_KM = 6371.0
)

const (
	DEBUG = false
)

// name of the "all destinations" option. the original dropdown showed it below the last city.
const ALL_DESTINATIONS = "all"

type CostFunctionType string

const (
	GEODESIC  CostFunctionType = "geodesic"
	HAVERSINE CostFunctionType = "haversine"
	EUCLIDEAN CostFunctionType = "euclidean"
)

type SearchStrategy string

const (
	NAIVE_SELECTION SearchStrategy = "naive"
	HEAP_SELECTION  SearchStrategy = "heap"
)
