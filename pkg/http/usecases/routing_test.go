package usecases

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/Flightx/pkg"
	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/engine"
	"github.com/lintang-b-s/Flightx/pkg/engine/routing"
	"github.com/lintang-b-s/Flightx/pkg/geo"
	"github.com/lintang-b-s/Flightx/pkg/guidance"
	"github.com/lintang-b-s/Flightx/pkg/spatialindex"
	"github.com/lintang-b-s/Flightx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	bogota datastructure.Index = iota
	medellin
	cartagena
	leticia
)

func newTestService(t *testing.T) *RoutingService {
	t.Helper()
	b := datastructure.NewGraphBuilder()
	for _, c := range []struct {
		name     string
		lat, lon float64
	}{
		{"Bogotá", 4.60971, -74.08175},
		{"Medellín", 6.25184, -75.56359},
		{"Cartagena", 10.39972, -75.51444},
		{"Leticia", -4.21528, -69.94056},
	} {
		_, err := b.AddCity(c.name, c.lat, c.lon)
		require.NoError(t, err)
	}
	for _, r := range [][2]datastructure.Index{{bogota, medellin}, {medellin, cartagena}, {cartagena, bogota}} {
		_, err := b.AddRoute(r[0], r[1])
		require.NoError(t, err)
	}
	g, err := b.Build()
	require.NoError(t, err)

	e, err := engine.NewEngineDirect(g, pkg.HAVERSINE, pkg.HEAP_SELECTION, zap.NewNop())
	require.NoError(t, err)

	rt := spatialindex.NewRtree()
	rt.Build(g, zap.NewNop())

	re := e.GetRoutingEngine()
	return NewRoutingService(zap.NewNop(), re, re.GetMetrics(), rt, 100)
}

func TestComputeRoutesAllDestinations(t *testing.T) {
	rs := newTestService(t)

	route, err := rs.ComputeRoutes(bogota, routing.AllDestinations())
	require.NoError(t, err)
	assert.Equal(t, "Bogotá", route.Name)
	require.Len(t, route.Layers, 4)
	for i, layer := range route.Layers {
		assert.Equal(t, datastructure.Index(i), layer.Destination)
	}

	source := route.Layers[bogota]
	assert.True(t, source.Reachable)
	assert.Equal(t, 0.0, source.Distance)
	assert.Len(t, source.Path, 1)
	assert.Empty(t, source.Itinerary)

	toCartagena := route.Layers[cartagena]
	assert.True(t, toCartagena.Reachable)
	require.Len(t, toCartagena.Path, 3)
	assert.Equal(t, geo.NewCoordinate(10.39972, -75.51444), toCartagena.Path[0])
	assert.Equal(t, geo.NewCoordinate(4.60971, -74.08175), toCartagena.Path[2])
	// two flights and the arrival
	require.Len(t, toCartagena.Itinerary, 3)
	assert.Equal(t, bogota, toCartagena.Itinerary[0].From)
	assert.Equal(t, medellin, toCartagena.Itinerary[0].To)
	assert.Equal(t, guidance.DEPART, toCartagena.Itinerary[0].CourseChange)
	assert.Equal(t, cartagena, toCartagena.Itinerary[1].To)
	assert.Equal(t, guidance.ARRIVE, toCartagena.Itinerary[2].CourseChange)
	assert.InDelta(t, toCartagena.Distance, toCartagena.Itinerary[2].CumulativeDistance, 0.011)

	want := geo.CalculateHaversineDistance(4.60971, -74.08175, 6.25184, -75.56359) +
		geo.CalculateHaversineDistance(6.25184, -75.56359, 10.39972, -75.51444)
	assert.InDelta(t, want, toCartagena.Distance, 0.005)
	assert.Contains(t, toCartagena.Label, "CARTAGENA")
	assert.Contains(t, toCartagena.Label, "Total distance")

	decoded, err := geo.CoordsFromPolyline(toCartagena.Polyline)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.InDelta(t, 6.25184, decoded[1].Lat, 1e-5)
	assert.InDelta(t, -75.56359, decoded[1].Lon, 1e-5)

	// label between medellin and cartagena
	assert.Greater(t, toCartagena.LabelPosition.Lat, 6.25184)
	assert.Less(t, toCartagena.LabelPosition.Lat, 10.39972)

	unreachable := route.Layers[leticia]
	assert.False(t, unreachable.Reachable)
	assert.Empty(t, unreachable.Path)
	assert.Empty(t, unreachable.Polyline)
	assert.Contains(t, unreachable.Label, "can not be reached")
}

func TestComputeRoutesErrors(t *testing.T) {
	rs := newTestService(t)

	_, err := rs.ComputeRoutes(10, routing.AllDestinations())
	assert.True(t, errors.Is(err, util.ErrInvalidArgument))

	_, err = rs.ComputeRoutes(bogota, routing.Destinations(leticia, 7))
	assert.True(t, errors.Is(err, util.ErrInvalidArgument))
}

func TestComputeRoutesByCoords(t *testing.T) {
	rs := newTestService(t)

	dstLat, dstLon := 10.3, -75.4
	route, err := rs.ComputeRoutesByCoords(6.2, -75.6, &dstLat, &dstLon)
	require.NoError(t, err)
	assert.Equal(t, medellin, route.Source)
	require.Len(t, route.Layers, 1)
	assert.Equal(t, cartagena, route.Layers[0].Destination)
	assert.True(t, route.Layers[0].Reachable)

	route, err = rs.ComputeRoutesByCoords(6.2, -75.6, nil, nil)
	require.NoError(t, err)
	assert.Len(t, route.Layers, 4)

	// san andres island, no city within 100 km
	_, err = rs.ComputeRoutesByCoords(12.58472, -81.70056, nil, nil)
	assert.True(t, errors.Is(err, util.ErrNotFound))

	farLat, farLon := 12.58472, -81.70056
	_, err = rs.ComputeRoutesByCoords(6.2, -75.6, &farLat, &farLon)
	assert.True(t, errors.Is(err, util.ErrNotFound))
}

func TestGraphSummary(t *testing.T) {
	rs := newTestService(t)
	assert.Equal(t, GraphSummary{Cities: 4, Routes: 3, StronglyConnectedComponents: 2}, rs.GraphSummary())
	assert.Equal(t, 4, rs.NumberOfCities())
	assert.Len(t, rs.Cities(), 4)
}
