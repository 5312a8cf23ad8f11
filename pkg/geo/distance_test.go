package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceFunctions(t *testing.T) {
	testCases := []struct {
		name           string
		latOne, lonOne float64
		latTwo, lonTwo float64
		wantKm         float64
		tolerance      float64
	}{
		{
			name:   "one degree along the equator",
			latOne: 0, lonOne: 0,
			latTwo: 0, lonTwo: 1,
			wantKm:    111.195,
			tolerance: 0.01,
		},
		{
			name:   "bogota to medellin",
			latOne: 4.60971, lonOne: -74.08175,
			latTwo: 6.25184, lonTwo: -75.56359,
			wantKm:    246.0,
			tolerance: 2,
		},
		{
			name:   "same point",
			latOne: 10.39972, lonOne: -75.51444,
			latTwo: 10.39972, lonTwo: -75.51444,
			wantKm:    0,
			tolerance: 1e-9,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			hav := CalculateHaversineDistance(tt.latOne, tt.lonOne, tt.latTwo, tt.lonTwo)
			geodesic := CalculateGeodesicDistance(tt.latOne, tt.lonOne, tt.latTwo, tt.lonTwo)

			assert.InDelta(t, tt.wantKm, hav, tt.tolerance)
			assert.InDelta(t, tt.wantKm, geodesic, tt.tolerance)
			assert.InDelta(t, hav, geodesic, 1e-6)

			// symmetric
			assert.InDelta(t, geodesic, CalculateGeodesicDistance(tt.latTwo, tt.lonTwo, tt.latOne, tt.lonOne), 1e-9)
		})
	}
}

func TestEuclideanDistance(t *testing.T) {
	assert.InDelta(t, 1.0, CalculateEuclideanDistance(0, 0, 0, 1), 1e-12)
	assert.InDelta(t, 5.0, CalculateEuclideanDistance(0, 0, 3, 4), 1e-12)
}

func TestCoordinateValid(t *testing.T) {
	assert.True(t, NewCoordinate(4.6, -74.08).Valid())
	assert.False(t, NewCoordinate(91, 0).Valid())
	assert.False(t, NewCoordinate(0, -181).Valid())
	assert.False(t, NewCoordinate(math.NaN(), 0).Valid())
}

func TestMidPoint(t *testing.T) {
	mid := MidPoint(NewCoordinate(0, 0), NewCoordinate(0, 2))
	assert.InDelta(t, 0.0, mid.Lat, 1e-9)
	assert.InDelta(t, 1.0, mid.Lon, 1e-9)
}

func TestBearingTo(t *testing.T) {
	assert.InDelta(t, 90.0, BearingTo(0, 0, 0, 1), 1e-9)
	assert.InDelta(t, 0.0, BearingTo(0, 0, 1, 0), 1e-9)
	assert.InDelta(t, 270.0, BearingTo(0, 1, 0, 0), 1e-9)
}

func TestPolyline(t *testing.T) {
	path := []Coordinate{
		NewCoordinate(38.5, -120.2),
		NewCoordinate(40.7, -120.95),
		NewCoordinate(43.252, -126.453),
	}

	encoded := PolylineFromCoords(path)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", encoded)

	decoded, err := CoordsFromPolyline(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, len(path))
	for i := range path {
		assert.InDelta(t, path[i].Lat, decoded[i].Lat, 1e-5)
		assert.InDelta(t, path[i].Lon, decoded[i].Lon, 1e-5)
	}
}
