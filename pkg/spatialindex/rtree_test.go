package spatialindex

import (
	"testing"

	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNearestCity(t *testing.T) {
	b := datastructure.NewGraphBuilder()
	_, err := b.AddCity("Bogotá", 4.60971, -74.08175)
	require.NoError(t, err)
	_, err = b.AddCity("Medellín", 6.25184, -75.56359)
	require.NoError(t, err)
	_, err = b.AddCity("Leticia", -4.21528, -69.94056)
	require.NoError(t, err)
	g, err := b.Build()
	require.NoError(t, err)

	rt := NewRtree()
	rt.Build(g, zap.NewNop())

	testCases := []struct {
		name     string
		lat, lon float64
		radius   float64
		want     datastructure.Index
		found    bool
	}{
		{name: "near bogota", lat: 4.65, lon: -74.1, radius: 50, want: 0, found: true},
		{name: "near medellin", lat: 6.2, lon: -75.6, radius: 50, want: 1, found: true},
		{name: "between, wide radius picks closest", lat: 5.0, lon: -74.4, radius: 500, want: 0, found: true},
		{name: "nothing close", lat: 12.5, lon: -81.7, radius: 50, found: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, dist, ok := rt.NearestCity(g, tt.lat, tt.lon, tt.radius)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
				assert.LessOrEqual(t, dist, tt.radius)
			}
		})
	}

	assert.Len(t, rt.SearchWithinRadius(0, -72, 2000), 3)
}
