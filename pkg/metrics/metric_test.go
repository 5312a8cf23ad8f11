package metrics

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/Flightx/pkg/costfunction"
	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type negativeCostFunction struct{}

func (negativeCostFunction) GetWeight(u, v *da.City) float64 {
	return -1
}

func lineGraph(t *testing.T) *da.Graph {
	b := da.NewGraphBuilder()
	_, err := b.AddCity("A", 0, 0)
	require.NoError(t, err)
	_, err = b.AddCity("B", 0, 3)
	require.NoError(t, err)
	_, err = b.AddRoute(0, 1)
	require.NoError(t, err)
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestMetric(t *testing.T) {
	g := lineGraph(t)

	met := NewMetric(g, costfunction.NewEuclideanCostFunction())
	require.NoError(t, met.Validate())
	assert.InDelta(t, 3.0, met.GetWeight(0, 1), 1e-12)
	assert.Equal(t, met.GetWeight(0, 1), met.GetWeight(1, 0))
}

func TestMetricValidateRejectsNegativeWeights(t *testing.T) {
	met := NewMetric(lineGraph(t), negativeCostFunction{})
	err := met.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, util.ErrInvalidArgument))
}
