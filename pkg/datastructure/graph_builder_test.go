package datastructure

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/Flightx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestGraph(t *testing.T) *Graph {
	t.Helper()
	b := NewGraphBuilder()
	a, err := b.AddCity("A", 0, 0)
	require.NoError(t, err)
	bb, err := b.AddCity("B", 0, 1)
	require.NoError(t, err)
	c, err := b.AddCity("C", 0, 2)
	require.NoError(t, err)
	_, err = b.AddCity("D", 5, 5)
	require.NoError(t, err)

	for _, r := range [][2]Index{{a, bb}, {bb, c}, {a, c}} {
		added, err := b.AddRoute(r[0], r[1])
		require.NoError(t, err)
		require.True(t, added)
	}

	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestGraphBuilder(t *testing.T) {
	g := buildTestGraph(t)

	assert.Equal(t, 4, g.NumberOfVertices())
	assert.Equal(t, 3, g.NumberOfEdges())
	assert.Equal(t, []Index{1, 2}, g.GetOutNeighbors(0))
	assert.Equal(t, []Index{2}, g.GetOutNeighbors(1))
	assert.Empty(t, g.GetOutNeighbors(2))
	assert.Empty(t, g.GetOutNeighbors(3))
	assert.Equal(t, Index(2), g.GetOutDegree(0))

	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0), "routes are directed")

	assert.Equal(t, "C", g.GetCity(2).GetName())
	lat, lon := g.GetVertexCoordinates(1)
	assert.Equal(t, 0.0, lat)
	assert.Equal(t, 1.0, lon)
	assert.True(t, g.IsValidVertex(3))
	assert.False(t, g.IsValidVertex(4))
}

func TestGraphBuilderDropsSelfLoopsAndDuplicates(t *testing.T) {
	b := NewGraphBuilder()
	x, _ := b.AddCity("X", 1, 1)
	y, _ := b.AddCity("Y", 2, 2)

	added, err := b.AddRoute(x, x)
	require.NoError(t, err)
	assert.False(t, added)

	added, err = b.AddRoute(x, y)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = b.AddRoute(x, y)
	require.NoError(t, err)
	assert.False(t, added)

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumberOfEdges())
	assert.Equal(t, []Index{y}, g.GetOutNeighbors(x))
}

func TestGraphBuilderErrors(t *testing.T) {
	t.Run("empty graph", func(t *testing.T) {
		_, err := NewGraphBuilder().Build()
		require.Error(t, err)
		assert.True(t, errors.Is(err, util.ErrInvalidArgument))
	})

	t.Run("duplicate city", func(t *testing.T) {
		b := NewGraphBuilder()
		_, err := b.AddCity("Bogotá", 4.6, -74.08)
		require.NoError(t, err)
		_, err = b.AddCity("Bogotá", 4.6, -74.08)
		assert.True(t, errors.Is(err, util.ErrInvalidArgument))
	})

	t.Run("invalid coordinate", func(t *testing.T) {
		_, err := NewGraphBuilder().AddCity("Nowhere", 100, 0)
		assert.True(t, errors.Is(err, util.ErrInvalidArgument))
	})

	t.Run("route outside graph", func(t *testing.T) {
		b := NewGraphBuilder()
		_, _ = b.AddCity("X", 1, 1)
		_, err := b.AddRoute(0, 7)
		assert.True(t, errors.Is(err, util.ErrInvalidArgument))
	})

	t.Run("cities after routes", func(t *testing.T) {
		b := NewGraphBuilder()
		_, _ = b.AddCity("X", 1, 1)
		_, _ = b.AddCity("Y", 1, 2)
		_, err := b.AddRoute(0, 1)
		require.NoError(t, err)
		_, err = b.AddCity("Z", 1, 3)
		assert.ErrorIs(t, err, ErrCitiesSealed)
	})

	t.Run("builder finalized", func(t *testing.T) {
		b := NewGraphBuilder()
		_, _ = b.AddCity("X", 1, 1)
		_, err := b.Build()
		require.NoError(t, err)
		_, err = b.AddCity("Y", 1, 2)
		assert.ErrorIs(t, err, ErrBuilderFinalized)
		_, err = b.Build()
		assert.ErrorIs(t, err, ErrBuilderFinalized)
	})
}

func TestKosaraju(t *testing.T) {
	b := NewGraphBuilder()
	for i, name := range []string{"A", "B", "C", "D", "E"} {
		_, err := b.AddCity(name, float64(i), 0)
		require.NoError(t, err)
	}
	// A <-> B -> C <-> D, E isolated
	for _, r := range [][2]Index{{0, 1}, {1, 0}, {1, 2}, {2, 3}, {3, 2}} {
		_, err := b.AddRoute(r[0], r[1])
		require.NoError(t, err)
	}
	g, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumberOfSCCs())
	assert.Equal(t, g.GetSCCOfAVertex(0), g.GetSCCOfAVertex(1))
	assert.Equal(t, g.GetSCCOfAVertex(2), g.GetSCCOfAVertex(3))
	assert.NotEqual(t, g.GetSCCOfAVertex(1), g.GetSCCOfAVertex(2))
	assert.NotEqual(t, g.GetSCCOfAVertex(4), g.GetSCCOfAVertex(0))
	assert.NotEqual(t, g.GetSCCOfAVertex(4), g.GetSCCOfAVertex(2))
}
