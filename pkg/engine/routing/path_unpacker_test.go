package routing

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/Flightx/pkg"
	"github.com/lintang-b-s/Flightx/pkg/costfunction"
	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
	met "github.com/lintang-b-s/Flightx/pkg/metrics"
	"github.com/lintang-b-s/Flightx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func TestReconstruct(t *testing.T) {
	g, m := abcdGraph(t)
	tree, err := NewDijkstra(g, m).ShortestPaths(0)
	require.NoError(t, err)

	t.Run("all destinations", func(t *testing.T) {
		results, err := Reconstruct(tree, AllDestinations())
		require.NoError(t, err)
		require.Len(t, results, g.NumberOfVertices())

		source := results[0]
		assert.True(t, source.IsReachable())
		dist, ok := source.GetDistance()
		assert.True(t, ok)
		assert.Equal(t, 0.0, dist)
		assert.Empty(t, source.GetEdges())
		assert.Equal(t, []da.Index{0}, source.GetVertices())

		b := results[1]
		assert.Equal(t, []PathEdge{{Vertex: 1, Parent: 0}}, b.GetEdges())

		c := results[2]
		dist, ok = c.GetDistance()
		assert.True(t, ok)
		assert.InDelta(t, 2.0, dist, 1e-12)
		vertices := c.GetVertices()
		assert.Equal(t, da.Index(2), vertices[0])
		assert.Equal(t, da.Index(0), vertices[len(vertices)-1])

		d := results[3]
		assert.False(t, d.IsReachable())
		_, ok = d.GetDistance()
		assert.False(t, ok)
		assert.Empty(t, d.GetEdges())
		assert.Empty(t, d.GetVertices())
	})

	t.Run("selected destinations", func(t *testing.T) {
		results, err := Reconstruct(tree, Destinations(3, 1, 3))
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Contains(t, results, da.Index(1))
		assert.Contains(t, results, da.Index(3))
	})

	t.Run("destination outside graph", func(t *testing.T) {
		results, err := Reconstruct(tree, Destinations(1, 4))
		require.Error(t, err)
		assert.Nil(t, results)
		assert.True(t, errors.Is(err, util.ErrInvalidArgument))
	})

	t.Run("ordered", func(t *testing.T) {
		results, err := ReconstructOrdered(tree, Destinations(2, 0, 1))
		require.NoError(t, err)
		require.Len(t, results, 3)
		for i, r := range results {
			assert.Equal(t, da.Index(i), r.GetDestination())
		}
	})
}

func TestReconstructedEdgesSumToDistance(t *testing.T) {
	rd := rand.New(rand.NewSource(99))
	for i := 0; i < 20; i++ {
		g := randomGraph(t, rd, 30, 0.1)
		m := met.NewMetric(g, costfunction.NewGeodesicCostFunction())
		for _, router := range routers(g, m) {
			tree, err := router.ShortestPaths(da.Index(rd.Intn(30)))
			require.NoError(t, err)

			results, err := Reconstruct(tree, AllDestinations())
			require.NoError(t, err)
			require.Len(t, results, 30)

			for v, r := range results {
				if !r.IsReachable() {
					assert.Empty(t, r.GetEdges())
					continue
				}
				sum := 0.0
				for _, e := range r.GetEdges() {
					require.True(t, g.HasEdge(e.Parent, e.Vertex))
					sum += m.GetWeight(e.Parent, e.Vertex)
				}
				dist, _ := r.GetDistance()
				assert.InDelta(t, dist, sum, 1e-6, "destination %d", v)

				vertices := r.GetVertices()
				assert.Equal(t, tree.GetSource(), vertices[len(vertices)-1])
			}
		}
	}
}

func TestReconstructCorruptedTree(t *testing.T) {
	tree := newShortestPathTree(0, 3)
	// 1 and 2 point at each other
	tree.dist[1], tree.dist[2] = 1, 2
	tree.parent[1], tree.parent[2] = 2, 1

	_, err := Reconstruct(tree, Destinations(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptedTree)
}

func TestRoutingEngineQuery(t *testing.T) {
	g, m := abcdGraph(t)

	for _, strategy := range []pkg.SearchStrategy{pkg.NAIVE_SELECTION, pkg.HEAP_SELECTION, ""} {
		re, err := NewRoutingEngine(g, m, strategy, zap.NewNop())
		require.NoError(t, err)

		qr, err := re.Query(0, AllDestinations())
		require.NoError(t, err)
		assert.Equal(t, da.Index(0), qr.GetSource())
		require.Len(t, qr.GetResults(), 4)
		assert.False(t, qr.GetResults()[3].IsReachable())

		qr, err = re.Query(1, Destinations(2))
		require.NoError(t, err)
		require.Len(t, qr.GetResults(), 1)
		dist, ok := qr.GetResults()[0].GetDistance()
		assert.True(t, ok)
		assert.InDelta(t, 1.0, dist, 1e-12)

		_, err = re.Query(0, Destinations(10))
		assert.True(t, errors.Is(err, util.ErrInvalidArgument))
		_, err = re.Query(10, AllDestinations())
		assert.True(t, errors.Is(err, util.ErrInvalidArgument))
	}

	_, err := NewRoutingEngine(g, m, "bellman-ford", zap.NewNop())
	assert.True(t, errors.Is(err, util.ErrInvalidArgument))
}
