package datastructure

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadGraph(t *testing.T) {
	b := NewGraphBuilder()
	_, err := b.AddCity("San José de Cúcuta", 7.89391, -72.50782)
	require.NoError(t, err)
	_, err = b.AddCity("Bogotá D.C.", 4.60971, -74.08175)
	require.NoError(t, err)
	_, err = b.AddCity("Leticia", -4.21528, -69.94056)
	require.NoError(t, err)
	_, err = b.AddRoute(0, 1)
	require.NoError(t, err)
	_, err = b.AddRoute(1, 2)
	require.NoError(t, err)
	_, err = b.AddRoute(1, 0)
	require.NoError(t, err)
	g, err := b.Build()
	require.NoError(t, err)

	filename := filepath.Join(t.TempDir(), "flights.graph")
	require.NoError(t, g.WriteGraph(filename))

	got, err := ReadGraph(filename)
	require.NoError(t, err)

	require.Equal(t, g.NumberOfVertices(), got.NumberOfVertices())
	require.Equal(t, g.NumberOfEdges(), got.NumberOfEdges())
	for v := Index(0); v < Index(g.NumberOfVertices()); v++ {
		assert.Equal(t, *g.GetCity(v), *got.GetCity(v))
		assert.Equal(t, g.GetOutNeighbors(v), got.GetOutNeighbors(v))
		assert.Equal(t, g.GetSCCOfAVertex(v), got.GetSCCOfAVertex(v))
	}
}

func TestDecodeGraphRejectsCorruptedInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "bad header", input: "2\n"},
		{name: "missing city", input: "2 0\n0 1 1 \"A\"\n"},
		{name: "city out of order", input: "2 0\n1 1 1 \"A\"\n0 2 2 \"B\"\n"},
		{name: "unquoted name", input: "1 0\n0 1 1 A\n"},
		{name: "route to unknown city", input: "1 1\n0 1 1 \"A\"\n0 3\n"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeGraph(bytes.NewBufferString(tt.input))
			assert.Error(t, err)
		})
	}
}
