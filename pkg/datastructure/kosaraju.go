package datastructure

import (
	"github.com/lintang-b-s/Flightx/pkg/util"
)

// RunKosaraju. runs kosaraju's algorithm to find strongly connected components (SCCs) of the flight graph.
// two cities share a component iff each one is reachable from the other.
func (g *Graph) RunKosaraju() {
	n := Index(g.NumberOfVertices())

	reversed := make([][]Index, n)
	g.ForOutEdges(func(tail, head Index) {
		reversed[head] = append(reversed[head], tail)
	})

	order := make([]Index, 0, n)
	visited := make([]bool, n)
	for v := Index(0); v < n; v++ {
		if !visited[v] {
			g.dfs(v, &order, visited, func(u Index) []Index { return g.GetOutNeighbors(u) })
		}
	}

	order = util.ReverseG[Index](order)

	// reset visited
	visited = make([]bool, n)
	sccs := make([]Index, n)
	numComponents := 0

	for _, v := range order {
		if !visited[v] {
			component := make([]Index, 0, 10)
			g.dfs(v, &component, visited, func(u Index) []Index { return reversed[u] })
			for _, node := range component {
				sccs[node] = Index(numComponents)
			}
			numComponents++
		}
	}

	g.setSCCs(sccs, numComponents)
}

func (g *Graph) dfs(v Index, output *[]Index, visited []bool, neighbors func(u Index) []Index) {
	visited[v] = true

	for _, w := range neighbors(v) {
		if !visited[w] {
			g.dfs(w, output, visited, neighbors)
		}
	}

	*output = append(*output, v)
}
