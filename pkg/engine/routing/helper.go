package routing

import (
	"github.com/lintang-b-s/Flightx/pkg/util"

	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
)

func validateQuery(graph *da.Graph, s da.Index) error {
	if graph == nil || graph.NumberOfVertices() == 0 {
		return util.WrapErrorf(nil, util.ErrInvalidArgument, "graph has no cities")
	}
	if !graph.IsValidVertex(s) {
		return util.WrapErrorf(nil, util.ErrInvalidArgument, "source %d is not a city of the graph", s)
	}
	return nil
}

func removeDuplicates[T comparable](arr []T) []T {
	set := make(map[T]struct{})
	newarr := make([]T, 0, len(arr))

	for _, v := range arr {
		if _, ok := set[v]; !ok {
			set[v] = struct{}{}
			newarr = append(newarr, v)
		}
	}
	return newarr
}
