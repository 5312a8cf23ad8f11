package guidance

import "github.com/lintang-b-s/Flightx/pkg/datastructure"

type Graph interface {
	GetCity(v datastructure.Index) *datastructure.City
}

type Metric interface {
	GetWeight(u, v datastructure.Index) float64
}
