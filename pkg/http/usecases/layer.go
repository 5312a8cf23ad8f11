package usecases

import (
	"fmt"
	"strings"

	"github.com/lintang-b-s/Flightx/pkg"
	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/engine/routing"
	"github.com/lintang-b-s/Flightx/pkg/geo"
	"github.com/lintang-b-s/Flightx/pkg/guidance"
	"github.com/lintang-b-s/Flightx/pkg/util"
)

// Layer. everything a map needs to draw the shortest path to one destination
type Layer struct {
	Destination   datastructure.Index
	Name          string
	Lat           float64
	Lon           float64
	Reachable     bool
	Distance      float64
	Label         string
	LabelPosition geo.Coordinate
	Path          []geo.Coordinate
	Polyline      string
	Itinerary     []guidance.Instruction
}

type Route struct {
	Source datastructure.Index
	Name   string
	Layers []Layer
}

type layerRenderer struct {
	graph     *datastructure.Graph
	itinerary *guidance.ItineraryBuilder
}

func (lr layerRenderer) render(pr routing.PathResult) Layer {
	city := lr.graph.GetCity(pr.GetDestination())
	layer := Layer{
		Destination: city.GetID(),
		Name:        city.GetName(),
		Lat:         city.GetLat(),
		Lon:         city.GetLon(),
		Reachable:   pr.IsReachable(),
		Path:        []geo.Coordinate{},
		Itinerary:   []guidance.Instruction{},
	}
	layer.LabelPosition = city.GetCoordinate()

	dist, ok := pr.GetDistance()
	if !ok {
		layer.Label = fmt.Sprintf("%s\n\nThis destination can not be reached.", strings.ToUpper(city.GetName()))
		return layer
	}

	layer.Distance = util.RoundFloat(dist, pkg.DISTANCE_PRECISION)
	layer.Label = fmt.Sprintf("%s\n\nTotal distance: %.2fkm", strings.ToUpper(city.GetName()), layer.Distance)

	vertices := pr.GetVertices()
	for _, v := range vertices {
		layer.Path = append(layer.Path, lr.graph.GetCity(v).GetCoordinate())
	}
	layer.Polyline = geo.PolylineFromCoords(layer.Path)
	layer.Itinerary = lr.itinerary.GetItinerary(util.ReverseG(vertices))

	if len(layer.Path) > 1 {
		// label sits halfway along the last flight into the destination
		layer.LabelPosition = geo.MidPoint(layer.Path[0], layer.Path[1])
	}
	return layer
}
