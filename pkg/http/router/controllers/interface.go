package controllers

import (
	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/engine/routing"
	"github.com/lintang-b-s/Flightx/pkg/http/usecases"
)

type RoutingService interface {
	Cities() []*datastructure.City
	NumberOfCities() int
	ComputeRoutes(origin datastructure.Index, destinations routing.DestinationSelector) (*usecases.Route, error)
	ComputeRoutesByCoords(origLat, origLon float64, dstLat, dstLon *float64) (*usecases.Route, error)
	GraphSummary() usecases.GraphSummary
}
