package controllers

import (
	"strconv"

	"github.com/lintang-b-s/Flightx/pkg"
	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/engine/routing"
	"github.com/lintang-b-s/Flightx/pkg/http/usecases"
	"github.com/lintang-b-s/Flightx/pkg/util"
)

type computeRoutesRequest struct {
	Origin      *int64           `json:"origin" validate:"required,min=0,max=4294967294"`
	Destination destinationParam `json:"destination" validate:"required"`
}

type computeRoutesByCoordsRequest struct {
	OriginLat      float64  `json:"origin_lat" validate:"min=-90,max=90"`
	OriginLon      float64  `json:"origin_lon" validate:"min=-180,max=180"`
	DestinationLat *float64 `json:"destination_lat" validate:"omitempty,min=-90,max=90"`
	DestinationLon *float64 `json:"destination_lon" validate:"omitempty,min=-180,max=180"`
}

// destinationParam. a city id or "all", accepted as a json number or string
type destinationParam string

func (d *destinationParam) UnmarshalJSON(b []byte) error {
	s := string(b)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	*d = destinationParam(s)
	return nil
}

// selector. "all" and the all_destinations_id listed by /cities both select every city
func (d destinationParam) selector(numberOfCities int) (routing.DestinationSelector, error) {
	if string(d) == pkg.ALL_DESTINATIONS {
		return routing.AllDestinations(), nil
	}
	id, err := strconv.ParseUint(string(d), 10, 32)
	if err != nil {
		return routing.DestinationSelector{}, util.WrapErrorf(err, util.ErrBadParamInput,
			"destination must be a city id or %q", pkg.ALL_DESTINATIONS)
	}
	if int(id) == numberOfCities {
		return routing.AllDestinations(), nil
	}
	return routing.Destinations(datastructure.Index(id)), nil
}

type cityResponse struct {
	ID   uint32  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type citiesResponse struct {
	Cities            []cityResponse `json:"cities"`
	AllDestinationsID int            `json:"all_destinations_id"`
}

func NewCitiesResponse(cities []*datastructure.City) citiesResponse {
	resp := citiesResponse{
		Cities:            make([]cityResponse, 0, len(cities)),
		AllDestinationsID: len(cities),
	}
	for _, c := range cities {
		resp.Cities = append(resp.Cities, cityResponse{
			ID:   uint32(c.GetID()),
			Name: c.GetName(),
			Lat:  c.GetLat(),
			Lon:  c.GetLon(),
		})
	}
	return resp
}

type instructionResponse struct {
	From               uint32  `json:"from"`
	To                 uint32  `json:"to"`
	Bearing            float64 `json:"bearing"`
	Compass            string  `json:"compass"`
	CourseChange       string  `json:"course_change"`
	Distance           float64 `json:"distance"`
	CumulativeDistance float64 `json:"cumulative_distance"`
	Description        string  `json:"description"`
}

type layerResponse struct {
	ID            uint32                `json:"id"`
	Name          string                `json:"name"`
	Lat           float64               `json:"lat"`
	Lon           float64               `json:"lon"`
	Reachable     bool                  `json:"reachable"`
	Distance      float64               `json:"distance"`
	Label         string                `json:"label"`
	LabelPosition [2]float64            `json:"label_position"`
	Path          [][2]float64          `json:"path"`
	Polyline      string                `json:"polyline"`
	Itinerary     []instructionResponse `json:"itinerary"`
}

type routesResponse struct {
	OriginID   uint32          `json:"origin_id"`
	OriginName string          `json:"origin_name"`
	Layers     []layerResponse `json:"layers"`
}

func NewRoutesResponse(route *usecases.Route) routesResponse {
	resp := routesResponse{
		OriginID:   uint32(route.Source),
		OriginName: route.Name,
		Layers:     make([]layerResponse, 0, len(route.Layers)),
	}
	for _, l := range route.Layers {
		layer := layerResponse{
			ID:            uint32(l.Destination),
			Name:          l.Name,
			Lat:           l.Lat,
			Lon:           l.Lon,
			Reachable:     l.Reachable,
			Distance:      l.Distance,
			Label:         l.Label,
			LabelPosition: [2]float64{l.LabelPosition.Lat, l.LabelPosition.Lon},
			Path:          make([][2]float64, 0, len(l.Path)),
			Polyline:      l.Polyline,
			Itinerary:     make([]instructionResponse, 0, len(l.Itinerary)),
		}
		for _, c := range l.Path {
			layer.Path = append(layer.Path, [2]float64{c.Lat, c.Lon})
		}
		for _, ins := range l.Itinerary {
			layer.Itinerary = append(layer.Itinerary, instructionResponse{
				From:               uint32(ins.From),
				To:                 uint32(ins.To),
				Bearing:            ins.Bearing,
				Compass:            ins.Compass,
				CourseChange:       ins.CourseChange.String(),
				Distance:           ins.Distance,
				CumulativeDistance: ins.CumulativeDistance,
				Description:        ins.Description,
			})
		}
		resp.Layers = append(resp.Layers, layer)
	}
	return resp
}

type graphResponse struct {
	Cities                      int `json:"cities"`
	Routes                      int `json:"routes"`
	StronglyConnectedComponents int `json:"strongly_connected_components"`
}

func NewGraphResponse(summary usecases.GraphSummary) graphResponse {
	return graphResponse{
		Cities:                      summary.Cities,
		Routes:                      summary.Routes,
		StronglyConnectedComponents: summary.StronglyConnectedComponents,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
