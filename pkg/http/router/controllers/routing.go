package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	helper "github.com/lintang-b-s/Flightx/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	validator      *requestValidator
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		validator:      newRequestValidator(),
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/cities", api.cities)
	group.GET("/graph", api.graph)
	group.GET("/computeRoutes", api.computeRoutes)
	group.GET("/computeRoutesByCoords", api.computeRoutesByCoords)
}

// cities
//
//	@Summary	list every city with its id, the id of the "all destinations" option is returned too
//	@Produce	json
//	@Success	200	{object}	citiesResponse
//	@Router		/cities [get]
func (api *routingAPI) cities(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	headers := make(http.Header)
	if err := writeJSON(w, http.StatusOK, envelope{"data": NewCitiesResponse(api.routingService.Cities())},
		headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// graph
//
//	@Summary	number of cities, routes and strongly connected components of the flight graph
//	@Produce	json
//	@Success	200	{object}	graphResponse
//	@Router		/graph [get]
func (api *routingAPI) graph(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	headers := make(http.Header)
	if err := writeJSON(w, http.StatusOK, envelope{"data": NewGraphResponse(api.routingService.GraphSummary())},
		headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// computeRoutes
//
//	@Summary	shortest flight routes from an origin city to one city or to every city
//	@Produce	json
//	@Param		origin		query		int		true	"origin city id"
//	@Param		destination	query		string	true	"destination city id or all"
//	@Success	200			{object}	routesResponse
//	@Failure	400			{object}	errorResponse
//	@Router		/computeRoutes [get]
func (api *routingAPI) computeRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request computeRoutesRequest

	query := r.URL.Query()

	origin, err := strconv.ParseInt(query.Get("origin"), 10, 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin is required and must be a valid city id"))
		return
	}
	request.Origin = &origin
	request.Destination = destinationParam(query.Get("destination"))

	api.handleComputeRoutes(w, r, request)
}

func (api *routingAPI) handleComputeRoutes(w http.ResponseWriter, r *http.Request, request computeRoutesRequest) {
	if err := api.validator.Struct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	destinations, err := request.Destination.selector(api.routingService.NumberOfCities())
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	route, err := api.routingService.ComputeRoutes(datastructure.Index(*request.Origin), destinations)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := writeJSON(w, http.StatusOK, envelope{"data": NewRoutesResponse(route)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// computeRoutesByCoords
//
//	@Summary	same as computeRoutes with both ends snapped to the nearest city. without destination coordinates every city is a destination
//	@Produce	json
//	@Param		origin_lat		query		number	true	"origin latitude"
//	@Param		origin_lon		query		number	true	"origin longitude"
//	@Param		destination_lat	query		number	false	"destination latitude"
//	@Param		destination_lon	query		number	false	"destination longitude"
//	@Success	200				{object}	routesResponse
//	@Failure	400				{object}	errorResponse
//	@Failure	404				{object}	errorResponse
//	@Router		/computeRoutesByCoords [get]
func (api *routingAPI) computeRoutesByCoords(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request computeRoutesByCoordsRequest
		err     error
	)

	query := r.URL.Query()

	request.OriginLat, err = strconv.ParseFloat(query.Get("origin_lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin_lat is required and must be a valid float"))
		return
	}
	request.OriginLon, err = strconv.ParseFloat(query.Get("origin_lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin_lon is required and must be a valid float"))
		return
	}

	if query.Has("destination_lat") || query.Has("destination_lon") {
		dstLat, err := strconv.ParseFloat(query.Get("destination_lat"), 64)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("destination_lat must be a valid float"))
			return
		}
		dstLon, err := strconv.ParseFloat(query.Get("destination_lon"), 64)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("destination_lon must be a valid float"))
			return
		}
		request.DestinationLat, request.DestinationLon = &dstLat, &dstLon
	}

	if err := api.validator.Struct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	route, err := api.routingService.ComputeRoutesByCoords(request.OriginLat, request.OriginLon,
		request.DestinationLat, request.DestinationLon)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := writeJSON(w, http.StatusOK, envelope{"data": NewRoutesResponse(route)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
