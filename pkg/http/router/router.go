package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/Flightx/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/Flightx/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/Flightx/pkg/http/server"
	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "github.com/lintang-b-s/Flightx/docs"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "net/http/pprof"
)

type RateLimitConfig struct {
	Enabled bool
	Limit   float64
	Burst   int
}

type API struct {
	log *zap.Logger
	hub *controllers.Hub
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler. the full http surface: /api routes behind the middleware chain, /ws outside of it since
// the websocket upgrade needs the raw connection.
func (api *API) Handler(config http_server.Config, rateLimit RateLimitConfig,
	routingService controllers.RoutingService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	router.GET("/doc/*any", swaggerHandler)

	router.Handler(http.MethodGet, "/debug/pprof/*item", http.DefaultServeMux)

	group := router_helper.NewRouteGroup(router, "/api")

	flightRoutes := controllers.New(routingService, api.log)

	flightRoutes.Routes(group)

	mwChain := []alice.Constructor{corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(api.log), Labels}
	if rateLimit.Enabled {
		mwChain = append(mwChain, Limit(rateLimit.Limit, rateLimit.Burst))
	}
	mainMwChain := alice.New(mwChain...).Then(router)
	if config.Timeout > 0 {
		mainMwChain = http.TimeoutHandler(mainMwChain, config.Timeout, `{"error":{"code":"Service Unavailable","message":"request timeout"}}`)
	}

	api.hub = controllers.NewHub(routingService, api.log)
	wsChain := alice.New(corsHandler.Handler, api.recoverPanic, RealIP).ThenFunc(api.serveWebsocket)

	mux := http.NewServeMux()
	mux.Handle("/ws", wsChain)
	mux.Handle("/", mainMwChain)
	return mux
}

//	@title			Flightx API
//	@version		1.0
//	@description	Shortest flight routes between cities over a directed flight graph.

//	@contact.name	Lintang Birda Saputra
//	@contact.url	_
//	@contact.email	lintang.birda.saputra@mail.ugm.ac.id

//	@license.name	BSD License
//	@license.url	https://opensource.org/license/bsd-2-clause

// @host		localhost
// @BasePath	/api
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	rateLimit RateLimitConfig,
	routingService controllers.RoutingService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(config, rateLimit, routingService), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		api.hub.RemoveAllUser()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		api.log.Error("HTTP server stopped", zap.Error(err))
		return err

	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server")
		api.hub.RemoveAllUser()
		_ = srv.Shutdown(context.Background())
		return nil
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
