package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/Flightx/pkg"
	"github.com/lintang-b-s/Flightx/pkg/engine"
	"github.com/lintang-b-s/Flightx/pkg/http"
	"github.com/lintang-b-s/Flightx/pkg/http/usecases"
	"github.com/lintang-b-s/Flightx/pkg/logger"
	"github.com/lintang-b-s/Flightx/pkg/spatialindex"
	"github.com/lintang-b-s/Flightx/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	graphFile = flag.String("graph", "", "graph file written by the preprocessor, overrides GRAPH_FILE")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GRAPH_FILE", "./data/flights.graph")
	viper.SetDefault("COST_FUNCTION", string(pkg.GEODESIC))
	viper.SetDefault("SEARCH_STRATEGY", string(pkg.NAIVE_SELECTION))
	viper.SetDefault("SNAP_RADIUS_KM", 150.0)

	logger, err := logger.NewWithLevel(logger.ParseLevel(viper.GetString("LOG_LEVEL")))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	graphPath := viper.GetString("GRAPH_FILE")
	if *graphFile != "" {
		graphPath = *graphFile
	}

	flightEngine, err := engine.NewEngine(graphPath,
		pkg.CostFunctionType(viper.GetString("COST_FUNCTION")),
		pkg.SearchStrategy(viper.GetString("SEARCH_STRATEGY")), logger)
	if err != nil {
		logger.Fatal("failed to start engine", zap.Error(err))
	}
	routingEngine := flightEngine.GetRoutingEngine()

	rtree := spatialindex.NewRtree()
	rtree.Build(routingEngine.GetGraph(), logger)

	routingService := usecases.NewRoutingService(logger, routingEngine, routingEngine.GetMetrics(), rtree,
		viper.GetFloat64("SNAP_RADIUS_KM"))

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)
	if _, err := api.Use(ctx, logger, routingService); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	signal := http.GracefulShutdown()
	logger.Info("Flightx Server Stopping", zap.String("signal", signal.String()))
	cleanup()

	if err := api.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
	}
	logger.Info("Flightx Server Stopped")
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
