package main

import (
	"flag"

	"github.com/lintang-b-s/Flightx/pkg/flightparser"
	"github.com/lintang-b-s/Flightx/pkg/logger"
	"go.uber.org/zap"
)

var (
	citiesFile = flag.String("cities", "./data/capital_coords.csv", "city coordinates file, one name;lat;lon line per city")
	routesFile = flag.String("routes", "./data/flight_data.csv", "flight records file with ORIGEN and DESTINO columns")
	outFile    = flag.String("out", "./data/flights.graph", "output graph file")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	parser := flightparser.NewFlightParser(logger)
	graph, err := parser.ParseFiles(*citiesFile, *routesFile)
	if err != nil {
		logger.Fatal("failed to build flight graph", zap.Error(err))
	}

	if err := graph.WriteGraph(*outFile); err != nil {
		logger.Fatal("failed to write flight graph", zap.Error(err))
	}

	logger.Info("Preprocessing completed successfully.",
		zap.String("graph_file", *outFile),
		zap.Int("cities", graph.NumberOfVertices()),
		zap.Int("routes", graph.NumberOfEdges()))
}
