package flightparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/util"
	"go.uber.org/zap"
)

type FlightParser struct {
	logger *zap.Logger
}

func NewFlightParser(logger *zap.Logger) *FlightParser {
	return &FlightParser{logger: logger}
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = FIELD_DELIMITER
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	return cr
}

// ReadCities. reads "name;lat;lon" lines, no header.
func ReadCities(r io.Reader) ([]CityRecord, error) {
	cr := newReader(r)
	cities := make([]CityRecord, 0, 64)
	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "read city line %d", line)
		}
		if len(record) < 3 {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "city line %d has %d fields, want 3", line, len(record))
		}

		name := strings.TrimSpace(strings.TrimPrefix(record[0], "\ufeff"))
		lat, err := util.StringToFloat64(record[1])
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid latitude of %q at line %d", name, line)
		}
		lon, err := util.StringToFloat64(record[2])
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid longitude of %q at line %d", name, line)
		}
		cities = append(cities, NewCityRecord(name, lat, lon))
	}
	return cities, nil
}

// ReadRoutes. reads a ';' separated flights file whose header names the ORIGEN and DESTINO columns.
// other columns are ignored.
func ReadRoutes(r io.Reader) ([]RouteRecord, error) {
	cr := newReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "read flights header")
	}

	originCol, destinationCol := -1, -1
	for i, col := range header {
		switch NormalizeName(strings.TrimPrefix(col, "\ufeff")) {
		case ORIGIN_COLUMN:
			originCol = i
		case DESTINATION_COLUMN:
			destinationCol = i
		}
	}
	if originCol < 0 || destinationCol < 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "flights header %v lacks %s or %s column",
			header, ORIGIN_COLUMN, DESTINATION_COLUMN)
	}

	routes := make([]RouteRecord, 0, 256)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "read flights line %d", line)
		}
		if len(record) <= originCol || len(record) <= destinationCol {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "flights line %d has %d fields", line, len(record))
		}
		routes = append(routes, NewRouteRecord(strings.TrimSpace(record[originCol]),
			strings.TrimSpace(record[destinationCol])))
	}
	return routes, nil
}

// ParseFiles. reads both files and builds the flight graph
func (p *FlightParser) ParseFiles(citiesPath, routesPath string) (*datastructure.Graph, error) {
	p.logger.Info("Reading cities...", zap.String("path", citiesPath))
	cities, err := readFile(citiesPath, ReadCities)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Reading flights...", zap.String("path", routesPath))
	routes, err := readFile(routesPath, ReadRoutes)
	if err != nil {
		return nil, err
	}

	return p.BuildGraph(cities, routes)
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()
	return read(f)
}
