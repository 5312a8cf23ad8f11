package flightparser

import (
	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/util"
	"go.uber.org/zap"
)

// BuildGraph. adds every city first, then resolves each flight through the normalized city names.
// a flight whose origin equals its destination, a repeated flight, or a flight naming an unknown city is skipped.
func (p *FlightParser) BuildGraph(cities []CityRecord, routes []RouteRecord) (*datastructure.Graph, error) {
	builder := datastructure.NewGraphBuilder()
	nameToId := make(map[string]datastructure.Index, len(cities))

	for _, c := range cities {
		key := NormalizeName(c.Name)
		if other, ok := nameToId[key]; ok {
			return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "cities %q and %q share the name key %q",
				c.Name, builder.GetCityName(other), key)
		}
		id, err := builder.AddCity(c.Name, c.Lat, c.Lon)
		if err != nil {
			return nil, err
		}
		nameToId[key] = id
	}

	var (
		added, selfLoops, duplicates, unknown int
	)
	unknownNames := make(map[string]struct{})

	for _, r := range routes {
		originKey := NormalizeName(r.Origin)
		destinationKey := NormalizeName(r.Destination)
		if originKey == destinationKey {
			selfLoops++
			continue
		}

		from, okFrom := nameToId[originKey]
		to, okTo := nameToId[destinationKey]
		if !okFrom || !okTo {
			unknown++
			if !okFrom {
				unknownNames[originKey] = struct{}{}
			}
			if !okTo {
				unknownNames[destinationKey] = struct{}{}
			}
			continue
		}

		ok, err := builder.AddRoute(from, to)
		if err != nil {
			return nil, err
		}
		if ok {
			added++
		} else {
			duplicates++
		}
	}

	if len(unknownNames) > 0 {
		names := make([]string, 0, len(unknownNames))
		for name := range unknownNames {
			names = append(names, name)
		}
		p.logger.Warn("flights reference cities without coordinates", zap.Strings("names", names))
	}

	p.logger.Info("Building flight graph...",
		zap.Int("cities", len(cities)),
		zap.Int("routes", added),
		zap.Int("skipped_self_routes", selfLoops),
		zap.Int("skipped_duplicate_routes", duplicates),
		zap.Int("skipped_unknown_city_routes", unknown))

	return builder.Build()
}
