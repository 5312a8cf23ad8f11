package guidance

import (
	"fmt"

	"github.com/lintang-b-s/Flightx/pkg"
	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/util"
)

// Instruction. one flight of an itinerary, in travel order
type Instruction struct {
	From               datastructure.Index
	To                 datastructure.Index
	Bearing            float64
	Compass            string
	CourseChange       CourseChange
	Distance           float64
	CumulativeDistance float64
	Description        string
}

type ItineraryBuilder struct {
	graph  Graph
	metric Metric
}

func NewItineraryBuilder(graph Graph, metric Metric) *ItineraryBuilder {
	return &ItineraryBuilder{
		graph:  graph,
		metric: metric,
	}
}

// GetItinerary. one instruction per flight of path plus a final arrival instruction.
// path lists the cities from the source to the destination. a single city path has no flights.
func (ib *ItineraryBuilder) GetItinerary(path []datastructure.Index) []Instruction {
	if len(path) < 2 {
		return []Instruction{}
	}

	instructions := make([]Instruction, 0, len(path))
	var (
		cumulativeDistance float64
		prevFinalBearing   float64
	)

	for i := 0; i+1 < len(path); i++ {
		from, to := ib.graph.GetCity(path[i]), ib.graph.GetCity(path[i+1])

		ins := Instruction{
			From:         path[i],
			To:           path[i+1],
			CourseChange: DEPART,
		}
		initialBearing := computeInitialBearing(from.GetLat(), from.GetLon(), to.GetLat(), to.GetLon())
		ins.Bearing = util.RoundFloat(util.RadiansToDegree(initialBearing), pkg.DISTANCE_PRECISION)
		ins.Compass = Compass(ins.Bearing)
		if i > 0 {
			ins.CourseChange = getCourseChange(prevFinalBearing, initialBearing)
		}
		prevFinalBearing = computeFinalBearing(from.GetLat(), from.GetLon(), to.GetLat(), to.GetLon())

		dist := ib.metric.GetWeight(path[i], path[i+1])
		cumulativeDistance += dist
		ins.Distance = util.RoundFloat(dist, pkg.DISTANCE_PRECISION)
		ins.CumulativeDistance = util.RoundFloat(cumulativeDistance, pkg.DISTANCE_PRECISION)
		ins.Description = describe(ins, from.GetName(), to.GetName())

		instructions = append(instructions, ins)
	}

	last := path[len(path)-1]
	arrival := Instruction{
		From:               last,
		To:                 last,
		CourseChange:       ARRIVE,
		CumulativeDistance: util.RoundFloat(cumulativeDistance, pkg.DISTANCE_PRECISION),
	}
	arrival.Description = fmt.Sprintf("Arrive at %s after %.2f km", ib.graph.GetCity(last).GetName(),
		arrival.CumulativeDistance)
	return append(instructions, arrival)
}

func describe(ins Instruction, from, to string) string {
	switch ins.CourseChange {
	case DEPART:
		return fmt.Sprintf("Depart %s heading %s to %s, %.2f km", from, ins.Compass, to, ins.Distance)
	case CONTINUE:
		return fmt.Sprintf("Continue from %s heading %s to %s, %.2f km", from, ins.Compass, to, ins.Distance)
	default:
		return fmt.Sprintf("Turn %s at %s heading %s to %s, %.2f km", ins.CourseChange, from, ins.Compass, to,
			ins.Distance)
	}
}
