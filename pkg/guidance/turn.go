package guidance

import (
	"math"

	"github.com/lintang-b-s/Flightx/pkg/geo"
	"github.com/lintang-b-s/Flightx/pkg/util"
)

type CourseChange int

const (
	DEPART CourseChange = iota
	CONTINUE
	TURN_SLIGHT_LEFT
	TURN_SLIGHT_RIGHT
	TURN_LEFT
	TURN_RIGHT
	TURN_SHARP_LEFT
	TURN_SHARP_RIGHT
	ARRIVE
)

func (c CourseChange) String() string {
	switch c {
	case DEPART:
		return "depart"
	case CONTINUE:
		return "continue"
	case TURN_SLIGHT_LEFT:
		return "slight left"
	case TURN_SLIGHT_RIGHT:
		return "slight right"
	case TURN_LEFT:
		return "left"
	case TURN_RIGHT:
		return "right"
	case TURN_SHARP_LEFT:
		return "sharp left"
	case TURN_SHARP_RIGHT:
		return "sharp right"
	case ARRIVE:
		return "arrive"
	default:
		return "unknown"
	}
}

// https://www.movable-type.co.uk/scripts/latlong.html
// initial bearing (bearing from a to b with meridian line crossing a), in radians
func computeInitialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	bearing := geo.BearingTo(lat1, lon1, lat2, lon2)
	return util.DegreeToRadians(bearing)
}

// final bearing (bearing from a to b with meridian line crossing b), in radians
func computeFinalBearing(lat1, lon1, lat2, lon2 float64) float64 {
	bearing := geo.BearingTo(lat2, lon2, lat1, lon1)
	bearing = math.Mod(bearing+180, 360)
	return util.DegreeToRadians(bearing)
}

/*
alignInitialBearing. keeps the difference between two bearings inside [-180°, 180°].

e.g. prev 20°, current 350°: the raw difference is 330° (right) but the aircraft turns 30° left,
prev gets +360°. prev 340°, current 10°: raw difference -330° (left), the turn is 30° right, current gets +360°.
*/
func alignInitialBearing(prevBearing, bearing float64) (float64, float64) {
	dif := util.RadiansToDegree(bearing) - util.RadiansToDegree(prevBearing)
	if dif > 180 {
		prevBearing += 2 * math.Pi
	} else if dif < -180 {
		bearing += 2 * math.Pi
	}
	return prevBearing, bearing
}

// computeDeltaBearing. signed course change in radians, negative is a left turn
func computeDeltaBearing(prevBearing, bearing float64) float64 {
	prevBearing, bearing = alignInitialBearing(prevBearing, bearing)
	return bearing - prevBearing
}

// getCourseChange. classifies the turn at a connecting city from the final bearing of the inbound flight
// and the initial bearing of the outbound flight
func getCourseChange(inboundFinalBearing, outboundInitialBearing float64) CourseChange {
	delta := computeDeltaBearing(inboundFinalBearing, outboundInitialBearing)
	deltaDegree := util.RadiansToDegree(math.Abs(delta))
	if deltaDegree < 12 {
		return CONTINUE
	} else if deltaDegree < 40 {
		if delta < 0 {
			return TURN_SLIGHT_LEFT
		}
		return TURN_SLIGHT_RIGHT
	} else if deltaDegree < 105 {
		if delta < 0 {
			return TURN_LEFT
		}
		return TURN_RIGHT
	} else if delta < 0 {
		return TURN_SHARP_LEFT
	}
	return TURN_SHARP_RIGHT
}

var compassPoints = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Compass. 8 point compass name of a bearing in degree
func Compass(bearing float64) string {
	bearing = math.Mod(math.Mod(bearing, 360)+360, 360)
	return compassPoints[int(math.Floor((bearing+22.5)/45))%len(compassPoints)]
}
