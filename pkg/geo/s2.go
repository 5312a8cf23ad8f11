package geo

import (
	"github.com/lintang-b-s/Flightx/pkg"

	"github.com/golang/geo/s2"
)

// CalculateGeodesicDistance. great circle distance in km on the s2 unit sphere scaled by the earth radius
func CalculateGeodesicDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	one := s2.LatLngFromDegrees(latOne, longOne)
	two := s2.LatLngFromDegrees(latTwo, longTwo)
	return one.Distance(two).Radians() * pkg.EARTH_RADIUS_KM
}

// MidPoint. point halfway along the great circle between the two coordinates, used to place distance labels
func MidPoint(one, two Coordinate) Coordinate {
	a := s2.PointFromLatLng(s2.LatLngFromDegrees(one.Lat, one.Lon))
	b := s2.PointFromLatLng(s2.LatLngFromDegrees(two.Lat, two.Lon))
	mid := s2.Interpolate(0.5, a, b)
	ll := s2.LatLngFromPoint(mid)
	return NewCoordinate(ll.Lat.Degrees(), ll.Lng.Degrees())
}
