package geo

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the mean radius of the Earth in kilometers, used to turn
// the angular distance s2 returns into a linear one.
const EarthRadiusKm = 6371.0088

// DistanceKm returns the great-circle distance between two points in
// kilometers, symmetric and zero for identical inputs.
//
// Go Learning Note — github.com/golang/geo:
// This is a Go port of Google's S2 geometry library. s2.Point represents a
// location as a unit vector on the sphere rather than a (lat, lng) pair,
// which avoids the usual trigonometric edge cases (poles, antimeridian) that
// a hand-rolled Haversine implementation has to special-case manually. Two
// Points' angular separation (an s1.Angle, in radians) times the Earth's
// radius gives the great-circle distance — the same quantity the Haversine
// formula computes, derived instead from vector geometry.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.PointFromLatLng(s2.LatLngFromDegrees(lat1, lon1))
	p2 := s2.PointFromLatLng(s2.LatLngFromDegrees(lat2, lon2))
	return p1.Distance(p2).Radians() * EarthRadiusKm
}
