package geo

import (
	"github.com/golang/geo/s2"
)

// CalculateS2Distance. great-circle distance in meters between two coordinates,
// computed on the sphere via s2. used by the osm importer for edge lengths.
func CalculateS2Distance(from, to Coordinate) float64 {
	fromLL := s2.LatLngFromDegrees(from.Lat, from.Lon)
	toLL := s2.LatLngFromDegrees(to.Lat, to.Lon)

	return fromLL.Distance(toLL).Radians() * earthRadiusKM * 1000.0
}
