package geo

import (
	"math"

	"github.com/evnav/evnav/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

// IsFinite reports whether both components are real finite numbers.
func (c Coordinate) IsFinite() bool {
	return util.IsFinite(c.Lat) && util.IsFinite(c.Lon)
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

const (
	earthRadiusKM = 6371.0
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// CalculateHaversineDistance. calculate haversine distance in km
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = util.DegreeToRadians(latOne)
	longOne = util.DegreeToRadians(longOne)
	latTwo = util.DegreeToRadians(latTwo)
	longTwo = util.DegreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

// CalculatePlanarDistance. euclidean distance on raw (lat, lon) degrees. this
// is the snapping metric of the spatial index, kept planar on purpose: it
// distorts at high latitude and over large spans, and callers tolerate that.
func CalculatePlanarDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	dLat := latOne - latTwo
	dLon := longOne - longTwo
	return math.Sqrt(dLat*dLat + dLon*dLon)
}
