package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes a coordinate path with the google polyline format.
func PolylineFromCoords(coords []Coordinate) string {
	latLngs := make([][]float64, len(coords))
	for i, c := range coords {
		latLngs[i] = []float64{c.Lat, c.Lon}
	}
	return string(polyline.EncodeCoords(latLngs))
}
