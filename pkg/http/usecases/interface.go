package usecases

import (
	"github.com/evnav/evnav/pkg"
	"github.com/evnav/evnav/pkg/geo"
)

type RoutingEngine interface {
	ShortestPath(origin, destination geo.Coordinate, criterion pkg.PathWeight,
		modelKey string) ([]geo.Coordinate, float64, error)
}
