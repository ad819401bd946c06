package controllers

import (
	"github.com/evnav/evnav/pkg/http/usecases"
)

type RoutingService interface {
	ShortestPath(origLat, origLon, dstLat, dstLon float64,
		criterion, modelKey string) (*usecases.RouteResult, error)
}
