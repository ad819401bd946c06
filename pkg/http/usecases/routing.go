package usecases

import (
	"strings"

	"github.com/evnav/evnav/pkg"
	"github.com/evnav/evnav/pkg/geo"
	"github.com/evnav/evnav/pkg/util"
	"go.uber.org/zap"
)

type RoutingService struct {
	log    *zap.Logger
	engine RoutingEngine
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine) *RoutingService {
	return &RoutingService{
		log:    log,
		engine: engine,
	}
}

// RouteResult one answered routing query.
type RouteResult struct {
	Coordinates []geo.Coordinate
	Polyline    string
	TotalWeight float64
	WeightUnit  string
}

// ParseCriterion maps the API's criterion string onto a path weight.
func ParseCriterion(criterion string) (pkg.PathWeight, error) {
	switch strings.ToLower(criterion) {
	case "", "distance":
		return pkg.DISTANCE, nil
	case "time":
		return pkg.TIME, nil
	case "energy":
		return pkg.ENERGY, nil
	default:
		return 0, util.WrapErrorf(nil, util.ErrBadParamInput,
			"unknown criterion %q, want distance, time or energy", criterion)
	}
}

func weightUnit(criterion pkg.PathWeight, modelKey string) string {
	switch criterion {
	case pkg.DISTANCE:
		return "meters"
	case pkg.TIME:
		return "minutes"
	default:
		if modelKey == "" {
			modelKey = pkg.DEFAULT_MODEL_KEY
		}
		return "energy_" + modelKey
	}
}

func (rs *RoutingService) ShortestPath(origLat, origLon, dstLat, dstLon float64,
	criterion, modelKey string) (*RouteResult, error) {

	weight, err := ParseCriterion(criterion)
	if err != nil {
		return nil, err
	}

	coords, totalWeight, err := rs.engine.ShortestPath(
		geo.NewCoordinate(origLat, origLon), geo.NewCoordinate(dstLat, dstLon),
		weight, modelKey)
	if err != nil {
		return nil, err
	}

	rs.log.Debug("answered shortest path query",
		zap.String("criterion", weight.String()),
		zap.Int("pathNodes", len(coords)),
		zap.Float64("totalWeight", totalWeight))

	return &RouteResult{
		Coordinates: coords,
		Polyline:    geo.PolylineFromCoords(coords),
		TotalWeight: totalWeight,
		WeightUnit:  weightUnit(weight, modelKey),
	}, nil
}
