package routing

import (
	"errors"

	"github.com/evnav/evnav/pkg"
	"github.com/evnav/evnav/pkg/costfunction"
	da "github.com/evnav/evnav/pkg/datastructure"
	"github.com/evnav/evnav/pkg/energy"
	"github.com/evnav/evnav/pkg/geo"
	"github.com/evnav/evnav/pkg/spatialindex"
	"github.com/evnav/evnav/pkg/util"
	"go.uber.org/zap"
)

var (
	ErrInvalidCoordinate = errors.New("coordinate is missing or not finite")
	ErrUnknownModelKey   = errors.New("energy model key not in the model collection")
	ErrNoPathFound       = errors.New("no path between the resolved nodes")
)

// RoutingEngine snaps free-form coordinates onto the road graph and answers
// single-pair shortest path queries under a selectable cost criterion. after
// construction the graph, the spatial index and all weight columns are
// immutable, so one engine instance serves concurrent queries without locking.
type RoutingEngine struct {
	graph        *da.Graph
	spatialIndex *spatialindex.Rtree
	models       energy.ModelCollection
	log          *zap.Logger
}

// NewRoutingEngine precomputes one energy weight column per model in the
// collection (batched, one Predict call per model) and builds the spatial
// index over the graph's vertices. the engine owns graph and index from here
// on; the collection is the caller's explicit choice, there is no implicit
// shared default.
func NewRoutingEngine(graph *da.Graph, models energy.ModelCollection, log *zap.Logger) (*RoutingEngine, error) {
	if err := energy.PrecomputeWeights(graph, models, log); err != nil {
		return nil, err
	}

	spatialIndex := spatialindex.NewRtree()
	spatialIndex.Build(graph, log)

	log.Info("routing engine ready",
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()),
		zap.Strings("weightColumns", graph.WeightColumnNames()))

	return &RoutingEngine{
		graph:        graph,
		spatialIndex: spatialIndex,
		models:       models,
		log:          log,
	}, nil
}

func (e *RoutingEngine) GetGraph() *da.Graph {
	return e.graph
}

func (e *RoutingEngine) GetSpatialIndex() *spatialindex.Rtree {
	return e.spatialIndex
}

func (e *RoutingEngine) GetModels() energy.ModelCollection {
	return e.models
}

// ShortestPath resolves origin and destination to their nearest graph nodes,
// runs dijkstra under the requested criterion and returns the node sequence as
// coordinates plus the total path weight. modelKey only matters for the
// energy criterion; empty falls back to pkg.DEFAULT_MODEL_KEY. both endpoints
// snapping to the same node yields a single-element path, not an error.
func (e *RoutingEngine) ShortestPath(origin, destination geo.Coordinate,
	criterion pkg.PathWeight, modelKey string) ([]geo.Coordinate, float64, error) {

	if !origin.IsFinite() || !destination.IsFinite() {
		return nil, 0, util.WrapErrorf(ErrInvalidCoordinate, util.ErrBadParamInput,
			"invalid query coordinates origin=(%f, %f) destination=(%f, %f)",
			origin.Lat, origin.Lon, destination.Lat, destination.Lon)
	}

	key := costfunction.NewWeightKey(criterion)
	if criterion == pkg.ENERGY {
		if modelKey == "" {
			modelKey = pkg.DEFAULT_MODEL_KEY
		}
		if !e.models.Has(modelKey) {
			return nil, 0, util.WrapErrorf(ErrUnknownModelKey, util.ErrBadParamInput,
				"energy model key %q not registered", modelKey)
		}
		key = costfunction.NewEnergyWeightKey(modelKey)
	}

	costFunction, err := costfunction.Resolve(e.graph, key)
	if err != nil {
		return nil, 0, err
	}

	originNode, ok := e.spatialIndex.Nearest(origin.Lat, origin.Lon)
	if !ok {
		return nil, 0, util.WrapErrorf(ErrNoPathFound, util.ErrNotFound,
			"spatial index is empty, cannot snap (%f, %f)", origin.Lat, origin.Lon)
	}
	destinationNode, _ := e.spatialIndex.Nearest(destination.Lat, destination.Lon)

	if originNode == destinationNode {
		lat, lon := e.graph.GetVertexCoordinates(originNode)
		return []geo.Coordinate{geo.NewCoordinate(lat, lon)}, 0, nil
	}

	dijkstra := NewDijkstra(e.graph, costFunction)
	nodePath, totalWeight, found := dijkstra.ShortestPath(originNode, destinationNode)
	if !found {
		return nil, 0, util.WrapErrorf(ErrNoPathFound, util.ErrNotFound,
			"no %s path from node %d to node %d", criterion, originNode, destinationNode)
	}

	coords := make([]geo.Coordinate, len(nodePath))
	for i, v := range nodePath {
		lat, lon := e.graph.GetVertexCoordinates(v)
		coords[i] = geo.NewCoordinate(lat, lon)
	}
	return coords, totalWeight, nil
}
