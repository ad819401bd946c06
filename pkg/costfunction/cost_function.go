package costfunction

import (
	"github.com/evnav/evnav/pkg"
	"github.com/evnav/evnav/pkg/datastructure"
	"github.com/evnav/evnav/pkg/util"
)

// WeightKey identifies one edge-cost criterion. energy criteria additionally
// carry the powertrain model key, so several vehicle profiles can coexist on
// the same graph.
type WeightKey struct {
	criterion pkg.PathWeight
	modelKey  string
}

func NewWeightKey(criterion pkg.PathWeight) WeightKey {
	return WeightKey{criterion: criterion}
}

func NewEnergyWeightKey(modelKey string) WeightKey {
	return WeightKey{criterion: pkg.ENERGY, modelKey: modelKey}
}

func (k WeightKey) GetCriterion() pkg.PathWeight {
	return k.criterion
}

func (k WeightKey) GetModelKey() string {
	return k.modelKey
}

// AttributeName the edge weight column name for this key. distance and time
// columns are always present on a graph; energy columns exist per model key.
func (k WeightKey) AttributeName() string {
	switch k.criterion {
	case pkg.DISTANCE:
		return "meters"
	case pkg.TIME:
		return "minutes"
	case pkg.ENERGY:
		return "energy_" + k.modelKey
	default:
		return ""
	}
}

// CostFunction resolved per-edge weight lookup used by the shortest path search.
type CostFunction interface {
	GetWeight(edgeId datastructure.Index) float64
}

type columnCostFunction struct {
	column []float64
}

func (cf columnCostFunction) GetWeight(edgeId datastructure.Index) float64 {
	return cf.column[edgeId]
}

// Resolve binds a weight key to its precomputed weight column, once per query,
// so the search never does string dispatch per edge. an energy key whose model
// key has no column on the graph is rejected here, before any search runs.
func Resolve(g *datastructure.Graph, key WeightKey) (CostFunction, error) {
	name := key.AttributeName()
	if name == "" {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"unknown path weight criterion %d", key.GetCriterion())
	}

	column, ok := g.WeightColumn(name)
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrNotFound,
			"no weight column %s on graph: unknown model key %q", name, key.GetModelKey())
	}
	return columnCostFunction{column: column}, nil
}
