package energy

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/evnav/evnav/pkg"
	"github.com/evnav/evnav/pkg/datastructure"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingPredictor struct {
	calls  int32
	perRec func(FeatureRecord) float64
}

func (p *countingPredictor) Predict(batch []FeatureRecord) ([]float64, error) {
	atomic.AddInt32(&p.calls, 1)
	out := make([]float64, len(batch))
	for i, rec := range batch {
		out[i] = p.perRec(rec)
	}
	return out, nil
}

func precomputeGraph(t *testing.T) *datastructure.Graph {
	t.Helper()
	vertices := []datastructure.Vertex{
		datastructure.NewVertex(0, 39.75, -104.99, 0),
		datastructure.NewVertex(1, 39.76, -104.98, 1),
		datastructure.NewVertex(2, 39.77, -104.97, 2),
	}
	edges := []datastructure.OutEdge{
		datastructure.NewOutEdge(0, 1, 1609.344, 48.28, 0.02),
		datastructure.NewOutEdge(1, 2, 3000, 100, -0.01),
		datastructure.NewOutEdge(2, 0, 500, 30, math.NaN()), // no elevation data
	}
	return datastructure.NewGraph(vertices, edges)
}

func TestBuildFeatureBatchConversions(t *testing.T) {
	g := precomputeGraph(t)
	batch := BuildFeatureBatch(g)

	require.Len(t, batch, 3)
	// 1609.344 m is one mile, 48.28 kph is ~30 mph
	require.InDelta(t, 1.0, batch[0].LengthMiles, 1e-4)
	require.InDelta(t, 30.0, batch[0].SpeedMPH, 0.01)
	require.InDelta(t, 0.02, batch[0].Grade, 1e-12)
	require.True(t, math.IsNaN(batch[2].Grade))
}

func TestPrecomputeWeightsBatchInvokedOncePerModel(t *testing.T) {
	g := precomputeGraph(t)

	gas := &countingPredictor{perRec: func(rec FeatureRecord) float64 { return rec.LengthMiles * 0.3 }}
	ev := &countingPredictor{perRec: func(rec FeatureRecord) float64 { return rec.LengthMiles * 0.25 }}
	models := NewModelCollection(map[string]Predictor{"Gasoline": gas, "Electric": ev})

	err := PrecomputeWeights(g, models, zap.NewNop())
	require.NoError(t, err)

	require.EqualValues(t, 1, atomic.LoadInt32(&gas.calls))
	require.EqualValues(t, 1, atomic.LoadInt32(&ev.calls))
	require.True(t, g.HasWeightColumn("energy_Gasoline"))
	require.True(t, g.HasWeightColumn("energy_Electric"))
}

func TestPrecomputeWeightsForcesUnsafePredictions(t *testing.T) {
	g := precomputeGraph(t)

	// NaN grade propagates through the linear model, and one prediction is
	// deliberately negative
	model := &countingPredictor{perRec: func(rec FeatureRecord) float64 {
		if rec.LengthMiles > 1.5 {
			return -1.0
		}
		return rec.Grade * rec.LengthMiles
	}}
	models := NewModelCollection(map[string]Predictor{"Weird": model})

	err := PrecomputeWeights(g, models, zap.NewNop())
	require.NoError(t, err)

	weights, ok := g.WeightColumn("energy_Weird")
	require.True(t, ok)
	require.Equal(t, pkg.INF_WEIGHT, weights[1], "negative prediction must become infinite")
	require.Equal(t, pkg.INF_WEIGHT, weights[2], "NaN prediction must become infinite")
	require.Less(t, weights[0], pkg.INF_WEIGHT)
}

func TestLinearModelNonNegative(t *testing.T) {
	m := NewLinearModel(0.3, 12.0, 0.25, 45.0)

	out, err := m.Predict([]FeatureRecord{
		{SpeedMPH: 30, LengthMiles: 1.0, Grade: -0.5}, // steep downhill
		{SpeedMPH: 70, LengthMiles: 2.0, Grade: 0.08},
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, out[0], 0.0)
	require.Greater(t, out[1], 0.0)
}

func TestModelCollectionIsolation(t *testing.T) {
	src := map[string]Predictor{"Gasoline": NewLinearModel(0.3, 8, 0.35, 45)}
	mc := NewModelCollection(src)

	// mutating the source map after construction must not leak into the collection
	src["Diesel"] = NewLinearModel(0.25, 8, 0.3, 45)
	require.False(t, mc.Has("Diesel"))
	require.Equal(t, []string{"Gasoline"}, mc.Keys())
}
