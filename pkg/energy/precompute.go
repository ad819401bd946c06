package energy

import (
	"math"
	"runtime"

	"github.com/evnav/evnav/pkg"
	"github.com/evnav/evnav/pkg/concurrent"
	"github.com/evnav/evnav/pkg/costfunction"
	"github.com/evnav/evnav/pkg/datastructure"
	"github.com/evnav/evnav/pkg/util"
	"go.uber.org/zap"
)

// BuildFeatureBatch assembles one feature record per edge, in edge id order.
// kph converts to mph, meters to miles, grade passes through. a non-finite raw
// attribute yields a NaN feature, which ForceSafeWeights later turns into an
// infinite weight for that edge.
func BuildFeatureBatch(g *datastructure.Graph) []FeatureRecord {
	batch := make([]FeatureRecord, g.NumberOfEdges())
	g.ForOutEdges(func(e *datastructure.OutEdge, _ float64) {
		batch[e.GetEdgeId()] = FeatureRecord{
			SpeedMPH:    e.GetKph() * pkg.KPH_TO_MPH,
			LengthMiles: e.GetMeters() * pkg.METERS_TO_MILES,
			Grade:       e.GetGrade(),
		}
	})
	return batch
}

// ForceSafeWeights replaces NaN and negative predictions with pkg.INF_WEIGHT
// in place, so the affected edges become unreachable under the energy
// criterion instead of corrupting the search. returns how many edges were
// forced.
func ForceSafeWeights(weights []float64) int {
	forced := 0
	for i, w := range weights {
		if math.IsNaN(w) || w < 0 {
			weights[i] = pkg.INF_WEIGHT
			forced++
		}
	}
	return forced
}

type precomputeJob struct {
	modelKey string
	model    Predictor
}

type precomputeResult struct {
	modelKey string
	weights  []float64
	forced   int
	err      error
}

// PrecomputeWeights derives one energy weight column per model in the
// collection and registers it on the graph. each model's Predict runs exactly
// once over the full batch; models run in parallel across a worker pool.
// construction fails if a predictor errors or returns a malformed batch, not
// if individual edges lack features.
func PrecomputeWeights(g *datastructure.Graph, models ModelCollection, log *zap.Logger) error {
	if models.Len() == 0 {
		return nil
	}

	batch := BuildFeatureBatch(g)

	numWorkers := util.MinG(models.Len(), runtime.NumCPU())
	wp := concurrent.NewWorkerPool[precomputeJob, precomputeResult](numWorkers, models.Len())

	wp.Start(func(job precomputeJob) precomputeResult {
		weights, err := job.model.Predict(batch)
		if err != nil {
			return precomputeResult{modelKey: job.modelKey, err: err}
		}
		if len(weights) != len(batch) {
			return precomputeResult{modelKey: job.modelKey,
				err: util.WrapErrorf(nil, util.ErrInternalServerError,
					"model %s predicted %d values for %d edges", job.modelKey, len(weights), len(batch))}
		}
		forced := ForceSafeWeights(weights)
		return precomputeResult{modelKey: job.modelKey, weights: weights, forced: forced}
	})

	for _, key := range models.Keys() {
		model, _ := models.Get(key)
		wp.AddJob(precomputeJob{modelKey: key, model: model})
	}
	wp.Close()
	wp.Wait()

	results := make(map[string]precomputeResult, models.Len())
	for res := range wp.CollectResults() {
		if res.err != nil {
			return util.WrapErrorf(res.err, util.ErrInternalServerError,
				"energy precomputation failed for model %s", res.modelKey)
		}
		results[res.modelKey] = res
	}

	// register columns in key order so construction stays deterministic
	for _, key := range models.Keys() {
		res := results[key]
		name := costfunction.NewEnergyWeightKey(key).AttributeName()
		if err := g.AddWeightColumn(name, res.weights); err != nil {
			return err
		}
		if res.forced > 0 {
			log.Warn("edges without usable energy features treated as unreachable",
				zap.String("model", key), zap.Int("edges", res.forced))
		}
		log.Info("energy weights precomputed",
			zap.String("model", key), zap.Int("edges", len(res.weights)))
	}

	return nil
}
