package energy

import (
	"sort"
)

// FeatureRecord per-edge input to a powertrain prediction model. speed and
// length are converted from the graph's raw kph/meters attributes; grade is
// passed through unitless. a missing raw attribute propagates as NaN.
type FeatureRecord struct {
	SpeedMPH    float64
	LengthMiles float64
	Grade       float64
}

// Predictor opaque energy model. Predict is called exactly once per model key
// during engine construction, over the full edge set, so vectorized model
// backends stay cheap on large graphs.
type Predictor interface {
	Predict(batch []FeatureRecord) ([]float64, error)
}

// ModelCollection immutable mapping from model key (vehicle/powertrain
// profile) to its predictor. built once by the caller, never mutated by the
// engine; two engines never share collection state implicitly.
type ModelCollection struct {
	models map[string]Predictor
}

func NewModelCollection(models map[string]Predictor) ModelCollection {
	copied := make(map[string]Predictor, len(models))
	for key, model := range models {
		copied[key] = model
	}
	return ModelCollection{models: copied}
}

func (mc ModelCollection) Get(key string) (Predictor, bool) {
	model, ok := mc.models[key]
	return model, ok
}

func (mc ModelCollection) Has(key string) bool {
	_, ok := mc.models[key]
	return ok
}

// Keys model keys in deterministic order.
func (mc ModelCollection) Keys() []string {
	keys := make([]string, 0, len(mc.models))
	for key := range mc.models {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (mc ModelCollection) Len() int {
	return len(mc.models)
}
