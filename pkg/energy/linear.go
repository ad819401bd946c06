package energy

import (
	"math"
)

// LinearModel coefficient-based energy model: a flat per-mile rate adjusted
// linearly for grade and for speed above a reference. stands in for trained
// model backends, which plug in through the same Predictor interface.
type LinearModel struct {
	baseRatePerMile float64
	gradeFactor     float64
	speedFactor     float64
	refSpeedMPH     float64
}

func NewLinearModel(baseRatePerMile, gradeFactor, speedFactor, refSpeedMPH float64) *LinearModel {
	return &LinearModel{
		baseRatePerMile: baseRatePerMile,
		gradeFactor:     gradeFactor,
		speedFactor:     speedFactor,
		refSpeedMPH:     refSpeedMPH,
	}
}

func (m *LinearModel) Predict(batch []FeatureRecord) ([]float64, error) {
	out := make([]float64, len(batch))
	for i, rec := range batch {
		rate := m.baseRatePerMile *
			(1.0 + m.gradeFactor*rec.Grade + m.speedFactor*(rec.SpeedMPH-m.refSpeedMPH)/m.refSpeedMPH)
		energy := rate * rec.LengthMiles
		// downhill recuperation or a degenerate coefficient set must not
		// produce a negative search weight
		out[i] = math.Max(energy, 0)
	}
	return out, nil
}

// DefaultModelCollection the two stock profiles. mirrors the default
// powertrain set of the upstream energy prediction service; callers with
// trained models build their own collection instead.
func DefaultModelCollection() ModelCollection {
	return NewModelCollection(map[string]Predictor{
		"Gasoline": NewLinearModel(0.32, 8.0, 0.35, 45.0), // ~gallons gasoline equivalent
		"Electric": NewLinearModel(0.30, 12.0, 0.25, 45.0), // kWh, stronger grade sensitivity
	})
}
