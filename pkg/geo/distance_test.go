package geo

import (
	"math"
	"testing"
)

func TestCalculateHaversineDistance(t *testing.T) {
	testCases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantKM                 float64
		tolKM                  float64
	}{
		{
			name: "denver downtown to five points",
			lat1: 39.754372, lon1: -104.994300,
			lat2: 39.779098, lon2: -104.951241,
			wantKM: 4.6,
			tolKM:  0.3,
		},
		{
			name: "same point",
			lat1: 39.75, lon1: -104.99,
			lat2: 39.75, lon2: -104.99,
			wantKM: 0,
			tolKM:  1e-9,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateHaversineDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.wantKM) > tt.tolKM {
				t.Errorf("got %f km, want %f +- %f", got, tt.wantKM, tt.tolKM)
			}
		})
	}
}

func TestCalculatePlanarDistance(t *testing.T) {
	got := CalculatePlanarDistance(3, 4, 0, 0)
	if math.Abs(got-5) > 1e-12 {
		t.Errorf("got %f, want 5", got)
	}
}

func TestCoordinateIsFinite(t *testing.T) {
	if !NewCoordinate(39.75, -104.99).IsFinite() {
		t.Error("finite coordinate reported as non-finite")
	}
	if NewCoordinate(math.NaN(), -104.99).IsFinite() {
		t.Error("NaN latitude reported as finite")
	}
	if NewCoordinate(39.75, math.Inf(1)).IsFinite() {
		t.Error("infinite longitude reported as finite")
	}
}
