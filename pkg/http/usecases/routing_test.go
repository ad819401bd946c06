package usecases

import (
	"testing"

	"github.com/evnav/evnav/pkg"
	"github.com/evnav/evnav/pkg/geo"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEngine struct {
	gotCriterion pkg.PathWeight
	gotModelKey  string
	coords       []geo.Coordinate
	totalWeight  float64
	err          error
}

func (s *stubEngine) ShortestPath(origin, destination geo.Coordinate,
	criterion pkg.PathWeight, modelKey string) ([]geo.Coordinate, float64, error) {
	s.gotCriterion = criterion
	s.gotModelKey = modelKey
	return s.coords, s.totalWeight, s.err
}

func TestParseCriterion(t *testing.T) {
	testCases := []struct {
		in      string
		want    pkg.PathWeight
		wantErr bool
	}{
		{in: "", want: pkg.DISTANCE},
		{in: "distance", want: pkg.DISTANCE},
		{in: "TIME", want: pkg.TIME},
		{in: "Energy", want: pkg.ENERGY},
		{in: "fuel", wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCriterion(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestShortestPathResult(t *testing.T) {
	engine := &stubEngine{
		coords: []geo.Coordinate{
			geo.NewCoordinate(39.7540, -104.9950),
			geo.NewCoordinate(39.7585, -104.9862),
		},
		totalWeight: 820.5,
	}
	rs := NewRoutingService(zap.NewNop(), engine)

	result, err := rs.ShortestPath(39.754372, -104.994300, 39.779098, -104.951241, "energy", "Electric")
	require.NoError(t, err)

	require.Equal(t, pkg.ENERGY, engine.gotCriterion)
	require.Equal(t, "Electric", engine.gotModelKey)
	require.Equal(t, engine.coords, result.Coordinates)
	require.Equal(t, 820.5, result.TotalWeight)
	require.Equal(t, "energy_Electric", result.WeightUnit)
	require.NotEmpty(t, result.Polyline)
}

func TestShortestPathRejectsBadCriterionBeforeEngine(t *testing.T) {
	engine := &stubEngine{}
	rs := NewRoutingService(zap.NewNop(), engine)

	_, err := rs.ShortestPath(39.75, -104.99, 39.77, -104.95, "teleport", "")
	require.Error(t, err)
	require.Zero(t, engine.gotCriterion)
}
