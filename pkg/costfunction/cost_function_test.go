package costfunction

import (
	"testing"

	"github.com/evnav/evnav/pkg"
	"github.com/evnav/evnav/pkg/datastructure"
)

func testGraph() *datastructure.Graph {
	vertices := []datastructure.Vertex{
		datastructure.NewVertex(0, 0, 0, 0),
		datastructure.NewVertex(1, 0, 1, 1),
	}
	edges := []datastructure.OutEdge{
		datastructure.NewOutEdge(0, 1, 1000, 60, 0),
	}
	return datastructure.NewGraph(vertices, edges)
}

func TestAttributeName(t *testing.T) {
	testCases := []struct {
		name string
		key  WeightKey
		want string
	}{
		{name: "distance", key: NewWeightKey(pkg.DISTANCE), want: "meters"},
		{name: "time", key: NewWeightKey(pkg.TIME), want: "minutes"},
		{name: "energy gasoline", key: NewEnergyWeightKey("Gasoline"), want: "energy_Gasoline"},
		{name: "energy electric", key: NewEnergyWeightKey("Electric"), want: "energy_Electric"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.AttributeName(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveDistanceAndTime(t *testing.T) {
	g := testGraph()

	cf, err := Resolve(g, NewWeightKey(pkg.DISTANCE))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cf.GetWeight(0); got != 1000 {
		t.Errorf("distance weight: got %f, want 1000", got)
	}

	cf, err = Resolve(g, NewWeightKey(pkg.TIME))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cf.GetWeight(0); got != 1.0 {
		t.Errorf("time weight: got %f, want 1 minute", got)
	}
}

func TestResolveUnknownModelKey(t *testing.T) {
	g := testGraph()

	if _, err := Resolve(g, NewEnergyWeightKey("NonexistentProfile")); err == nil {
		t.Error("expected error for unknown model key")
	}
}

func TestResolveEnergyColumn(t *testing.T) {
	g := testGraph()
	if err := g.AddWeightColumn("energy_Gasoline", []float64{42.5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cf, err := Resolve(g, NewEnergyWeightKey("Gasoline"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cf.GetWeight(0); got != 42.5 {
		t.Errorf("energy weight: got %f, want 42.5", got)
	}
}
