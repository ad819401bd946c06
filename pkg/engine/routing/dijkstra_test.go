package routing

import (
	"math"
	"testing"

	"github.com/evnav/evnav/pkg"
	"github.com/evnav/evnav/pkg/costfunction"
	da "github.com/evnav/evnav/pkg/datastructure"
)

// diamond with a short slow route (0-1-3) and a long fast route (0-2-3), plus
// an isolated vertex 4.
func diamondGraph(t *testing.T) *da.Graph {
	t.Helper()
	vertices := []da.Vertex{
		da.NewVertex(0, 39.750, -104.999, 0),
		da.NewVertex(1, 39.755, -104.995, 1),
		da.NewVertex(2, 39.748, -104.990, 2),
		da.NewVertex(3, 39.760, -104.985, 3),
		da.NewVertex(4, 39.900, -104.800, 4),
	}
	edges := []da.OutEdge{
		da.NewOutEdge(0, 1, 500, 20, 0),
		da.NewOutEdge(1, 3, 500, 20, 0),
		da.NewOutEdge(0, 2, 900, 90, 0),
		da.NewOutEdge(2, 3, 900, 90, 0),
	}
	return da.NewGraph(vertices, edges)
}

func resolve(t *testing.T, g *da.Graph, key costfunction.WeightKey) costfunction.CostFunction {
	t.Helper()
	cf, err := costfunction.Resolve(g, key)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return cf
}

func TestShortestPathDistanceVsTime(t *testing.T) {
	g := diamondGraph(t)

	distPath, distWeight, found := NewDijkstra(g, resolve(t, g, costfunction.NewWeightKey(pkg.DISTANCE))).ShortestPath(0, 3)
	if !found {
		t.Fatal("distance path not found")
	}
	if len(distPath) != 3 || distPath[1] != 1 {
		t.Errorf("distance path %v, want via vertex 1", distPath)
	}
	if math.Abs(distWeight-1000) > 1e-9 {
		t.Errorf("distance weight %f, want 1000", distWeight)
	}

	timePath, timeWeight, found := NewDijkstra(g, resolve(t, g, costfunction.NewWeightKey(pkg.TIME))).ShortestPath(0, 3)
	if !found {
		t.Fatal("time path not found")
	}
	if len(timePath) != 3 || timePath[1] != 2 {
		t.Errorf("time path %v, want via vertex 2", timePath)
	}
	// 1800 m at 90 kph
	wantMinutes := 1.8 / 90.0 * 60.0
	if math.Abs(timeWeight-wantMinutes) > 1e-9 {
		t.Errorf("time weight %f, want %f", timeWeight, wantMinutes)
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	g := diamondGraph(t)

	if _, _, found := NewDijkstra(g, resolve(t, g, costfunction.NewWeightKey(pkg.DISTANCE))).ShortestPath(0, 4); found {
		t.Error("path to isolated vertex must not be found")
	}
}

func TestShortestPathSkipsInfiniteWeightEdges(t *testing.T) {
	g := diamondGraph(t)

	// make the short route unreachable under a custom column
	if err := g.AddWeightColumn("energy_Test", []float64{pkg.INF_WEIGHT, 10, pkg.INF_WEIGHT, 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// edge ids are csr order: (0,1)=0, (0,2)=1, (1,3)=2, (2,3)=3

	path, weight, found := NewDijkstra(g, resolve(t, g, costfunction.NewEnergyWeightKey("Test"))).ShortestPath(0, 3)
	if !found {
		t.Fatal("path not found")
	}
	if len(path) != 3 || path[1] != 2 {
		t.Errorf("path %v, want via vertex 2 only", path)
	}
	if weight != 20 {
		t.Errorf("weight %f, want 20", weight)
	}
}

func TestPathEdges(t *testing.T) {
	g := diamondGraph(t)

	d := NewDijkstra(g, resolve(t, g, costfunction.NewWeightKey(pkg.DISTANCE)))
	path, _, found := d.ShortestPath(0, 3)
	if !found {
		t.Fatal("path not found")
	}

	edges := d.PathEdges(path)
	if len(edges) != len(path)-1 {
		t.Fatalf("got %d path edges, want %d", len(edges), len(path)-1)
	}
	for i, edgeId := range edges {
		e := g.GetOutEdge(edgeId)
		if e.GetTail() != path[i] || e.GetHead() != path[i+1] {
			t.Errorf("edge %d does not connect consecutive path vertices", edgeId)
		}
	}
}
