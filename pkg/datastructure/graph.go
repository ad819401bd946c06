package datastructure

import (
	"math"
	"sort"

	"github.com/evnav/evnav/pkg"
	"github.com/evnav/evnav/pkg/util"
)

type Index uint32

const (
	INVALID_VERTEX_ID Index = math.MaxUint32
)

type Vertex struct {
	id    Index
	lat   float64
	lon   float64
	osmId int64
}

func NewVertex(id Index, lat, lon float64, osmId int64) Vertex {
	return Vertex{id: id, lat: lat, lon: lon, osmId: osmId}
}

func (v *Vertex) GetId() Index {
	return v.id
}

func (v *Vertex) GetLat() float64 {
	return v.lat
}

func (v *Vertex) GetLon() float64 {
	return v.lon
}

func (v *Vertex) GetOsmId() int64 {
	return v.osmId
}

// OutEdge directed edge. tail is implicit in the csr offset array, raw
// physical attributes (meters, kph, grade) stay on the edge, derived weights
// live in named weight columns on the graph.
type OutEdge struct {
	edgeId Index
	tail   Index
	head   Index
	meters float64
	kph    float64
	grade  float64
}

func NewOutEdge(tail, head Index, meters, kph, grade float64) OutEdge {
	return OutEdge{tail: tail, head: head, meters: meters, kph: kph, grade: grade}
}

func (e *OutEdge) GetEdgeId() Index {
	return e.edgeId
}

func (e *OutEdge) GetTail() Index {
	return e.tail
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

func (e *OutEdge) GetMeters() float64 {
	return e.meters
}

func (e *OutEdge) GetKph() float64 {
	return e.kph
}

func (e *OutEdge) GetGrade() float64 {
	return e.grade
}

// Graph road network in csr form. vertices, adjacency and raw edge attributes
// are immutable after NewGraph; weight columns are appended once during engine
// construction and immutable afterwards.
type Graph struct {
	vertices []Vertex
	firstOut []Index
	outEdges []OutEdge

	weightColumns [][]float64
	columnIds     map[string]int
}

// NewGraph builds the csr adjacency from an unordered edge list and derives
// the distance ("meters") and travel time ("minutes") weight columns for every
// edge. edges with a non-finite length or a non-positive speed get an infinite
// weight under the affected criterion instead of breaking the search.
func NewGraph(vertices []Vertex, edges []OutEdge) *Graph {
	g := &Graph{
		vertices:      vertices,
		firstOut:      make([]Index, len(vertices)+1),
		outEdges:      make([]OutEdge, len(edges)),
		weightColumns: make([][]float64, 0, 2),
		columnIds:     make(map[string]int),
	}

	copy(g.outEdges, edges)
	sort.SliceStable(g.outEdges, func(i, j int) bool {
		return g.outEdges[i].tail < g.outEdges[j].tail
	})

	for i := range g.outEdges {
		g.outEdges[i].edgeId = Index(i)
		g.firstOut[g.outEdges[i].tail+1]++
	}
	for v := 1; v <= len(vertices); v++ {
		g.firstOut[v] += g.firstOut[v-1]
	}

	meters := make([]float64, len(g.outEdges))
	minutes := make([]float64, len(g.outEdges))
	for i, e := range g.outEdges {
		if !util.IsFinite(e.meters) || e.meters < 0 {
			meters[i] = pkg.INF_WEIGHT
			minutes[i] = pkg.INF_WEIGHT
			continue
		}
		meters[i] = e.meters

		if !util.IsFinite(e.kph) || e.kph <= 0 {
			minutes[i] = pkg.INF_WEIGHT
			continue
		}
		minutes[i] = e.meters / 1000.0 / e.kph * 60.0
	}
	g.mustAddWeightColumn("meters", meters)
	g.mustAddWeightColumn("minutes", minutes)

	return g
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.outEdges)
}

func (g *Graph) GetVertex(v Index) *Vertex {
	return &g.vertices[v]
}

func (g *Graph) GetVertexCoordinates(v Index) (float64, float64) {
	return g.vertices[v].lat, g.vertices[v].lon
}

func (g *Graph) GetOutEdge(edgeId Index) *OutEdge {
	return &g.outEdges[edgeId]
}

// ForOutEdgesOf iterates the outgoing edges of u in edge id order.
func (g *Graph) ForOutEdgesOf(u Index, handle func(e *OutEdge)) {
	for i := g.firstOut[u]; i < g.firstOut[u+1]; i++ {
		handle(&g.outEdges[i])
	}
}

// ForOutEdges iterates every edge in edge id order, reporting progress in percent.
func (g *Graph) ForOutEdges(handle func(e *OutEdge, percentage float64)) {
	for i := range g.outEdges {
		handle(&g.outEdges[i], float64(i)/float64(len(g.outEdges))*100.0)
	}
}

// ForVertices iterates every vertex in id order, reporting progress in percent.
func (g *Graph) ForVertices(handle func(v *Vertex, percentage float64)) {
	for i := range g.vertices {
		handle(&g.vertices[i], float64(i)/float64(len(g.vertices))*100.0)
	}
}

// AddWeightColumn registers a named per-edge weight column. weights must hold
// one finite non-negative value per edge (use pkg.INF_WEIGHT for edges that a
// criterion cannot traverse). the column name must be unused.
func (g *Graph) AddWeightColumn(name string, weights []float64) error {
	if len(weights) != len(g.outEdges) {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"weight column %s has %d entries, graph has %d edges", name, len(weights), len(g.outEdges))
	}
	if _, ok := g.columnIds[name]; ok {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "weight column %s already registered", name)
	}
	for i, w := range weights {
		if math.IsNaN(w) || w < 0 {
			return util.WrapErrorf(nil, util.ErrBadParamInput,
				"weight column %s has invalid weight %f at edge %d", name, w, i)
		}
	}

	g.columnIds[name] = len(g.weightColumns)
	g.weightColumns = append(g.weightColumns, weights)
	return nil
}

func (g *Graph) mustAddWeightColumn(name string, weights []float64) {
	if err := g.AddWeightColumn(name, weights); err != nil {
		panic(err)
	}
}

// WeightColumn resolves a named weight column. the returned slice is indexed
// by edge id and must be treated as read-only.
func (g *Graph) WeightColumn(name string) ([]float64, bool) {
	id, ok := g.columnIds[name]
	if !ok {
		return nil, false
	}
	return g.weightColumns[id], true
}

func (g *Graph) HasWeightColumn(name string) bool {
	_, ok := g.columnIds[name]
	return ok
}

func (g *Graph) WeightColumnNames() []string {
	names := make([]string, 0, len(g.columnIds))
	for name := range g.columnIds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
