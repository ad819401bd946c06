package spatialindex

import (
	"math"

	"github.com/evnav/evnav/pkg/datastructure"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree point index over graph vertices. each vertex is inserted as a
// zero-area box at its raw (lon, lat), and nearest-neighbor search ranks by
// planar box distance on those raw degrees. the metric is deliberately not
// great-circle: snapping tolerates the distortion, which grows at high
// latitude and over large query spans.
type Rtree struct {
	tr *rtree.RTreeG[datastructure.Index]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Index]
	return &Rtree{
		tr: &tr,
	}
}

// Build. index every vertex of the graph. built once, never mutated afterwards.
func (rt *Rtree) Build(graph *datastructure.Graph, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	graph.ForVertices(func(v *datastructure.Vertex, percentage float64) {
		if math.Mod(percentage, 10) < 0.0001 {
			log.Info("Building R-tree spatial index...", zap.Float64("progress", percentage))
		}
		point := [2]float64{v.GetLon(), v.GetLat()}
		rt.tr.Insert(point, point, v.GetId())
	})

	log.Info("R-tree spatial index built.", zap.Int("vertices", graph.NumberOfVertices()))
}

// Nearest the closest indexed vertex to the query point, for any finite query,
// however far outside the network's bounding region. ok is false only on an
// empty index.
func (rt *Rtree) Nearest(qLat, qLon float64) (datastructure.Index, bool) {
	var (
		nearest datastructure.Index
		found   bool
	)

	q := [2]float64{qLon, qLat}
	rt.tr.Nearby(
		rtree.BoxDist[float64, datastructure.Index](q, q, nil),
		func(min, max [2]float64, data datastructure.Index, dist float64) bool {
			nearest = data
			found = true
			return false
		},
	)

	return nearest, found
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}
