package routing

import (
	"github.com/evnav/evnav/pkg"
	"github.com/evnav/evnav/pkg/costfunction"
	da "github.com/evnav/evnav/pkg/datastructure"
)

// Dijkstra single-pair shortest path over non-negative edge weights. edges
// whose weight under the chosen criterion is infinite (missing energy
// features, degenerate raw attributes) are never relaxed, so they behave as
// removed from the graph rather than crashing or skewing the search.
type Dijkstra struct {
	graph        *da.Graph
	costFunction costfunction.CostFunction

	dist       []float64
	parent     []da.Index
	parentEdge []da.Index
	heapNodes  []*da.PriorityQueueNode[da.Index]

	pq *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewDijkstra(graph *da.Graph, costFunction costfunction.CostFunction) *Dijkstra {
	return &Dijkstra{
		graph:        graph,
		costFunction: costFunction,
		pq:           da.NewFourAryHeap[da.Index](),
	}
}

// ShortestPath vertex sequence from s to t (inclusive) and its total weight.
// ties between equal-cost paths resolve to the first discovered one, which is
// deterministic for a fixed graph. found is false when t is unreachable.
func (d *Dijkstra) ShortestPath(s, t da.Index) ([]da.Index, float64, bool) {
	d.preallocate()

	sNode := da.NewPriorityQueueNode(0, s)
	d.heapNodes[s] = sNode
	d.dist[s] = 0
	d.pq.Insert(sNode)

	for !d.pq.IsEmpty() {
		u, err := d.pq.ExtractMin()
		if err != nil {
			break
		}
		d.numSettledNodes++

		if u == t {
			break
		}

		d.relaxOutEdges(u)
	}

	if d.dist[t] >= pkg.INF_WEIGHT {
		return nil, pkg.INF_WEIGHT, false
	}

	return d.buildPath(s, t), d.dist[t], true
}

func (d *Dijkstra) relaxOutEdges(u da.Index) {
	d.graph.ForOutEdgesOf(u, func(e *da.OutEdge) {
		edgeWeight := d.costFunction.GetWeight(e.GetEdgeId())
		if edgeWeight >= pkg.INF_WEIGHT {
			return
		}

		v := e.GetHead()
		newDist := d.dist[u] + edgeWeight
		if newDist >= d.dist[v] {
			return
		}

		d.parent[v] = u
		d.parentEdge[v] = e.GetEdgeId()

		if d.heapNodes[v] != nil {
			d.dist[v] = newDist
			d.pq.DecreaseKey(d.heapNodes[v], newDist)
		} else {
			d.dist[v] = newDist
			vNode := da.NewPriorityQueueNode(newDist, v)
			d.heapNodes[v] = vNode
			d.pq.Insert(vNode)
		}
	})
}

func (d *Dijkstra) buildPath(s, t da.Index) []da.Index {
	path := make([]da.Index, 0, 16)
	for v := t; v != s; v = d.parent[v] {
		path = append(path, v)
	}
	path = append(path, s)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathEdges the edge ids of the last computed path, in path order.
func (d *Dijkstra) PathEdges(path []da.Index) []da.Index {
	if len(path) < 2 {
		return nil
	}
	edges := make([]da.Index, 0, len(path)-1)
	for _, v := range path[1:] {
		edges = append(edges, d.parentEdge[v])
	}
	return edges
}

func (d *Dijkstra) NumSettledNodes() int {
	return d.numSettledNodes
}

func (d *Dijkstra) preallocate() {
	n := d.graph.NumberOfVertices()
	d.dist = make([]float64, n)
	d.parent = make([]da.Index, n)
	d.parentEdge = make([]da.Index, n)
	d.heapNodes = make([]*da.PriorityQueueNode[da.Index], n)
	for i := 0; i < n; i++ {
		d.dist[i] = pkg.INF_WEIGHT
		d.parent[i] = da.INVALID_VERTEX_ID
		d.parentEdge[i] = da.INVALID_VERTEX_ID
	}
	d.pq.Preallocate(n)
	d.numSettledNodes = 0
}
