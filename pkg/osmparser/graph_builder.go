package osmparser

import (
	"context"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/evnav/evnav/pkg"
	"github.com/evnav/evnav/pkg/datastructure"
	"github.com/evnav/evnav/pkg/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

type nodeCoord struct {
	lat float64
	lon float64
}

type osmWay struct {
	nodes  []int64
	oneWay bool
	kph    float64
}

// OsmParser builds a routable graph from an .osm.pbf extract. ways keep their
// tagged maxspeed or fall back to a per-highway-class default; edge lengths
// come from s2 great-circle distance. osm carries no elevation, so grade is
// NaN on every imported edge and the energy precomputation's missing-feature
// policy applies until a grade source is joined in.
type OsmParser struct {
	wayNodeCount map[int64]int
	nodeCoords   map[int64]nodeCoord
	nodeIDMap    map[int64]datastructure.Index
	ways         []osmWay
}

func NewOsmParser() *OsmParser {
	return &OsmParser{
		wayNodeCount: make(map[int64]int),
		nodeCoords:   make(map[int64]nodeCoord),
		nodeIDMap:    make(map[int64]datastructure.Index),
		ways:         make([]osmWay, 0),
	}
}

func (p *OsmParser) Parse(mapFile string, log *zap.Logger) (*datastructure.Graph, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// first pass: accepted ways and their node usage counts
	scanner := osmpbf.New(context.Background(), f, runtime.NumCPU())
	countWays := 0
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeWay {
			continue
		}
		way := o.(*osm.Way)
		if len(way.Nodes) < 2 || !acceptOsmWay(way) {
			continue
		}
		countWays++

		nodes := make([]int64, 0, len(way.Nodes))
		for _, n := range way.Nodes {
			nodes = append(nodes, int64(n.ID))
			p.wayNodeCount[int64(n.ID)]++
		}
		p.ways = append(p.ways, osmWay{
			nodes:  nodes,
			oneWay: isOneWay(way),
			kph:    waySpeed(way),
		})
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, err
	}
	scanner.Close()
	log.Info("scanned osm ways", zap.Int("accepted", countWays))

	// second pass: coordinates of the nodes those ways reference
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	scanner = osmpbf.New(context.Background(), f, runtime.NumCPU())
	defer scanner.Close()
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node := o.(*osm.Node)
		if _, used := p.wayNodeCount[int64(node.ID)]; !used {
			continue
		}
		p.nodeCoords[int64(node.ID)] = nodeCoord{lat: node.Lat, lon: node.Lon}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Info("scanned osm nodes", zap.Int("accepted", len(p.nodeCoords)))

	return p.buildGraph(log), nil
}

func (p *OsmParser) buildGraph(log *zap.Logger) *datastructure.Graph {
	vertices := make([]datastructure.Vertex, 0, len(p.nodeCoords))
	edges := make([]datastructure.OutEdge, 0, len(p.ways)*2)

	vertexOf := func(osmId int64) (datastructure.Index, bool) {
		if id, ok := p.nodeIDMap[osmId]; ok {
			return id, true
		}
		coord, ok := p.nodeCoords[osmId]
		if !ok {
			// node referenced by a way but missing from the extract
			return datastructure.INVALID_VERTEX_ID, false
		}
		id := datastructure.Index(len(vertices))
		p.nodeIDMap[osmId] = id
		vertices = append(vertices, datastructure.NewVertex(id, coord.lat, coord.lon, osmId))
		return id, true
	}

	for _, way := range p.ways {
		for i := 0; i+1 < len(way.nodes); i++ {
			from, okFrom := vertexOf(way.nodes[i])
			to, okTo := vertexOf(way.nodes[i+1])
			if !okFrom || !okTo {
				continue
			}

			fromLat, fromLon := vertices[from].GetLat(), vertices[from].GetLon()
			toLat, toLon := vertices[to].GetLat(), vertices[to].GetLon()
			meters := geo.CalculateS2Distance(
				geo.NewCoordinate(fromLat, fromLon), geo.NewCoordinate(toLat, toLon))

			edges = append(edges, datastructure.NewOutEdge(from, to, meters, way.kph, math.NaN()))
			if !way.oneWay {
				edges = append(edges, datastructure.NewOutEdge(to, from, meters, way.kph, math.NaN()))
			}
		}
	}

	log.Info("osm graph built", zap.Int("vertices", len(vertices)), zap.Int("edges", len(edges)))
	return datastructure.NewGraph(vertices, edges)
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	if highway == "" {
		return false
	}
	switch highway {
	case "footway", "pedestrian", "path", "cycleway", "steps", "bridleway",
		"construction", "proposed", "bus_guideway", "escape", "corridor", "elevator":
		return false
	}
	if way.Tags.Find("area") == "yes" {
		return false
	}
	return true
}

func isOneWay(way *osm.Way) bool {
	switch way.Tags.Find("oneway") {
	case "yes", "1", "true":
		return true
	}
	// motorways and roundabouts are implicitly oneway
	if way.Tags.Find("highway") == "motorway" || way.Tags.Find("junction") == "roundabout" {
		return true
	}
	return false
}

// waySpeed free-flow speed in kph from the maxspeed tag, falling back to the
// highway-class default.
func waySpeed(way *osm.Way) float64 {
	maxspeed := strings.TrimSpace(way.Tags.Find("maxspeed"))
	if maxspeed != "" {
		mph := false
		if strings.HasSuffix(maxspeed, "mph") {
			mph = true
			maxspeed = strings.TrimSpace(strings.TrimSuffix(maxspeed, "mph"))
		}
		if speed, err := strconv.ParseFloat(maxspeed, 64); err == nil && speed > 0 {
			if mph {
				return speed / pkg.KPH_TO_MPH
			}
			return speed
		}
	}

	return pkg.GetDefaultSpeed(pkg.GetHighwayType(way.Tags.Find("highway")))
}
