package main

import (
	"flag"

	"github.com/evnav/evnav/pkg/logger"
	"github.com/evnav/evnav/pkg/osmparser"
	"go.uber.org/zap"
)

var (
	mapFile = flag.String("map", "./data/denver_downtown.osm.pbf", "openstreetmap pbf extract")
	outFile = flag.String("out", "./data/road_network.graph", "output graph file")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	parser := osmparser.NewOsmParser()
	graph, err := parser.Parse(*mapFile, logger)
	if err != nil {
		panic(err)
	}

	if err := graph.WriteGraph(*outFile); err != nil {
		panic(err)
	}
	logger.Info("graph written", zap.String("file", *outFile),
		zap.Int("vertices", graph.NumberOfVertices()), zap.Int("edges", graph.NumberOfEdges()))
}
