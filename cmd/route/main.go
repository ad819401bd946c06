package main

import (
	"flag"
	"fmt"

	"github.com/evnav/evnav/pkg/datastructure"
	"github.com/evnav/evnav/pkg/energy"
	"github.com/evnav/evnav/pkg/engine/routing"
	"github.com/evnav/evnav/pkg/geo"
	"github.com/evnav/evnav/pkg/http/usecases"
	"github.com/evnav/evnav/pkg/logger"
)

var (
	graphFile = flag.String("graph", "./data/road_network.graph", "road network graph file")
	origLat   = flag.Float64("origin_lat", 39.754372, "origin latitude")
	origLon   = flag.Float64("origin_lon", -104.994300, "origin longitude")
	dstLat    = flag.Float64("destination_lat", 39.779098, "destination latitude")
	dstLon    = flag.Float64("destination_lon", -104.951241, "destination longitude")
	criterion = flag.String("criterion", "distance", "distance, time or energy")
	modelKey  = flag.String("model_key", "", "energy model key (energy criterion only)")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	graph, err := datastructure.ReadGraph(*graphFile)
	if err != nil {
		panic(err)
	}

	routingEngine, err := routing.NewRoutingEngine(graph, energy.DefaultModelCollection(), logger)
	if err != nil {
		panic(err)
	}

	weight, err := usecases.ParseCriterion(*criterion)
	if err != nil {
		panic(err)
	}

	path, totalWeight, err := routingEngine.ShortestPath(
		geo.NewCoordinate(*origLat, *origLon), geo.NewCoordinate(*dstLat, *dstLon),
		weight, *modelKey)
	if err != nil {
		panic(err)
	}

	fmt.Printf("path with %d nodes, total %s weight %f\n", len(path), weight, totalWeight)
	for _, c := range path {
		fmt.Printf("%f,%f\n", c.Lat, c.Lon)
	}
	fmt.Printf("polyline: %s\n", geo.PolylineFromCoords(path))
}
