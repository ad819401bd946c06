package main

import (
	"context"
	"flag"

	"github.com/evnav/evnav/pkg/datastructure"
	"github.com/evnav/evnav/pkg/energy"
	"github.com/evnav/evnav/pkg/engine/routing"
	"github.com/evnav/evnav/pkg/http"
	"github.com/evnav/evnav/pkg/http/usecases"
	"github.com/evnav/evnav/pkg/logger"
	"github.com/evnav/evnav/pkg/util"
	"go.uber.org/zap"
)

var (
	graphFile    = flag.String("graph", "./data/road_network.graph", "road network graph file")
	useRateLimit = flag.Bool("rate_limit", false, "enable api rate limiting")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Warn("no config file found, using defaults", zap.Error(err))
	}

	graph, err := datastructure.ReadGraph(*graphFile)
	if err != nil {
		panic(err)
	}

	routingEngine, err := routing.NewRoutingEngine(graph, energy.DefaultModelCollection(), logger)
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)

	routingService := usecases.NewRoutingService(logger, routingEngine)
	ctx, cleanup := NewContext()
	_, err = api.Use(ctx, logger, *useRateLimit, routingService)
	if err != nil {
		panic(err)
	}

	if err := api.GracefulShutdown(); err != nil {
		logger.Error("server terminated", zap.Error(err))
	}
	logger.Info("evnav routing engine server stopped")
	cleanup()
}

func NewContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb
}
