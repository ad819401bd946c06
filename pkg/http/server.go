package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/evnav/evnav/pkg/http/router"
	"github.com/evnav/evnav/pkg/http/router/controllers"
	http_server "github.com/evnav/evnav/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger

	g *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	routingService controllers.RoutingService,

) (*Server, error) {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "1000s")
	viper.SetDefault("API_RATE_LIMIT_RPS", 100.0)
	viper.SetDefault("API_RATE_LIMIT_BURST", 200)
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "120s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "10s")

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(log)

	s.g = &errgroup.Group{}

	s.g.Go(func() error {
		return server.Run(
			ctx, config, log,
			useRateLimit, routingService,
		)
	})

	return s, nil
}

// GracefulShutdown blocks until SIGINT or SIGTERM, or until the server itself
// stops running. a failed startup (e.g. port already bound) surfaces here as a
// non-nil error instead of hanging on the signal wait.
func (s *Server) GracefulShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	runErr := make(chan error, 1)
	go func() {
		runErr <- s.g.Wait()
	}()

	select {
	case sig := <-quit:
		s.Log.Info("shutdown signal received", zap.String("signal", sig.String()))
		return nil
	case err := <-runErr:
		return err
	}
}
