package router

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/evnav/evnav/pkg/http/router/controllers"
	"github.com/evnav/evnav/pkg/http/router/routerhelper"
	http_server "github.com/evnav/evnav/pkg/http/server"
	"github.com/spf13/viper"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "net/http/pprof"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

//	@title			evnav API
//	@version		1.0
//	@description	energy-aware shortest path routing over an osm road network.

// @host		localhost
// @BasePath	/api
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	log *zap.Logger,

	useRateLimit bool,
	routingService controllers.RoutingService,
) error {
	log.Info("Run httprouter API")

	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	router.GET("/doc/*any", swaggerHandler)
	router.Handler(http.MethodGet, "/debug/pprof/*item", http.DefaultServeMux)

	group := routerhelper.NewRouteGroup(router, "/api")

	routingRoutes := controllers.New(routingService, log)
	routingRoutes.Routes(group)
	group.GET("/ws", routingRoutes.RouteStream)

	var mwChain []alice.Constructor
	if useRateLimit {
		mwChain = append(mwChain, api.rateLimit)
	}
	mwChain = append(mwChain, corsHandler.Handler)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: alice.New(mwChain...).Then(router),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},

		ReadTimeout:       viper.GetDuration("HTTP_SERVER_READ_TIMEOUT"),
		WriteTimeout:      config.Timeout + viper.GetDuration("HTTP_SERVER_WRITE_TIMEOUT"),
		IdleTimeout:       viper.GetDuration("HTTP_SERVER_IDLE_TIMEOUT"),
		ReadHeaderTimeout: viper.GetDuration("HTTP_SERVER_READ_HEADER_TIMEOUT"),
	}

	errChan := make(chan error, 1)
	go func() {
		api.log.Info(fmt.Sprintf("API running on port %d", config.Port))
		errChan <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return server.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// rateLimit token bucket shared by all clients.
func (api *API) rateLimit(next http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(viper.GetFloat64("API_RATE_LIMIT_RPS")),
		viper.GetInt("API_RATE_LIMIT_BURST"))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func swaggerHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httpSwagger.WrapHandler(w, r)
}
