package app

import (
	"context"
	"net"
	"net/http"

	"github.com/advdv/petite"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ServerConfig holds optional configuration for the HTTP server.
type ServerConfig struct {
	// Middleware runs inside the app's own middleware, closest to the router.
	Middleware []petite.Middleware
}

// ServerParams holds the dependencies for creating the petite server.
type ServerParams struct {
	fx.In

	Env     Environment
	Router  petite.Router
	Logger  *zap.Logger
	Metrics *Metrics
}

// NewPetiteServer creates the server for the application's router, with request logging, metrics and the
// request deadline installed as middleware.
func NewPetiteServer(params ServerParams, cfg ServerConfig) (*petite.Server, error) {
	base, err := ParseBaseURL(params.Env)
	if err != nil {
		return nil, err
	}

	logs := NewZapLogger(params.Logger)
	srv := petite.NewServerWith(params.Router, base, params.Env.bufferLimit(), logs)

	srv.Use(
		withRequestLogger(params.Logger),
		petite.LogRequests(logs),
		params.Metrics.Middleware(),
		WithRequestDeadline(params.Env.requestTimeout()),
	)
	srv.Use(cfg.Middleware...)

	return srv, nil
}

// HTTPServerParams holds the dependencies for creating the HTTP server.
type HTTPServerParams struct {
	fx.In

	Env        Environment
	Server     *petite.Server
	Metrics    *Metrics
	TracerProv trace.TracerProvider
	Propagator propagation.TextMapPropagator
}

// NewHTTPServer creates the HTTP server. Requests to PETITE_METRICS_PATH, when set, are answered with the
// metrics and are not traced; everything else goes to the petite server.
func NewHTTPServer(params HTTPServerParams) *http.Server {
	metricsPath := params.Env.metricsPath()

	var handler http.Handler = params.Server
	if metricsPath != "" {
		handler = withMetricsEndpoint(metricsPath, params.Metrics.Handler(), params.Server)
	}

	// Add tracing with explicit provider injection (no globals).
	handler = withTracing(params.TracerProv, params.Propagator, params.Env.serviceName(), metricsPath)(handler)

	tc := TimeoutConfig{RequestTimeout: params.Env.requestTimeout()}
	readHeaderTimeout, readTimeout, writeTimeout, idleTimeout := tc.ServerTimeouts()

	return &http.Server{
		Addr:              params.Env.addr(),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
}

// withMetricsEndpoint serves metrics at exactly path. It does not use http.ServeMux, which would clean and
// redirect paths before the router sees them.
func withMetricsEndpoint(path string, metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == path {
			metrics.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// startServerHook registers lifecycle hooks for the HTTP server. The listener is opened when the app starts,
// so an address that is taken fails the start instead of being logged later.
func startServerHook(lc fx.Lifecycle, server *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var lcfg net.ListenConfig
			ln, err := lcfg.Listen(ctx, "tcp", server.Addr)
			if err != nil {
				return errors.Wrapf(err, "listen on %q", server.Addr)
			}

			logger.Info("starting server", zap.String("addr", ln.Addr().String()))
			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return server.Shutdown(ctx)
		},
	})
}
