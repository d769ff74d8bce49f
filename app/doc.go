// Package app provides a batteries-included way to run a petite router as an HTTP service.
//
// # Overview
//
// app handles the boilerplate of serving a [petite.Router]: environment parsing, structured logging,
// OpenTelemetry tracing, Prometheus metrics and graceful shutdown. A complete application can be created in a
// single call:
//
//	app.NewApp[Env](func(rt *app.Runtime[Env]) *guestbook.Guestbook {
//	    return guestbook.New(rt.BaseURL(), os.DirFS(rt.Env().PhotoDir))
//	}).Run()
//
// # Environment Configuration
//
// Define your environment by embedding [BaseEnvironment]:
//
//	type Env struct {
//	    app.BaseEnvironment
//	    PhotoDir string `env:"GUESTBOOK_PHOTO_DIR"`
//	}
//
// BaseEnvironment provides the following environment variables:
//
//	| Variable               | Default        | Description                                        |
//	|------------------------|----------------|----------------------------------------------------|
//	| PETITE_ADDR            | localhost:8080 | Address the HTTP server listens on                 |
//	| PETITE_BASE_URL        | http://<addr>/ | URL redirects are resolved against, ends in "/"    |
//	| PETITE_SERVICE_NAME    | petite         | Service name for logging and tracing               |
//	| PETITE_LOG_LEVEL       | info           | Log level (debug, info, warn, error)               |
//	| PETITE_OTEL_EXPORTER   | none           | Trace exporter: "none" or "stdout"                 |
//	| PETITE_METRICS_PATH    | -              | Path the metrics are served at, disabled if empty  |
//	| PETITE_BUFFER_LIMIT    | -1             | Response buffer limit in bytes, -1 for unlimited   |
//	| PETITE_REQUEST_TIMEOUT | 30s            | Deadline for a single request, 0 to disable        |
//
// # Runtime
//
// [Runtime] provides access to app-scoped dependencies and can be requested by the router constructor:
//   - [Runtime.Env] returns the typed environment configuration
//   - [Runtime.URL] builds absolute URLs below the base URL
//
// # Logging and tracing
//
// Every request is traced with otelhttp, spans are named after the method and path. Routers and handlers get a
// trace-correlated logger with [Log] and the current span with [Span]:
//
//	func (h thank) HandleGet(ctx context.Context, path []string, p thankParams) (petite.Result, error) {
//	    app.Log(ctx).Info("greeting stored", zap.String("name", p.Name))
//	    // ...
//	}
//
// # Testing
//
// Package apptest builds the same DI graph with fxtest, so a test fails on DI errors instead of exiting.
package app
