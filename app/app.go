package app

import (
	"context"

	"github.com/advdv/petite"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// App wraps an fx.App for lifecycle management.
type App struct {
	app *fx.App
}

// AppConfig holds configuration for the app.
type AppConfig struct {
	ServerConfig
	FxOptions []fx.Option
}

// Option configures the App.
type Option func(*AppConfig)

// WithFx adds fx options for dependency injection.
func WithFx(fxOpts ...fx.Option) Option {
	return func(c *AppConfig) {
		c.FxOptions = append(c.FxOptions, fxOpts...)
	}
}

// WithMiddleware adds middleware around the router. It runs after the app's own middleware, so it sees the
// request logger and the request deadline.
func WithMiddleware(mw ...petite.Middleware) Option {
	return func(c *AppConfig) {
		c.Middleware = append(c.Middleware, mw...)
	}
}

// FxOptions returns the fx options that make up the app's DI graph. The router constructor can request any
// type provided through the graph, such as the environment, the [Runtime] or the [zap.Logger], and must
// return a type that implements [petite.Router].
func FxOptions[E Environment](router any, opts ...Option) []fx.Option {
	var cfg AppConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	baseOpts := make([]fx.Option, 0, 14+len(cfg.FxOptions))
	baseOpts = append(baseOpts, []fx.Option{
		fx.NopLogger,
		fx.Provide(ParseEnv[E]()),
		fx.Provide(func(e E) Environment { return e }),
		fx.Provide(NewRuntime[E]),
		fx.Provide(func(e E) (*zap.Logger, error) { return NewLogger(e) }),
		fx.Provide(NewTracerProvider),
		fx.Provide(NewPropagator),
		fx.Provide(NewMetrics),
		fx.Provide(fx.Annotate(router, fx.As(new(petite.Router)))),
		fx.Supply(cfg.ServerConfig),
		fx.Provide(NewPetiteServer),
		fx.Provide(NewHTTPServer),
		fx.Invoke(startServerHook),
	}...)

	return append(baseOpts, cfg.FxOptions...)
}

// NewApp creates a batteries-included app with dependency injection.
//
// Example:
//
//	app.NewApp[Env](func(rt *app.Runtime[Env]) *guestbook.Guestbook {
//	    return guestbook.New(rt.BaseURL(), os.DirFS(rt.Env().PhotoDir))
//	}).Run()
func NewApp[E Environment](router any, opts ...Option) *App {
	return &App{
		app: fx.New(FxOptions[E](router, opts...)...),
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() {
	a.app.Run()
}

// Start starts the application with the given context, and stops it when the context is done.
func (a *App) Start(ctx context.Context) error {
	if err := a.app.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.app.StopTimeout())
	defer cancel()

	return a.app.Stop(stopCtx)
}

// Err returns an error when the DI graph could not be built.
func (a *App) Err() error {
	return a.app.Err()
}
