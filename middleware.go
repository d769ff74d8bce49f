package petite

import (
	"context"
	"net/url"
)

// Request is what the routing layer sees of an HTTP request.
type Request struct {
	Method     string
	URL        *url.URL
	RemoteAddr string
}

// Endpoint produces the result for a request. The server's own endpoint decodes the path, routes and
// dispatches; middleware wraps it.
type Endpoint interface {
	ServePetite(ctx context.Context, r *Request) (Result, error)
}

// EndpointFunc allows casting a function to implement [Endpoint].
type EndpointFunc func(ctx context.Context, r *Request) (Result, error)

// ServePetite implements the [Endpoint] interface.
func (f EndpointFunc) ServePetite(ctx context.Context, r *Request) (Result, error) {
	return f(ctx, r)
}

// Middleware for cross-cutting concerns around routing and dispatch.
type Middleware func(Endpoint) Endpoint

// Wrap takes the inner endpoint e and wraps it with middleware. The order is that of the Gorilla and Chi router.
// That is: the middleware provided first is called first and is the "outer" most wrapping, the middleware
// provided last will be the "inner most" wrapping (closest to the router).
func Wrap(e Endpoint, m ...Middleware) Endpoint {
	if len(m) < 1 {
		return e
	}

	wrapped := e
	for i := len(m) - 1; i >= 0; i-- {
		wrapped = m[i](wrapped)
	}

	return wrapped
}

// LogRequests reports every request to logs before it is routed.
func LogRequests(logs Logger) Middleware {
	return func(next Endpoint) Endpoint {
		return EndpointFunc(func(ctx context.Context, r *Request) (Result, error) {
			logs.LogRequest(r)
			return next.ServePetite(ctx, r)
		})
	}
}
