package app

import (
	"context"
	"time"

	"github.com/advdv/petite"
)

// TimeoutConfig holds timeout configuration for the HTTP server.
type TimeoutConfig struct {
	// RequestTimeout bounds how long a single request may take, from reading it to writing the response.
	RequestTimeout time.Duration
}

// ServerTimeouts returns the http.Server timeout values. A non-positive RequestTimeout disables them.
//
// Requests are handled one at a time, so a slow client holding a connection open does not block others, but a
// slow handler does. The per-request deadline set by [WithRequestDeadline] is what bounds the handler.
func (tc TimeoutConfig) ServerTimeouts() (readHeaderTimeout, readTimeout, writeTimeout, idleTimeout time.Duration) {
	timeout := tc.RequestTimeout
	if timeout <= 0 {
		return 0, 0, 0, 0
	}

	readHeaderTimeout = min(timeout, 5*time.Second)
	readTimeout = timeout
	writeTimeout = timeout
	idleTimeout = 2 * timeout

	return
}

// WithRequestDeadline returns middleware that gives routers and handlers a context with a deadline of timeout
// from the start of the request. A non-positive timeout leaves the context unchanged.
func WithRequestDeadline(timeout time.Duration) petite.Middleware {
	return func(next petite.Endpoint) petite.Endpoint {
		if timeout <= 0 {
			return next
		}

		return petite.EndpointFunc(func(ctx context.Context, r *petite.Request) (petite.Result, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return next.ServePetite(ctx, r)
		})
	}
}

// RequestRemainingTime returns the duration until the request context deadline.
// Returns 0 if no deadline is set or if the deadline has passed.
func RequestRemainingTime(ctx context.Context) time.Duration {
	deadline, ok := ctx.Deadline()
	if !ok {
		return 0
	}
	remaining := time.Until(deadline)
	if remaining < 0 {
		return 0
	}
	return remaining
}
