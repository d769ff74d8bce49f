package petite

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/cockroachdb/errors"
)

// Server serves a [Router] over HTTP. Requests are handled one at a time: each is routed, dispatched, rendered
// and flushed before the next one starts, so state owned by the router needs no locking of its own. A handler
// that never returns stalls the server.
type Server struct {
	router   Router
	base     *url.URL
	logs     Logger
	bufLimit int

	mu          sync.Mutex
	endpoint    Endpoint
	middlewares struct {
		captured bool
		buffered []Middleware
	}
}

// NewServer creates a server with default settings. Redirects are resolved against base.
func NewServer(router Router, base *url.URL) *Server {
	return NewServerWith(router, base, -1, NewStdLogger(nil))
}

// NewServerWith creates a server with custom settings.
func NewServerWith(router Router, base *url.URL, bufLimit int, logger Logger) *Server {
	return &Server{
		router:   router,
		base:     base,
		logs:     logger,
		bufLimit: bufLimit,
	}
}

// BaseURL returns the URL that redirects are resolved against.
func (s *Server) BaseURL() *url.URL { return s.base }

// Use allows providing of middleware.
func (s *Server) Use(mw ...Middleware) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.middlewares.captured {
		panic("petite: cannot call Use() after serving the first request")
	}

	s.middlewares.buffered = append(s.middlewares.buffered, mw...)
}

// ServeHTTP makes the server implement the http.Handler interface.
func (s *Server) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.middlewares.captured {
		s.middlewares.captured = true
		s.endpoint = Wrap(EndpointFunc(s.serve), s.middlewares.buffered...)
	}

	bresp := NewResponseWriter(resp, s.bufLimit)
	defer bresp.Free()

	res, err := s.endpoint.ServePetite(req.Context(), &Request{
		Method:     req.Method,
		URL:        req.URL,
		RemoteAddr: req.RemoteAddr,
	})

	Respond(bresp, s.base, res, err, s.logs)

	if err := bresp.FlushBuffer(); err != nil {
		s.logs.LogFlushError(err)
	}
}

// serve decodes the path, routes and, when the router asks for it, dispatches.
func (s *Server) serve(ctx context.Context, r *Request) (Result, error) {
	if r.Method != http.MethodGet {
		return nil, NewError(CodeInvalid, errors.Newf("method %s not supported", r.Method))
	}

	path, err := SplitPath(r.URL)
	if err != nil {
		return nil, err
	}

	return s.router.Route(ctx, path).Dispatch(ctx, r.Method, r.URL.RawQuery)
}
