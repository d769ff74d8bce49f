package petite

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Router decides, from the path segments alone, how a request is answered. It either resolves the request
// directly or delegates it to a [Dispatcher]. Routing never looks at the query string.
type Router interface {
	Route(ctx context.Context, path []string) Decision
}

// RouterFunc allows a function to implement [Router].
type RouterFunc func(ctx context.Context, path []string) Decision

// Route implements the [Router] interface.
func (f RouterFunc) Route(ctx context.Context, path []string) Decision {
	return f(ctx, path)
}

// Dispatcher identifies a handler that needs the query parameters. It parses rawQuery into the handler's own
// parameter type and invokes the handler exactly once.
type Dispatcher interface {
	Dispatch(ctx context.Context, path []string, rawQuery string) (Result, error)
}

// Decision is the outcome of routing: either a terminal result or error, or a dispatcher together with the
// path that remains after the segments the router consumed.
type Decision struct {
	result  Result
	err     error
	handler Dispatcher
	rest    []string
}

// Resolve answers the request with res without invoking a handler.
func Resolve(res Result) Decision { return Decision{result: res} }

// Fail answers the request with err without invoking a handler.
func Fail(err error) Decision { return Decision{err: err} }

// Delegate selects h to handle the request, passing it the remaining path.
func Delegate(h Dispatcher, rest []string) Decision { return Decision{handler: h, rest: rest} }

// NeedsHandler reports whether answering the request requires dispatching to a handler.
func (d Decision) NeedsHandler() bool { return d.handler != nil }

// Dispatch completes the request. A resolved decision returns its result or error unchanged. Otherwise only
// GET requests reach the handler; other methods fail with [CodeInvalid] before the query is parsed.
func (d Decision) Dispatch(ctx context.Context, method, rawQuery string) (Result, error) {
	if d.handler == nil {
		return d.result, d.err
	}

	if method != http.MethodGet {
		return nil, NewError(CodeInvalid, errors.Newf("method %s not supported", method))
	}

	return d.handler.Dispatch(ctx, d.rest, rawQuery)
}

// GetHandler handles GET requests given the remaining path and the decoded parameters. The strings in path and
// params are decoded and may contain any character, including '/' and '?'; validate them before building
// filesystem paths from them.
type GetHandler[P any] interface {
	HandleGet(ctx context.Context, path []string, params P) (Result, error)
}

// GetHandlerFunc allows a function to implement [GetHandler].
type GetHandlerFunc[P any] func(ctx context.Context, path []string, params P) (Result, error)

// HandleGet implements the [GetHandler] interface.
func (f GetHandlerFunc[P]) HandleGet(ctx context.Context, path []string, params P) (Result, error) {
	return f(ctx, path, params)
}

// HandleGet turns a typed handler into a [Dispatcher]. A fresh P is built from the query string on every
// dispatch, through the Collect method of *P.
func HandleGet[P any, PP interface {
	*P
	Collector
}](h GetHandler[P]) Dispatcher {
	return getDispatcher[P, PP]{h}
}

type getDispatcher[P any, PP interface {
	*P
	Collector
}] struct {
	h GetHandler[P]
}

func (d getDispatcher[P, PP]) Dispatch(ctx context.Context, path []string, rawQuery string) (Result, error) {
	var params P
	if err := ParseQuery(rawQuery, PP(&params)); err != nil {
		return nil, err
	}

	return d.h.HandleGet(ctx, path, params)
}
