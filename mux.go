package petite

import (
	"context"
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Mux is a [Router] that decides on the leading path segment. Each segment either resolves to a fixed result,
// delegates to a [Dispatcher], or hands the rest of the path to another router. Unknown segments are invalid.
type Mux struct {
	index  Result
	routes map[string]muxRoute
}

type muxRoute struct {
	result     Result
	dispatcher Dispatcher
	router     Router
}

// NewMux creates an empty mux.
func NewMux() *Mux {
	return &Mux{routes: make(map[string]muxRoute)}
}

// Index sets the result for the empty path, typically a [Redirect].
func (m *Mux) Index(res Result) {
	m.index = res
}

// Resolve answers requests whose leading segment is seg with res. The same value is returned for every request,
// so res must not be a [File].
func (m *Mux) Resolve(seg string, res Result) {
	if _, ok := res.(File); ok {
		panic("petite: a file result cannot be shared between requests")
	}

	m.handle(seg, muxRoute{result: res})
}

// Delegate dispatches requests whose leading segment is seg to d, with the remaining segments as path.
func (m *Mux) Delegate(seg string, d Dispatcher) {
	m.handle(seg, muxRoute{dispatcher: d})
}

// Mount routes requests whose leading segment is seg with r, which sees the remaining segments.
func (m *Mux) Mount(seg string, r Router) {
	m.handle(seg, muxRoute{router: r})
}

// Route implements the [Router] interface.
func (m *Mux) Route(ctx context.Context, path []string) Decision {
	if len(path) == 0 {
		if m.index == nil {
			return Fail(Invalid("empty path"))
		}

		return Resolve(m.index)
	}

	rt, ok := m.routes[path[0]]
	switch {
	case !ok:
		return Fail(NewError(CodeInvalid, errors.Newf("no route for segment %q", path[0])))
	case rt.dispatcher != nil:
		return Delegate(rt.dispatcher, path[1:])
	case rt.router != nil:
		return rt.router.Route(ctx, path[1:])
	default:
		return Resolve(rt.result)
	}
}

// Segments returns the routed leading segments in sorted order.
func (m *Mux) Segments() []string {
	segs := lo.Keys(m.routes)
	slices.Sort(segs)

	return segs
}

func (m *Mux) handle(seg string, rt muxRoute) {
	if _, exists := m.routes[seg]; exists {
		panic(fmt.Sprintf("petite: segment %q is already routed", seg))
	}

	m.routes[seg] = rt
}
