package app

import (
	"net/url"

	"github.com/advdv/petite"
)

// Runtime provides access to app-scoped dependencies.
// Inject this into router constructors via fx instead of reading the environment again.
//
// Example:
//
//	func NewRouter(rt *app.Runtime[Env]) petite.Router {
//	    home := rt.URL("start") // absolute link for e-mails and feeds
//	    // ...
//	}
type Runtime[E Environment] struct {
	env  E
	base *url.URL
}

// NewRuntime creates a new Runtime with the given dependencies.
func NewRuntime[E Environment](env E) (*Runtime[E], error) {
	base, err := ParseBaseURL(env)
	if err != nil {
		return nil, err
	}

	return &Runtime[E]{env: env, base: base}, nil
}

// Env returns the environment configuration.
func (r *Runtime[E]) Env() E {
	return r.env
}

// BaseURL returns a copy of the URL the router is served at. It always ends in a slash.
func (r *Runtime[E]) BaseURL() *url.URL {
	return r.base.JoinPath()
}

// URL returns the absolute URL of the path made of segments, each encoded as by [petite.Reverse].
func (r *Runtime[E]) URL(segments ...string) *url.URL {
	return r.base.JoinPath(petite.Reverse(segments...))
}
