package petite_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/advdv/petite"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapWithoutMiddleware(t *testing.T) {
	e := petite.EndpointFunc(func(context.Context, *petite.Request) (petite.Result, error) { return nil, nil })
	require.Equal(t, fmt.Sprint(e), fmt.Sprint(petite.Wrap(e)))
}

func TestWrapOrder(t *testing.T) {
	var res string
	inner := petite.EndpointFunc(func(context.Context, *petite.Request) (petite.Result, error) {
		res += "inner"
		return nil, errors.New("inner error")
	})

	mw := func(name string) petite.Middleware {
		return func(next petite.Endpoint) petite.Endpoint {
			return petite.EndpointFunc(func(ctx context.Context, r *petite.Request) (petite.Result, error) {
				res += name + "("
				out, err := next.ServePetite(ctx, r)
				res += ")" + name
				return out, errors.Wrap(err, name)
			})
		}
	}

	_, err := petite.Wrap(inner, mw("1"), mw("2")).ServePetite(context.Background(), &petite.Request{})
	require.Equal(t, "1(2(inner)2)1", res)
	require.EqualError(t, err, "1: 2: inner error")
}

func TestLogRequestsMiddleware(t *testing.T) {
	logs := petite.NewTestLogger(t)
	srv, _ := newTestServer(t, petite.NewMux())
	srv.Use(petite.LogRequests(logs))

	serve(srv, http.MethodGet, "/a?b=c")
	serve(srv, http.MethodPost, "/")
	require.Equal(t, int64(2), logs.NumLogRequest)
}

func TestMiddlewareCanReplaceResult(t *testing.T) {
	srv, _ := newTestServer(t, petite.NewMux())
	srv.Use(func(next petite.Endpoint) petite.Endpoint {
		return petite.EndpointFunc(func(ctx context.Context, r *petite.Request) (petite.Result, error) {
			if r.URL.Path == "/maintenance" {
				return petite.Chars{Data: "down", ContentType: "text/plain"}, nil
			}
			return next.ServePetite(ctx, r)
		})
	})

	rec := serve(srv, http.MethodGet, "/maintenance")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "down", rec.Body.String())
}
