package petite_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/advdv/petite"
	"github.com/advdv/petite/contenttype"
	"github.com/advdv/petite/markup"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

type echoParams struct {
	Name string
}

func (p *echoParams) Collect(key, value string) {
	if key == "name" {
		p.Name = value
	}
}

func newTestServer(t *testing.T, router petite.Router) (*petite.Server, *petite.TestLogger) {
	t.Helper()

	base, err := url.Parse("http://host/")
	require.NoError(t, err)

	logs := petite.NewTestLogger(t)
	return petite.NewServerWith(router, base, -1, logs), logs
}

func serve(srv http.Handler, method, target string) *httptest.ResponseRecorder {
	rec, req := httptest.NewRecorder(), httptest.NewRequest(method, target, nil)
	srv.ServeHTTP(rec, req)

	return rec
}

func TestServeResults(t *testing.T) {
	mux := petite.NewMux()
	mux.Index(petite.Redirect{Path: "start"})
	mux.Resolve("start", petite.HTML{Body: markup.Literal("<h1>start</h1>")})
	mux.Resolve("style.css", petite.Chars{Data: "p {}", ContentType: contenttype.CSS})
	mux.Resolve("blob", petite.Bytes{Data: []byte{0x01, 0x02}, ContentType: contenttype.BIN})
	mux.Delegate("echo", petite.HandleGet[echoParams](petite.GetHandlerFunc[echoParams](
		func(_ context.Context, _ []string, p echoParams) (petite.Result, error) {
			return petite.HTML{Body: markup.NewTemplate("<p>{name}</p>", markup.Bind("name", markup.Text(p.Name)))}, nil
		})))

	srv, logs := newTestServer(t, mux)

	t.Run("redirect on empty path", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/")
		require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		require.Equal(t, "http://host/start", rec.Header().Get("Location"))
	})

	t.Run("html", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/start")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "text/html", rec.Header().Get("Content-Type"))
		require.Equal(t, "<h1>start</h1>", rec.Body.String())
	})

	t.Run("trailing slash", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/start/")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("chars", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/style.css")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "text/css", rec.Header().Get("Content-Type"))
		require.Equal(t, "p {}", rec.Body.String())
	})

	t.Run("bytes", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/blob")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, contenttype.BIN, rec.Header().Get("Content-Type"))
		require.Equal(t, []byte{0x01, 0x02}, rec.Body.Bytes())
	})

	t.Run("escapes params", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/echo?name=%3Cscript%3E")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "<p>&lt;script&gt;</p>", rec.Body.String())
	})

	t.Run("unknown segment", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/nope")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Invalid request\n", rec.Body.String())
	})

	t.Run("non-get", func(t *testing.T) {
		for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodHead} {
			rec := serve(srv, method, "/start")
			require.Equal(t, http.StatusBadRequest, rec.Code, method)
		}
	})

	require.Zero(t, logs.NumLogServerError)
}

func TestServeErrors(t *testing.T) {
	underlying := errors.New("disk on fire")
	srv, logs := newTestServer(t, petite.RouterFunc(func(_ context.Context, path []string) petite.Decision {
		switch path[0] {
		case "missing":
			return petite.Fail(petite.NotFound("thing"))
		case "broken":
			return petite.Fail(underlying)
		case "template":
			return petite.Resolve(petite.HTML{Body: markup.Concat{
				markup.Literal("<p>partial"),
				markup.NewTemplate("{undefined}"),
			}})
		case "redirect":
			return petite.Resolve(petite.Redirect{Path: "%zz"})
		default:
			return petite.Resolve(nil)
		}
	}))

	rec := serve(srv, http.MethodGet, "/missing")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Not found\n", rec.Body.String())
	require.Zero(t, logs.NumLogServerError)

	for i, target := range []string{"/broken", "/template", "/redirect", "/nil"} {
		rec := serve(srv, http.MethodGet, target)
		require.Equal(t, http.StatusInternalServerError, rec.Code, target)
		require.Equal(t, "Server error\n", rec.Body.String(), target)
		require.Empty(t, rec.Header().Get("Location"), target)
		require.Equal(t, int64(i+1), logs.NumLogServerError, target)
	}

	require.NotContains(t, serve(srv, http.MethodGet, "/broken").Body.String(), "fire")
}

func TestServeBufferLimit(t *testing.T) {
	base, _ := url.Parse("http://host/")
	logs := petite.NewTestLogger(t)
	srv := petite.NewServerWith(petite.RouterFunc(func(context.Context, []string) petite.Decision {
		return petite.Resolve(petite.Chars{Data: "way too long", ContentType: contenttype.TXT})
	}), base, 4, logs)

	rec := serve(srv, http.MethodGet, "/x")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, petite.ServerText+"\n", rec.Body.String())
	require.Equal(t, int64(1), logs.NumLogServerError)
}

func TestServeErrorBodyIgnoresBufferLimit(t *testing.T) {
	base, _ := url.Parse("http://host/")
	srv := petite.NewServerWith(petite.RouterFunc(func(context.Context, []string) petite.Decision {
		return petite.Fail(petite.NotFound("page"))
	}), base, 4, petite.NewTestLogger(t))

	rec := serve(srv, http.MethodGet, "/x")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, petite.NotFoundText+"\n", rec.Body.String())
}

type failingWriter struct {
	*httptest.ResponseRecorder
}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestServeFlushErrorIsLogged(t *testing.T) {
	srv, logs := newTestServer(t, petite.RouterFunc(func(context.Context, []string) petite.Decision {
		return petite.Resolve(petite.Chars{Data: "hello", ContentType: contenttype.TXT})
	}))

	w := failingWriter{httptest.NewRecorder()}
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Equal(t, int64(1), logs.NumLogFlushError)

	// the server keeps serving after a failed write
	rec := serve(srv, http.MethodGet, "/x")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "hello", rec.Body.String())
}

func TestUseAfterServe(t *testing.T) {
	srv, _ := newTestServer(t, petite.NewMux())
	serve(srv, http.MethodGet, "/")

	require.PanicsWithValue(t, "petite: cannot call Use() after serving the first request", func() {
		srv.Use(petite.LogRequests(petite.NewTestLogger(t)))
	})
}
