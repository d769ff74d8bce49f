package apptest

import (
	"net/http"
	"net/http/httptest"
)

// Get serves a GET request for target with h and returns the recorded response. Target is a path with an
// optional query, such as "/greet?name=Ann".
func Get(h http.Handler, target string) *httptest.ResponseRecorder {
	return Call(h, httptest.NewRequest(http.MethodGet, target, nil))
}

// Call serves req with h and returns the recorded response.
func Call(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
