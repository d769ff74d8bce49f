package apptest

import (
	"testing"
)

// Env provides a chainable builder for setting [app.BaseEnvironment] env vars
// via t.Setenv. Create one with [SetBaseEnv].
type Env struct {
	t testing.TB
}

// SetBaseEnv sets all [app.BaseEnvironment] env vars to sensible test defaults.
//
// Defaults:
//   - PETITE_ADDR: "127.0.0.1:0", a free port picked when the app starts
//   - PETITE_BASE_URL: "http://petite.test/"
//   - PETITE_SERVICE_NAME: "test"
//   - PETITE_LOG_LEVEL: "error"
//   - PETITE_OTEL_EXPORTER: "none"
//   - PETITE_METRICS_PATH: ""
//   - PETITE_BUFFER_LIMIT: "-1"
//   - PETITE_REQUEST_TIMEOUT: "5s"
//
// Use the returned [Env] to override individual values:
//
//	apptest.SetBaseEnv(t).MetricsPath("/metrics").BufferLimit("1024")
func SetBaseEnv(t testing.TB) *Env {
	t.Helper()
	t.Setenv("PETITE_ADDR", "127.0.0.1:0")
	t.Setenv("PETITE_BASE_URL", "http://petite.test/")
	t.Setenv("PETITE_SERVICE_NAME", "test")
	t.Setenv("PETITE_LOG_LEVEL", "error")
	t.Setenv("PETITE_OTEL_EXPORTER", "none")
	t.Setenv("PETITE_METRICS_PATH", "")
	t.Setenv("PETITE_BUFFER_LIMIT", "-1")
	t.Setenv("PETITE_REQUEST_TIMEOUT", "5s")
	return &Env{t: t}
}

// BaseURL overrides PETITE_BASE_URL.
func (e *Env) BaseURL(url string) *Env {
	e.t.Helper()
	e.t.Setenv("PETITE_BASE_URL", url)
	return e
}

// ServiceName overrides PETITE_SERVICE_NAME.
func (e *Env) ServiceName(name string) *Env {
	e.t.Helper()
	e.t.Setenv("PETITE_SERVICE_NAME", name)
	return e
}

// MetricsPath overrides PETITE_METRICS_PATH.
func (e *Env) MetricsPath(path string) *Env {
	e.t.Helper()
	e.t.Setenv("PETITE_METRICS_PATH", path)
	return e
}

// BufferLimit overrides PETITE_BUFFER_LIMIT.
func (e *Env) BufferLimit(limit string) *Env {
	e.t.Helper()
	e.t.Setenv("PETITE_BUFFER_LIMIT", limit)
	return e
}

// RequestTimeout overrides PETITE_REQUEST_TIMEOUT.
func (e *Env) RequestTimeout(d string) *Env {
	e.t.Helper()
	e.t.Setenv("PETITE_REQUEST_TIMEOUT", d)
	return e
}

// Set sets any other variable, typically one of the application's own.
func (e *Env) Set(key, value string) *Env {
	e.t.Helper()
	e.t.Setenv(key, value)
	return e
}
