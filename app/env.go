package app

import (
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Environment defines the interface that all environment configurations must implement.
// Embed BaseEnvironment in your struct to satisfy this interface.
type Environment interface {
	addr() string
	baseURL() string
	serviceName() string
	logLevel() zapcore.Level
	otelExporter() string
	metricsPath() string
	bufferLimit() int
	requestTimeout() time.Duration
}

// BaseEnvironment contains the environment variables every app reads.
// Embed this in your custom environment struct.
type BaseEnvironment struct {
	Addr string `env:"PETITE_ADDR" envDefault:"localhost:8080"`
	// BaseURL is what redirects are resolved against. It defaults to "http://<addr>/" and must end in a slash.
	BaseURL        string        `env:"PETITE_BASE_URL"`
	ServiceName    string        `env:"PETITE_SERVICE_NAME" envDefault:"petite"`
	LogLevel       zapcore.Level `env:"PETITE_LOG_LEVEL" envDefault:"info"`
	OtelExporter   string        `env:"PETITE_OTEL_EXPORTER" envDefault:"none"`
	MetricsPath    string        `env:"PETITE_METRICS_PATH"`
	BufferLimit    int           `env:"PETITE_BUFFER_LIMIT" envDefault:"-1"`
	RequestTimeout time.Duration `env:"PETITE_REQUEST_TIMEOUT" envDefault:"30s"`
}

func (e BaseEnvironment) addr() string {
	return e.Addr
}

func (e BaseEnvironment) baseURL() string {
	if e.BaseURL == "" {
		return "http://" + e.Addr + "/"
	}

	return e.BaseURL
}

func (e BaseEnvironment) serviceName() string {
	return e.ServiceName
}

func (e BaseEnvironment) logLevel() zapcore.Level {
	return e.LogLevel
}

func (e BaseEnvironment) otelExporter() string {
	return e.OtelExporter
}

func (e BaseEnvironment) metricsPath() string {
	return e.MetricsPath
}

func (e BaseEnvironment) bufferLimit() int {
	return e.BufferLimit
}

func (e BaseEnvironment) requestTimeout() time.Duration {
	return e.RequestTimeout
}

var _ Environment = BaseEnvironment{}

// ParseEnv parses environment variables into the given Environment type.
func ParseEnv[E Environment]() func() (E, error) {
	return func() (e E, err error) {
		if err := env.Parse(&e); err != nil {
			return e, errors.Wrap(err, "failed to parse environment")
		}

		if _, err := ParseBaseURL(e); err != nil {
			return e, err
		}

		return e, nil
	}
}

// ParseBaseURL returns the base URL of the environment. It must be absolute and end in a slash, so that
// relative redirects land below it.
func ParseBaseURL(e Environment) (*url.URL, error) {
	raw := e.baseURL()

	base, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url %q", raw)
	}

	if !base.IsAbs() || !strings.HasSuffix(base.Path, "/") {
		return nil, errors.Newf("base url %q must be absolute and end in a slash", raw)
	}

	return base, nil
}
