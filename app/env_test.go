package app_test

import (
	"os"
	"testing"
	"time"

	"github.com/advdv/petite/app"
	"github.com/advdv/petite/app/apptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type TestEnv struct {
	app.BaseEnvironment
	Greeting string `env:"TEST_GREETING" envDefault:"hello"`
}

func TestParseEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"PETITE_ADDR", "PETITE_BASE_URL", "PETITE_SERVICE_NAME", "PETITE_LOG_LEVEL", "PETITE_OTEL_EXPORTER",
		"PETITE_METRICS_PATH", "PETITE_BUFFER_LIMIT", "PETITE_REQUEST_TIMEOUT", "TEST_GREETING",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	env, err := app.ParseEnv[TestEnv]()()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", env.Addr)
	assert.Equal(t, "petite", env.ServiceName)
	assert.Equal(t, zapcore.InfoLevel, env.LogLevel)
	assert.Equal(t, "none", env.OtelExporter)
	assert.Empty(t, env.MetricsPath)
	assert.Equal(t, -1, env.BufferLimit)
	assert.Equal(t, 30*time.Second, env.RequestTimeout)
	assert.Equal(t, "hello", env.Greeting)

	base, err := app.ParseBaseURL(env)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/", base.String())
}

func TestParseEnvOverrides(t *testing.T) {
	apptest.SetBaseEnv(t).
		BaseURL("https://example.com/guests/").
		ServiceName("guestbook").
		BufferLimit("4096").
		Set("TEST_GREETING", "hi")

	env, err := app.ParseEnv[TestEnv]()()
	require.NoError(t, err)

	assert.Equal(t, "guestbook", env.ServiceName)
	assert.Equal(t, 4096, env.BufferLimit)
	assert.Equal(t, "hi", env.Greeting)

	base, err := app.ParseBaseURL(env)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/guests/", base.String())

	rt, err := app.NewRuntime(env)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/guests/", rt.BaseURL().String())
	assert.Equal(t, "https://example.com/guests/visitor/a%2Fb", rt.URL("visitor", "a/b").String())

	rt.BaseURL().Path = "/changed/"
	assert.Equal(t, "https://example.com/guests/", rt.BaseURL().String())
}

func TestParseEnvLogLevel(t *testing.T) {
	for _, tt := range []struct {
		value string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"DEBUG", zapcore.DebugLevel},
	} {
		t.Run(tt.value, func(t *testing.T) {
			apptest.SetBaseEnv(t).Set("PETITE_LOG_LEVEL", tt.value)

			env, err := app.ParseEnv[app.BaseEnvironment]()()
			require.NoError(t, err)
			assert.Equal(t, tt.want, env.LogLevel)
		})
	}
}

func TestParseEnvErrors(t *testing.T) {
	for _, tt := range []struct {
		name, key, value, msg string
	}{
		{"bad level", "PETITE_LOG_LEVEL", "loud", "failed to parse environment"},
		{"bad limit", "PETITE_BUFFER_LIMIT", "lots", "failed to parse environment"},
		{"relative base", "PETITE_BASE_URL", "/guests/", "must be absolute and end in a slash"},
		{"base without slash", "PETITE_BASE_URL", "http://example.com/guests", "must be absolute and end in a slash"},
		{"unparsable base", "PETITE_BASE_URL", "http://[::1", "invalid base url"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			apptest.SetBaseEnv(t).Set(tt.key, tt.value)

			_, err := app.ParseEnv[app.BaseEnvironment]()()
			require.ErrorContains(t, err, tt.msg)
		})
	}
}
