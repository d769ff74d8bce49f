package petite

import (
	"log"
	"sync/atomic"
	"testing"
)

// Logger can be implemented to get informed about important states.
type Logger interface {
	LogRequest(r *Request)
	LogServerError(err error)
	LogFlushError(err error)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogRequest(r *Request) {
	l.Logger.Printf("petite: %s %s %s", r.RemoteAddr, r.Method, r.URL.RequestURI())
}

func (l stdLogger) LogServerError(err error) {
	l.Logger.Printf("petite: server error: %s", err)
}

func (l stdLogger) LogFlushError(err error) {
	l.Logger.Printf("petite: error while flushing response: %s", err)
}

// NewStdLogger adapts a standard library logger. A nil logger means log.Default().
func NewStdLogger(l *log.Logger) Logger {
	if l == nil {
		l = log.Default()
	}

	return stdLogger{l}
}

type TestLogger struct {
	tb testing.TB

	NumLogRequest     int64
	NumLogServerError int64
	NumLogFlushError  int64
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogRequest(r *Request) {
	atomic.AddInt64(&l.NumLogRequest, 1)
	l.tb.Logf("petite: %s %s %s", r.RemoteAddr, r.Method, r.URL.RequestURI())
}

func (l *TestLogger) LogServerError(err error) {
	atomic.AddInt64(&l.NumLogServerError, 1)
	l.tb.Logf("petite: server error: %s", err)
}

func (l *TestLogger) LogFlushError(err error) {
	atomic.AddInt64(&l.NumLogFlushError, 1)
	l.tb.Logf("petite: error while flushing response: %s", err)
}

var _ Logger = &TestLogger{}
