package petite

import (
	"bytes"
	"net/http"
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrBufferFull is returned by writes that would grow the buffer past its limit.
var ErrBufferFull = errors.New("response buffer is full")

// ResponseWriter implements the http.ResponseWriter but the underlying bytes are buffered. This allows the
// response to be reset and replaced by an error response when rendering fails half-way.
type ResponseWriter interface {
	http.ResponseWriter
	Reset()
	Free()
	FlushBuffer() error
}

var bufPool = sync.Pool{New: func() any { return new(bytes.Buffer) }}

// ResponseBuffer is the [ResponseWriter] implementation. Status, headers and body are held until the buffer is
// flushed.
type ResponseBuffer struct {
	resp    http.ResponseWriter
	buf     *bytes.Buffer
	header  http.Header
	status  int
	limit   int
	flushed bool
}

// NewResponseWriter buffers writes to resp. A limit of zero or less disables the size limit.
func NewResponseWriter(resp http.ResponseWriter, limit int) ResponseWriter {
	return newBufferResponse(resp, limit)
}

func newBufferResponse(resp http.ResponseWriter, limit int) *ResponseBuffer {
	buf, _ := bufPool.Get().(*bytes.Buffer)
	buf.Reset()

	return &ResponseBuffer{
		resp:   resp,
		buf:    buf,
		header: http.Header{},
		limit:  limit,
	}
}

// Header returns the buffered header map. Changes made after the first flush are not sent.
func (w *ResponseBuffer) Header() http.Header { return w.header }

// WriteHeader records the status code. Like the standard library, only the first call has an effect.
func (w *ResponseBuffer) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

// Write appends to the buffer.
func (w *ResponseBuffer) Write(p []byte) (int, error) {
	if w.limit > 0 && w.buf.Len()+len(p) > w.limit {
		return 0, ErrBufferFull
	}

	return w.buf.Write(p)
}

// Reset discards the buffered status, headers and body. It panics when part of the response was already
// flushed, since that part cannot be taken back.
func (w *ResponseBuffer) Reset() {
	if w.flushed {
		panic("petite: cannot reset response, it was already flushed")
	}

	w.buf.Reset()
	w.header = http.Header{}
	w.status = 0
}

// lift removes the size limit. Error responses are written after it so their fixed body always fits.
func (w *ResponseBuffer) lift() { w.limit = 0 }

// FlushBuffer writes the status, headers and buffered body to the underlying writer.
func (w *ResponseBuffer) FlushBuffer() error {
	if !w.flushed {
		dst := w.resp.Header()
		for k, v := range w.header {
			dst[k] = v
		}

		status := w.status
		if status == 0 {
			status = http.StatusOK
		}

		w.resp.WriteHeader(status)
		w.flushed = true
	}

	if w.buf.Len() == 0 {
		return nil
	}

	if _, err := w.buf.WriteTo(w.resp); err != nil {
		return errors.Wrap(err, "write buffered body")
	}

	return nil
}

// FlushError flushes the buffer and then the underlying writer. It makes the buffer work with
// http.ResponseController.
func (w *ResponseBuffer) FlushError() error {
	if err := w.FlushBuffer(); err != nil {
		return err
	}

	if err := http.NewResponseController(w.resp).Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return errors.Wrap(err, "flush underlying writer")
	}

	return nil
}

// Unwrap returns the underlying writer, for http.ResponseController.
func (w *ResponseBuffer) Unwrap() http.ResponseWriter { return w.resp }

// Free returns the buffer to the pool. The writer must not be used afterwards.
func (w *ResponseBuffer) Free() {
	if w.buf == nil {
		return
	}

	w.buf.Reset()
	bufPool.Put(w.buf)
	w.buf = nil
}
