package petite

import (
	"io"
	"net/http"
	"net/url"

	"github.com/advdv/petite/contenttype"
	"github.com/advdv/petite/markup"
	"github.com/cockroachdb/errors"
)

// Fixed response bodies for error responses. The underlying error is never sent to the client.
const (
	InvalidText  = "Invalid request"
	NotFoundText = "Not found"
	ServerText   = "Server error"
)

// Respond writes the response for the outcome of a request to w. Redirects are resolved against base. When
// writing a result fails before anything was flushed, the buffered response is replaced by a server error.
// Server errors are reported to logs.
func Respond(w ResponseWriter, base *url.URL, res Result, err error, logs Logger) {
	if err == nil {
		if err = writeResult(w, base, res); err == nil {
			return
		}

		w.Reset()
	}

	writeError(w, err, logs)
}

func writeResult(w ResponseWriter, base *url.URL, res Result) error {
	switch r := res.(type) {
	case File:
		if r.File == nil {
			return errors.New("file result without a file")
		}
		defer r.File.Close()

		if _, err := io.Copy(w, r.File); err != nil {
			return errors.Wrap(err, "stream file")
		}
	case HTML:
		w.Header().Set("Content-Type", contenttype.HTML)
		if _, err := markup.WriteTo(w, r.Body); err != nil {
			return errors.Wrap(err, "render html")
		}
	case Chars:
		w.Header().Set("Content-Type", r.ContentType)
		if _, err := io.WriteString(w, r.Data); err != nil {
			return errors.Wrap(err, "write chars")
		}
	case Bytes:
		w.Header().Set("Content-Type", r.ContentType)
		if _, err := w.Write(r.Data); err != nil {
			return errors.Wrap(err, "write bytes")
		}
	case Redirect:
		loc, err := ResolveURL(base, r.Path)
		if err != nil {
			return err
		}

		w.Header().Set("Location", loc.String())
		w.WriteHeader(http.StatusTemporaryRedirect)
	case nil:
		return errors.New("handler returned neither a result nor an error")
	default:
		return errors.Newf("unsupported result type %T", res)
	}

	return nil
}

func writeError(w ResponseWriter, err error, logs Logger) {
	if rb, ok := w.(*ResponseBuffer); ok {
		rb.lift()
	}

	switch CodeOf(err) {
	case CodeInvalid:
		http.Error(w, InvalidText, http.StatusBadRequest)
	case CodeNotFound:
		http.Error(w, NotFoundText, http.StatusNotFound)
	default:
		logs.LogServerError(err)
		http.Error(w, ServerText, http.StatusInternalServerError)
	}
}

// StatusCode returns the status a response for res and err starts out with. Rendering can still turn it into a
// server error.
func StatusCode(res Result, err error) int {
	if err != nil {
		switch CodeOf(err) {
		case CodeInvalid:
			return http.StatusBadRequest
		case CodeNotFound:
			return http.StatusNotFound
		default:
			return http.StatusInternalServerError
		}
	}

	switch res.(type) {
	case Redirect:
		return http.StatusTemporaryRedirect
	case File, HTML, Chars, Bytes:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

// ResolveURL joins a relative reference onto base.
func ResolveURL(base *url.URL, rel string) (*url.URL, error) {
	if base == nil {
		return nil, errors.New("no base url to resolve against")
	}

	ref, err := url.Parse(rel)
	if err != nil {
		return nil, errors.Wrapf(err, "parse relative url %q", rel)
	}

	return base.ResolveReference(ref), nil
}
