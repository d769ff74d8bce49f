package petite

import (
	"io/fs"

	"github.com/advdv/petite/markup"
)

// Result is a successful outcome of handling a request. The set of implementations is closed: [File], [HTML],
// [Chars], [Bytes] and [Redirect].
type Result interface {
	isResult()
}

// File streams an open file to the client. The content type is left to the HTTP layer. The file is closed
// once the response has been written.
type File struct {
	File fs.File
}

// HTML is a page built from escapable values. It is served as text/html.
type HTML struct {
	Body markup.Escapable
}

// Chars is text served verbatim with the given content type.
type Chars struct {
	Data        string
	ContentType string
}

// Bytes is binary data served verbatim with the given content type.
type Bytes struct {
	Data        []byte
	ContentType string
}

// Redirect sends the client to Path, resolved against the server's base URL.
type Redirect struct {
	Path string
}

func (File) isResult()     {}
func (HTML) isResult()     {}
func (Chars) isResult()    {}
func (Bytes) isResult()    {}
func (Redirect) isResult() {}
