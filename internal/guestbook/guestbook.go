// Package guestbook implements a small guest book: visitors introduce themselves, leave a greeting, and can
// look at what other visitors wrote.
package guestbook

import (
	"context"
	_ "embed"
	"io/fs"
	"net/url"
	"slices"

	"github.com/advdv/petite"
	"github.com/advdv/petite/contenttype"
	"github.com/advdv/petite/markup"
	"github.com/samber/lo"
)

var (
	//go:embed pages/layout.html
	layoutHTML string
	//go:embed pages/start.html
	startHTML string
	//go:embed pages/introduce.html
	introduceHTML string
	//go:embed pages/greet.html
	greetHTML string
	//go:embed pages/thank.html
	thankHTML string
	//go:embed pages/visitor.html
	visitorHTML string
	//go:embed pages/guest_book.html
	guestBookHTML string
	//go:embed pages/stylesheet.css
	stylesheet string
)

const guestHTML = `<li><a href="{url}">{name}</a></li>`

var (
	startPage = markup.Static(startHTML)
	thankPage = markup.Static(thankHTML)
)

// Guestbook owns the visitor registry. It is not safe for concurrent use; serve it with [petite.Server], which
// handles one request at a time.
type Guestbook struct {
	base     string
	visitors map[string]string
	photos   fs.FS
	mux      *petite.Mux
}

// New creates an empty guest book. Links in its pages are relative to base, the URL the guest book is served
// at. Photos are served from photos, which may be nil.
func New(base *url.URL, photos fs.FS) *Guestbook {
	g := &Guestbook{
		base:     base.String(),
		visitors: make(map[string]string),
		photos:   photos,
		mux:      petite.NewMux(),
	}

	g.mux.Index(petite.Redirect{Path: "start"})
	g.mux.Resolve("stylesheet.css", petite.Chars{Data: stylesheet, ContentType: contenttype.CSS})
	g.mux.Resolve("start", petite.HTML{Body: g.page("Welcome", startPage)})
	g.mux.Delegate("greet", petite.HandleGet[greetParams](greet{g}))
	g.mux.Delegate("thank", petite.HandleGet[thankParams](thank{g}))
	g.mux.Delegate("photo", petite.HandleGet[petite.Values](photo{g}))
	g.mux.Mount("visitor", petite.RouterFunc(g.routeVisitor))

	return g
}

// Route implements [petite.Router].
func (g *Guestbook) Route(ctx context.Context, path []string) petite.Decision {
	return g.mux.Route(ctx, path)
}

// Greeting returns the greeting a visitor left.
func (g *Guestbook) Greeting(name string) (string, bool) {
	greeting, ok := g.visitors[name]
	return greeting, ok
}

// routeVisitor answers /visitor/<name> from the path alone.
func (g *Guestbook) routeVisitor(_ context.Context, path []string) petite.Decision {
	if len(path) == 0 {
		return petite.Fail(petite.Invalid("missing visitor name"))
	}

	name := path[0]
	greeting, ok := g.visitors[name]
	if !ok {
		return petite.Fail(petite.NotFound("visitor"))
	}

	return petite.Resolve(petite.HTML{Body: g.page(name, markup.NewTemplate(visitorHTML,
		markup.Bind("name", markup.Text(name)),
		markup.Bind("greeting", markup.Text(greeting)),
		markup.Bind("guest_book", g.guestBook()),
	))})
}

// guestBook lists all visitors, sorted by name.
func (g *Guestbook) guestBook() markup.Escapable {
	names := lo.Keys(g.visitors)
	slices.Sort(names)

	return markup.NewTemplate(guestBookHTML,
		markup.Bind("visitors", markup.Concat(lo.Map(names, func(name string, _ int) markup.Escapable {
			return guest(name)
		}))),
	)
}

func guest(name string) markup.Escapable {
	return markup.NewTemplate(guestHTML,
		markup.Bind("name", markup.Text(name)),
		markup.Bind("url", markup.Text(petite.Reverse("visitor", name))),
	)
}

func (g *Guestbook) page(title string, content markup.Escapable) markup.Escapable {
	return markup.NewTemplate(layoutHTML,
		markup.Bind("base", markup.Text(g.base)),
		markup.Bind("title", markup.Text(title)),
		markup.Bind("content", content),
	)
}
