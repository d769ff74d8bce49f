package guestbook

import (
	"context"
	"io/fs"

	"github.com/advdv/petite"
	"github.com/advdv/petite/app"
	"github.com/advdv/petite/markup"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type greetParams struct {
	Name string
}

func (p *greetParams) Collect(key, value string) {
	if key == "name" {
		p.Name = value
	}
}

type thankParams struct {
	Name     string
	Greeting string
}

func (p *thankParams) Collect(key, value string) {
	switch key {
	case "name":
		p.Name = value
	case "greeting":
		p.Greeting = value
	}
}

// greet welcomes back a known visitor, or asks a new one for a greeting.
type greet struct{ *Guestbook }

func (h greet) HandleGet(_ context.Context, _ []string, p greetParams) (petite.Result, error) {
	if p.Name == "" {
		return nil, petite.Invalid("missing name")
	}

	greeting, ok := h.visitors[p.Name]
	if !ok {
		return petite.HTML{Body: h.page("Hello", markup.NewTemplate(introduceHTML,
			markup.Bind("name", markup.Text(p.Name)),
		))}, nil
	}

	return petite.HTML{Body: h.page("Welcome back", markup.NewTemplate(greetHTML,
		markup.Bind("name", markup.Text(p.Name)),
		markup.Bind("greeting", markup.Text(greeting)),
		markup.Bind("guest_book", h.guestBook()),
	))}, nil
}

// thank records a visitor's greeting.
type thank struct{ *Guestbook }

func (h thank) HandleGet(ctx context.Context, _ []string, p thankParams) (petite.Result, error) {
	if p.Name == "" || p.Greeting == "" {
		return nil, petite.Invalid("missing name or greeting")
	}

	_, returning := h.visitors[p.Name]
	h.visitors[p.Name] = p.Greeting

	app.Log(ctx).Info("greeting stored", zap.String("name", p.Name), zap.Bool("returning", returning))

	return petite.HTML{Body: h.page("Thank you", thankPage)}, nil
}

// photo serves /photo/<name>.jpg from the photo directory.
type photo struct{ *Guestbook }

func (h photo) HandleGet(_ context.Context, path []string, _ petite.Values) (petite.Result, error) {
	if len(path) != 1 {
		return nil, petite.Invalid("expected a single photo name")
	}

	name, err := petite.ValidateName(path[0])
	if err != nil {
		return nil, err
	}

	if _, ok := petite.RemoveExtension(name, "jpg"); !ok || h.photos == nil {
		return nil, petite.NotFound("photo")
	}

	f, err := h.photos.Open(name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, petite.NotFound("photo")
	case err != nil:
		return nil, petite.Internal(errors.Wrapf(err, "open photo %q", name))
	}

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		_ = f.Close()
		return nil, petite.NotFound("photo")
	}

	return petite.File{File: f}, nil
}
