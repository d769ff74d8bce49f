// Command guestbook serves the guest book.
package main

import (
	"io/fs"
	"os"

	"github.com/advdv/petite/app"
	"github.com/advdv/petite/internal/guestbook"
)

// Env is the guest book's environment.
type Env struct {
	app.BaseEnvironment
	// PhotoDir holds the photos served at /photo/<name>.jpg. Photos are disabled when it is empty.
	PhotoDir string `env:"GUESTBOOK_PHOTO_DIR"`
}

func newGuestbook(rt *app.Runtime[Env]) *guestbook.Guestbook {
	var photos fs.FS
	if dir := rt.Env().PhotoDir; dir != "" {
		photos = os.DirFS(dir)
	}

	return guestbook.New(rt.BaseURL(), photos)
}

func main() {
	app.NewApp[Env](newGuestbook).Run()
}
