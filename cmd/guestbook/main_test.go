package main

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/advdv/petite/app"
	"github.com/advdv/petite/app/apptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestGuestbookApp(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cat.jpg"), []byte("meow"), 0o600))

	apptest.SetBaseEnv(t).BaseURL("https://guests.example/").Set("GUESTBOOK_PHOTO_DIR", dir)

	var srv *http.Server
	tapp := apptest.New[Env](t, newGuestbook, app.WithFx(fx.Populate(&srv)))
	tapp.RequireStart()
	t.Cleanup(tapp.RequireStop)

	rec := apptest.Get(srv.Handler, "/")
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://guests.example/start", rec.Header().Get("Location"))

	require.Equal(t, http.StatusOK, apptest.Get(srv.Handler, "/thank?name=Ann&greeting=Hi").Code)

	rec = apptest.Get(srv.Handler, "/visitor/Ann")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<q>Hi</q>")
	assert.Contains(t, rec.Body.String(), `<base href="https://guests.example/">`)

	rec = apptest.Get(srv.Handler, "/photo/cat.jpg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "meow", rec.Body.String())

	assert.Equal(t, http.StatusNotFound, apptest.Get(srv.Handler, "/photo/dog.jpg").Code)
}

func TestGuestbookWithoutPhotos(t *testing.T) {
	apptest.SetBaseEnv(t).Set("GUESTBOOK_PHOTO_DIR", "")

	var srv *http.Server
	tapp := apptest.New[Env](t, newGuestbook, app.WithFx(fx.Populate(&srv)))
	tapp.RequireStart()
	t.Cleanup(tapp.RequireStop)

	assert.Equal(t, http.StatusNotFound, apptest.Get(srv.Handler, "/photo/cat.jpg").Code)
}
