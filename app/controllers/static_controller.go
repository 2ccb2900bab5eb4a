package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// StaticController serves uploaded images and the bundled single-page
// frontend. Any path that is not a real file under the static dir falls back
// to the SPA index document so client-side routing can take over.
type StaticController struct {
	staticDir string
	uploads   http.Handler
}

func NewStaticController(staticDir, uploadDir string) *StaticController {
	return &StaticController{
		staticDir: staticDir,
		uploads:   http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))),
	}
}

func (c *StaticController) Uploads(w http.ResponseWriter, r *http.Request) {
	c.uploads.ServeHTTP(w, r)
}

func (c *StaticController) SPA(w http.ResponseWriter, r *http.Request) {
	name := filepath.Join(c.staticDir, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(name); err == nil && !info.IsDir() && !strings.HasSuffix(r.URL.Path, "/") {
		http.ServeFile(w, r, name)
		return
	}
	http.ServeFile(w, r, filepath.Join(c.staticDir, "index.html"))
}
