// Package web embeds the form page template and its static assets so the
// binary serves the whole page without any files on disk.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

var (
	//go:embed templates
	templatesFS embed.FS

	//go:embed static
	staticFS embed.FS
)

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))
}

// StaticFS returns the embedded static assets rooted at their directory.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
