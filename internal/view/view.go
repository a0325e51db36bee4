// Package view holds the embedded HTML templates. Rendering is a thin
// passthrough: every handler returns either a full page or a fragment for
// partial-page-update clients.
package view

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

func Templates() (*template.Template, error) {
	funcs := template.FuncMap{
		"date": func(unix int64) string {
			return time.Unix(unix, 0).Format("2006-01-02")
		},
	}
	return template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}
