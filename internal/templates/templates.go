// Package templates carries the embedded HTML views. Rendering is kept
// deliberately minimal: the views exist to serve the forms and message
// lists, nothing more.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every embedded view. Views are addressed by file name,
// e.g. "login.html".
func Load() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}
