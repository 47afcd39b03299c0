package templates

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
)

//go:embed *.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "*.html"))

// PageView renders the full dashboard page for p.
func PageView(p Page) templ.Component {
	return templ.FromGoHTML(pages.Lookup("layout"), p)
}

// Debug renders a dump of one dataset.
func Debug(d DebugData) templ.Component {
	return templ.FromGoHTML(pages.Lookup("debug"), d)
}
