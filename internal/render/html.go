// Package render turns a view.Dashboard into HTML or a terminal table.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/YKarmar/AdmissionsDashboard/internal/present"
	"github.com/YKarmar/AdmissionsDashboard/internal/view"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("dashboard.html.tmpl").
		Funcs(template.FuncMap{
			"icon": iconSVG,
			"tileBg": func(f present.StyleFamily) string {
				bg, _ := tileClasses(f)
				return bg
			},
			"tileFg": func(f present.StyleFamily) string {
				_, fg := tileClasses(f)
				return fg
			},
		}).
		ParseFS(templateFS, "templates/dashboard.html.tmpl"),
)

// HTML writes the dashboard as a complete HTML document.
func HTML(w io.Writer, d view.Dashboard) error {
	if err := pageTemplate.Execute(w, d); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
