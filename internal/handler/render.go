package handler

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

type renderer struct {
	templates *template.Template
}

func newRenderer() *renderer {
	return &renderer{
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
