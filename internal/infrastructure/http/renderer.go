package http

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer adapts html/template to Echo's Renderer interface.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer(glob string) (*TemplateRenderer, error) {
	templates, err := template.ParseGlob(glob)
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates: templates}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
