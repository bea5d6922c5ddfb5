// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed html/*.html
var files embed.FS

// Renderer holds the parsed page template set.
type Renderer struct {
	tpl *template.Template
}

// New parses all embedded pages. Template names are the file base names
// (e.g. "students.html").
func New() (*Renderer, error) {
	tpl, err := template.ParseFS(files, "html/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render writes the named page with the given data.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	return r.tpl.ExecuteTemplate(w, name, data)
}
