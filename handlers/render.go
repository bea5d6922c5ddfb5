// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/gradebook/templates"
)

// render writes the named HTML page. Render errors after headers are out
// can only be logged.
func render(w http.ResponseWriter, tpl *templates.Renderer, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Render(w, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// serverError logs a store failure and answers with the generic error
// page.
func serverError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
