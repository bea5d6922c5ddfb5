// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/gradebook/templates"
)

type PageHandler struct {
	tpl *templates.Renderer
}

func NewPageHandler(tpl *templates.Renderer) *PageHandler {
	return &PageHandler{tpl: tpl}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	render(w, h.tpl, "index.html", nil)
}

// Hello handles GET /hello2
func (h *PageHandler) Hello(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "World"
	}

	render(w, h.tpl, "hello.html", map[string]string{"Name": name})
}
