// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/gradebook/db"
	"github.com/danielhkuo/gradebook/models"
	"github.com/danielhkuo/gradebook/templates"
)

type CourseHandler struct {
	tpl *templates.Renderer
}

func NewCourseHandler(tpl *templates.Renderer) *CourseHandler {
	return &CourseHandler{tpl: tpl}
}

// List handles GET /courses
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := db.ScopeFrom(ctx).Acquire(ctx)
	if err != nil {
		serverError(w, "failed to acquire connection", err)
		return
	}

	var courses []models.Course
	if err := conn.SelectContext(ctx, &courses, "SELECT id, title, semester FROM course"); err != nil {
		serverError(w, "failed to query courses", err)
		return
	}

	render(w, h.tpl, "courses.html", map[string]any{"Courses": courses})
}
