// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/danielhkuo/gradebook/db"
	"github.com/danielhkuo/gradebook/models"
	"github.com/danielhkuo/gradebook/templates"
)

type StudentHandler struct {
	tpl *templates.Renderer
}

func NewStudentHandler(tpl *templates.Renderer) *StudentHandler {
	return &StudentHandler{tpl: tpl}
}

// List handles GET /students
func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := db.ScopeFrom(ctx).Acquire(ctx)
	if err != nil {
		serverError(w, "failed to acquire connection", err)
		return
	}

	var students []models.Student
	if err := conn.SelectContext(ctx, &students, "SELECT id, name FROM student"); err != nil {
		serverError(w, "failed to query students", err)
		return
	}

	render(w, h.tpl, "students.html", map[string]any{"Students": students})
}

// Detail handles GET /student/{id}
func (h *StudentHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid student ID", http.StatusBadRequest)
		return
	}

	scope := db.ScopeFrom(ctx)
	conn, err := scope.Acquire(ctx)
	if err != nil {
		serverError(w, "failed to acquire connection", err)
		return
	}

	// A missing student renders as an empty state, not an error.
	var student *models.Student
	var row models.Student
	err = conn.GetContext(ctx, &row,
		scope.Rebind("SELECT id, name FROM student WHERE id = ?"), id)
	if err != nil && err != sql.ErrNoRows {
		serverError(w, "failed to query student", err)
		return
	}
	if err == nil {
		student = &row
	}

	var grades []models.StudentGradeRow
	err = conn.SelectContext(ctx, &grades, scope.Rebind(`
		SELECT c.title, c.semester, p.value, p.id
		FROM points p
		JOIN course c ON p.id_course = c.id
		WHERE p.id_student = ?
	`), id)
	if err != nil {
		serverError(w, "failed to query student grades", err)
		return
	}

	render(w, h.tpl, "student_grades.html", map[string]any{
		"Student": student,
		"Grades":  grades,
	})
}
