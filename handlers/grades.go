// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/danielhkuo/gradebook/db"
	"github.com/danielhkuo/gradebook/models"
	"github.com/danielhkuo/gradebook/templates"
)

type GradeHandler struct {
	tpl *templates.Renderer
}

func NewGradeHandler(tpl *templates.Renderer) *GradeHandler {
	return &GradeHandler{tpl: tpl}
}

// List handles GET /grades
func (h *GradeHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := db.ScopeFrom(ctx).Acquire(ctx)
	if err != nil {
		serverError(w, "failed to acquire connection", err)
		return
	}

	var grades []models.GradeRow
	err = conn.SelectContext(ctx, &grades, `
		SELECT p.id, s.name AS student_name, c.title AS course_title, p.value
		FROM points p
		JOIN student s ON p.id_student = s.id
		JOIN course c ON p.id_course = c.id
	`)
	if err != nil {
		serverError(w, "failed to query grades", err)
		return
	}

	render(w, h.tpl, "grades.html", map[string]any{"Grades": grades})
}

// AddForm handles GET /add_grade
func (h *GradeHandler) AddForm(w http.ResponseWriter, r *http.Request) {
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

	var courses []models.Course
	if err := conn.SelectContext(ctx, &courses, "SELECT id, title, semester FROM course"); err != nil {
		serverError(w, "failed to query courses", err)
		return
	}

	render(w, h.tpl, "add_grade.html", map[string]any{
		"Students": students,
		"Courses":  courses,
	})
}

// Add handles POST /add_grade
func (h *GradeHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scope := db.ScopeFrom(ctx)
	conn, err := scope.Acquire(ctx)
	if err != nil {
		serverError(w, "failed to acquire connection", err)
		return
	}

	// Form values go to the store as submitted; any constraint checks
	// happen there.
	idStudent := r.FormValue("id_student")
	idCourse := r.FormValue("id_course")
	value := r.FormValue("value")

	_, err = conn.ExecContext(ctx, scope.Rebind(
		"INSERT INTO points (id_student, id_course, value) VALUES (?, ?, ?)"),
		idStudent, idCourse, value)
	if err != nil {
		serverError(w, "failed to insert grade", err)
		return
	}

	slog.Info("grade added", "id_student", idStudent, "id_course", idCourse)

	http.Redirect(w, r, "/grades", http.StatusFound)
}

// Delete handles POST /delete_grade/{id}
func (h *GradeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid grade ID", http.StatusBadRequest)
		return
	}

	scope := db.ScopeFrom(ctx)
	conn, err := scope.Acquire(ctx)
	if err != nil {
		serverError(w, "failed to acquire connection", err)
		return
	}

	// Deleting an id that isn't there affects zero rows and still
	// redirects.
	_, err = conn.ExecContext(ctx, scope.Rebind("DELETE FROM points WHERE id = ?"), id)
	if err != nil {
		serverError(w, "failed to delete grade", err)
		return
	}

	slog.Info("grade deleted", "id", id)

	target := r.Referer()
	if target == "" {
		target = "/grades"
	}
	http.Redirect(w, r, target, http.StatusFound)
}
