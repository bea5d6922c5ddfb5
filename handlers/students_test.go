// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/danielhkuo/gradebook/testutil"
)

func TestStudentList(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	testutil.InsertStudent(t, conn, "Ann")
	testutil.InsertStudent(t, conn, "Bob")

	h := NewStudentHandler(newTestRenderer(t))

	req := testutil.WithScope(t, conn, httptest.NewRequest("GET", "/students", nil))
	w := httptest.NewRecorder()

	h.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "Ann") || !strings.Contains(body, "Bob") {
		t.Errorf("Expected both students listed, got body: %s", body)
	}
}

func TestStudentDetail_NoGrades(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	id := testutil.InsertStudent(t, conn, "Ann")

	h := NewStudentHandler(newTestRenderer(t))

	req := testutil.WithScope(t, conn, httptest.NewRequest("GET", "/student/1", nil))
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	w := httptest.NewRecorder()

	h.Detail(w, req)

	// A student with zero grades is a page, not an error
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "Ann") {
		t.Errorf("Expected student %d rendered, got body: %s", id, body)
	}
	if !strings.Contains(body, "No grades recorded.") {
		t.Errorf("Expected the empty grade state, got body: %s", body)
	}
}

func TestStudentDetail_MissingStudent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	h := NewStudentHandler(newTestRenderer(t))

	req := testutil.WithScope(t, conn, httptest.NewRequest("GET", "/student/999", nil))
	req = mux.SetURLVars(req, map[string]string{"id": "999"})
	w := httptest.NewRecorder()

	h.Detail(w, req)

	// An absent id renders the missing-student state, not a server error
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Student not found") {
		t.Errorf("Expected the missing-student state, got body: %s", w.Body.String())
	}
}

func TestStudentDetail_WithGrades(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	studentID := testutil.InsertStudent(t, conn, "Ann")
	courseID := testutil.InsertCourse(t, conn, "Algebra", "F24")
	testutil.InsertGrade(t, conn, studentID, courseID, 85)

	h := NewStudentHandler(newTestRenderer(t))

	req := testutil.WithScope(t, conn, httptest.NewRequest("GET", "/student/1", nil))
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	w := httptest.NewRecorder()

	h.Detail(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{"Ann", "Algebra", "F24", "85"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected %q in the detail page, got body: %s", want, body)
		}
	}
}
