// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/gradebook/cliparse"
	"github.com/danielhkuo/gradebook/db"
)

var dbCounter atomic.Int64

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each call gets its own database; shared cache keeps it alive
// across the pool's connections for the duration of the test.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	conn, err := db.Open(cliparse.Config{DatabaseType: "sqlite", DatabaseURL: dsn})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// InsertStudent adds a student row and returns its id.
func InsertStudent(t *testing.T, conn *sqlx.DB, name string) int64 {
	t.Helper()

	res, err := conn.Exec("INSERT INTO student (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("Failed to insert student: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read student id: %v", err)
	}
	return id
}

// InsertCourse adds a course row and returns its id.
func InsertCourse(t *testing.T, conn *sqlx.DB, title, semester string) int64 {
	t.Helper()

	res, err := conn.Exec("INSERT INTO course (title, semester) VALUES (?, ?)", title, semester)
	if err != nil {
		t.Fatalf("Failed to insert course: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read course id: %v", err)
	}
	return id
}

// InsertGrade adds a points row and returns its id.
func InsertGrade(t *testing.T, conn *sqlx.DB, studentID, courseID int64, value float64) int64 {
	t.Helper()

	res, err := conn.Exec("INSERT INTO points (id_student, id_course, value) VALUES (?, ?, ?)",
		studentID, courseID, value)
	if err != nil {
		t.Fatalf("Failed to insert grade: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read grade id: %v", err)
	}
	return id
}

// CountGrades returns the number of points rows.
func CountGrades(t *testing.T, conn *sqlx.DB) int {
	t.Helper()

	var n int
	if err := conn.Get(&n, "SELECT COUNT(*) FROM points"); err != nil {
		t.Fatalf("Failed to count grades: %v", err)
	}
	return n
}

// MakeFormRequest builds a POST request with urlencoded form fields.
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// WithScope attaches a fresh connection scope to the request and
// registers its release, for tests that call handlers directly.
func WithScope(t *testing.T, conn *sqlx.DB, req *http.Request) *http.Request {
	t.Helper()

	scope := db.NewScope(conn)
	t.Cleanup(scope.Release)
	return req.WithContext(db.WithScope(req.Context(), scope))
}
