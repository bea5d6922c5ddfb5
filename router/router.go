// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/gradebook/handlers"
	"github.com/danielhkuo/gradebook/middleware"
	"github.com/danielhkuo/gradebook/templates"
)

func NewRouter(db *sqlx.DB, tpl *templates.Renderer) http.Handler {
	r := mux.NewRouter()

	// Matched routes get a per-request connection scope.
	r.Use(middleware.WithScope(db))

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(tpl)
	studentHandler := handlers.NewStudentHandler(tpl)
	courseHandler := handlers.NewCourseHandler(tpl)
	gradeHandler := handlers.NewGradeHandler(tpl)
	statsHandler := handlers.NewStatsHandler(tpl)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	// Pages
	r.HandleFunc("/", pageHandler.Index).Methods("GET")
	r.HandleFunc("/hello2", pageHandler.Hello).Methods("GET")

	// Listings
	r.HandleFunc("/students", studentHandler.List).Methods("GET")
	r.HandleFunc("/courses", courseHandler.List).Methods("GET")
	r.HandleFunc("/grades", gradeHandler.List).Methods("GET")

	// Per-student detail; a non-integer id never reaches the handler
	r.HandleFunc("/student/{id:[0-9]+}", studentHandler.Detail).Methods("GET")

	// Grade entry and deletion
	r.HandleFunc("/add_grade", gradeHandler.AddForm).Methods("GET")
	r.HandleFunc("/add_grade", gradeHandler.Add).Methods("POST")
	r.HandleFunc("/delete_grade/{id:[0-9]+}", gradeHandler.Delete).Methods("POST")

	// Aggregate statistics
	r.HandleFunc("/stats", statsHandler.Stats).Methods("GET")

	// The header policy and request log also cover unmatched routes.
	return middleware.SecurityHeaders(middleware.WithLogging(r))
}
