// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

# Handler Types

Each handler is a struct holding the page renderer:

  - PageHandler: landing page and the hello demo page
  - StudentHandler: student list and per-student grade detail
  - CourseHandler: course list
  - GradeHandler: grade listing, entry form, insert, delete
  - StatsHandler: per-course averages and score distribution

Handlers are created via constructor functions:

	studentHandler := handlers.NewStudentHandler(tpl)

# Data Access

Handlers never hold a database handle. Each request carries a connection
scope in its context; the first query opens the connection and later
queries reuse it:

	conn, err := db.ScopeFrom(ctx).Acquire(ctx)

All statements are parameterized; no SQL is ever built from request
input.

# Reads and Mutations

Read routes run one or two queries and hand the rows to the renderer.
Mutations run a single statement and redirect: grade insertion to
/grades, grade deletion to the Referer when present (falling back to
/grades). A missing student id renders an empty-state page, not an
error; deleting a grade id that isn't there affects zero rows and still
redirects.

# Statistics

Two aggregate queries grouped by course title: AVG(value) per course,
and counts over four score buckets (A ≥ 90, 75 ≤ B < 90, 60 ≤ C < 75,
F < 60). Courses with no grades are absent from both reports.
*/
package handlers
