// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes.

# Route Registration

NewRouter returns the fully wired handler:

	handler := router.NewRouter(db, tpl)

# Endpoints

Pages:

	GET /          - landing page
	GET /hello2    - demo page (?name=, defaults to World)
	GET /health    - liveness probe

Listings:

	GET /students      - all students
	GET /courses       - all courses
	GET /grades        - all grade records
	GET /student/{id}  - one student's grades
	GET /stats         - averages and score distribution

Mutations (302 redirects on success):

	GET  /add_grade         - entry form
	POST /add_grade         - insert a grade record
	POST /delete_grade/{id} - delete a grade record

# Path Constraints

The {id} variables are declared as {id:[0-9]+}, so a non-integer id is
rejected by the router (404) before any handler or query runs.

# Middleware

Matched routes get a per-request database connection scope. The security
header policy and request logging wrap the whole router, so unmatched
routes and error responses carry the Content-Security-Policy header too.
*/
package router
