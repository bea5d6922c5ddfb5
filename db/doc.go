// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database access: driver selection, schema creation,
and the per-request connection scope.

# Opening a Database

Open picks the driver from the configured type and verifies the
connection:

	conn, err := db.Open(cfg)

Supported types are "sqlite" (modernc.org/sqlite, the default) and
"postgres" (lib/pq).

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The DDL has a dialect per driver (AUTOINCREMENT vs SERIAL).

# Tables

The schema includes:

  - student: one row per student
  - course: one row per course, with title and semester
  - points: grade records linking a student, a course, and a score

# Relationships

	student 1──* points
	course  1──* points

Students and courses are never written by this application; points rows
are inserted and deleted, never updated.

# Request Connection Scope

Each HTTP request owns at most one connection, opened lazily on first
use and released at request teardown:

	scope := db.ScopeFrom(r.Context())
	conn, err := scope.Acquire(r.Context())

Release is idempotent and is installed with defer by the middleware, so
every exit path (including panics) gives the connection back. Rebind
maps ? placeholders to the driver's bindvar style so the same query text
works on both drivers.
*/
package db
