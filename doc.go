// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Gradebook web server.

Gradebook is a small server-rendered application for managing students,
courses, and grade records, with per-course averages and A/B/C/F score
distribution reports.

# Starting the Server

The server runs against a local sqlite file by default:

	go run main.go

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 8080 -d students.db -t sqlite

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string
    (default: students.db)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (pages, students, courses, grades, stats)
  - router: Route definitions with integer-constrained path variables
  - middleware: security headers, request logging, per-request connection scope
  - models: Typed row structs for every query
  - templates: Embedded html/template page set
  - db: Driver selection, schema creation, request connection scope
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
