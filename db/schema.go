// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sqlx.DB) error {
	ddl := schemaSQLite
	if db.DriverName() == "postgres" {
		ddl = schemaPostgres
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schemaSQLite = `
-- Students
CREATE TABLE IF NOT EXISTS student (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

-- Courses
CREATE TABLE IF NOT EXISTS course (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    semester TEXT NOT NULL
);

-- Grade records
CREATE TABLE IF NOT EXISTS points (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    id_student INTEGER NOT NULL REFERENCES student(id),
    id_course INTEGER NOT NULL REFERENCES course(id),
    value REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_points_student ON points(id_student);
CREATE INDEX IF NOT EXISTS idx_points_course ON points(id_course);
`

const schemaPostgres = `
-- Students
CREATE TABLE IF NOT EXISTS student (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL
);

-- Courses
CREATE TABLE IF NOT EXISTS course (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    semester TEXT NOT NULL
);

-- Grade records
CREATE TABLE IF NOT EXISTS points (
    id SERIAL PRIMARY KEY,
    id_student INTEGER NOT NULL REFERENCES student(id),
    id_course INTEGER NOT NULL REFERENCES course(id),
    value DOUBLE PRECISION NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_points_student ON points(id_student);
CREATE INDEX IF NOT EXISTS idx_points_course ON points(id_course);
`
