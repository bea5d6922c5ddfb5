// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/gradebook/cliparse"
)

// DriverName maps a configured database type to its registered driver.
func DriverName(databaseType string) (string, error) {
	switch databaseType {
	case "sqlite", "":
		return "sqlite", nil
	case "postgres":
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported database type %q", databaseType)
	}
}

// Open connects to the configured database and verifies the connection.
func Open(cfg cliparse.Config) (*sqlx.DB, error) {
	driver, err := DriverName(cfg.DatabaseType)
	if err != nil {
		return nil, err
	}

	conn, err := sqlx.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}
