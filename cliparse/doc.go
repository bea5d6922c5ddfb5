/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseURL: sqlite file path or PostgreSQL connection string
    (default: students.db)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)

# CLI Flags

	-p  Server port
	-d  Database URL or sqlite file path
	-t  Database type

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded before the fallbacks are read.

# Validation

ParseFlags returns an error if:

  - PORT is set but not an integer
  - the database type is neither "sqlite" nor "postgres"
  - the type is postgres and no database URL was provided

sqlite needs no URL; it defaults to a local students.db file.
*/
package cliparse
