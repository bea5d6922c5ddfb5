// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "students.db" {
		t.Errorf("expected students.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "grades.db")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "grades.db" {
		t.Errorf("expected grades.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8081", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8081 {
		t.Errorf("CLI should override env: expected 8081, got %d", cfg.Port)
	}
}

func TestParseFlags_RejectsUnknownType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "mysql"}); err == nil {
		t.Error("expected an error for an unsupported database type")
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "postgres"}); err == nil {
		t.Error("expected an error when postgres has no database URL")
	}

	cfg, err := ParseFlags([]string{"-t", "postgres", "-d", "postgres://localhost/grades"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
}
