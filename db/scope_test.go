// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"testing"

	"github.com/danielhkuo/gradebook/cliparse"
)

func openScopeTestDB(t *testing.T) *Scope {
	t.Helper()

	conn, err := Open(cliparse.Config{
		DatabaseType: "sqlite",
		DatabaseURL:  "file:" + t.Name() + "?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return NewScope(conn)
}

func TestScope_LazyAcquire(t *testing.T) {
	scope := openScopeTestDB(t)
	defer scope.Release()

	ctx := context.Background()

	first, err := scope.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if first == nil {
		t.Fatal("Acquire returned nil connection")
	}

	// A second acquire within the same scope returns the same connection
	second, err := scope.Acquire(ctx)
	if err != nil {
		t.Fatalf("Second acquire failed: %v", err)
	}
	if first != second {
		t.Error("Expected the same connection on repeated acquire")
	}
}

func TestScope_ReleaseIdempotent(t *testing.T) {
	scope := openScopeTestDB(t)

	// Release without acquire is a no-op
	scope.Release()

	if _, err := scope.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	// Double release must not panic or error
	scope.Release()
	scope.Release()
}

func TestScope_ContextRoundTrip(t *testing.T) {
	scope := openScopeTestDB(t)
	defer scope.Release()

	ctx := WithScope(context.Background(), scope)
	if got := ScopeFrom(ctx); got != scope {
		t.Error("Expected the scope attached to the context")
	}

	if got := ScopeFrom(context.Background()); got != nil {
		t.Errorf("Expected nil scope from a bare context, got %v", got)
	}
}

func TestScope_RebindSQLite(t *testing.T) {
	scope := openScopeTestDB(t)
	defer scope.Release()

	query := "SELECT id FROM student WHERE id = ?"
	if got := scope.Rebind(query); got != query {
		t.Errorf("Expected sqlite query unchanged, got %q", got)
	}
}
