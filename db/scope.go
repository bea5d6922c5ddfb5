// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Scope hands out a single lazily-opened database connection for one
// request. Every query within the request shares the connection; Release
// returns it at request teardown.
type Scope struct {
	db       *sqlx.DB
	conn     *sqlx.Conn
	bindType int
}

func NewScope(db *sqlx.DB) *Scope {
	return &Scope{db: db, bindType: sqlx.BindType(db.DriverName())}
}

// Acquire returns the request's connection, opening it on first call.
// Later calls within the same request return the same connection.
func (s *Scope) Acquire(ctx context.Context) (*sqlx.Conn, error) {
	if s.conn != nil {
		return s.conn, nil
	}

	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, err
	}
	s.conn = conn
	return s.conn, nil
}

// Release closes the connection if one was acquired. Calling it again is
// a no-op.
func (s *Scope) Release() {
	if s.conn == nil {
		return
	}
	s.conn.Close()
	s.conn = nil
}

// Rebind rewrites ? placeholders into the active driver's bindvar style.
func (s *Scope) Rebind(query string) string {
	return sqlx.Rebind(s.bindType, query)
}

type scopeKey struct{}

// WithScope attaches a connection scope to ctx.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFrom returns the scope attached to ctx, or nil if none was set.
func ScopeFrom(ctx context.Context) *Scope {
	s, _ := ctx.Value(scopeKey{}).(*Scope)
	return s
}
