// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/gradebook/db"
)

// ContentSecurityPolicy is attached to every response: same origin plus
// the jsdelivr CDN, inline styles allowed, inline scripts not.
const ContentSecurityPolicy = "default-src 'self' https://cdn.jsdelivr.net; " +
	"script-src 'self'; " +
	"style-src 'self' https://cdn.jsdelivr.net 'unsafe-inline'"

// WithLogging wraps a handler with request logging
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Log request
		slog.Info("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		)

		// Call the next handler
		next.ServeHTTP(w, r)

		// Log completion
		duration := time.Since(start)
		slog.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", duration.Milliseconds(),
		)
	})
}

// SecurityHeaders applies the fixed response header policy to every
// response, regardless of route or status.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", ContentSecurityPolicy)
		next.ServeHTTP(w, r)
	})
}

// WithScope gives each request its own lazily-opened database connection
// and releases it on every exit path, including panics.
func WithScope(database *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := db.NewScope(database)
			defer scope.Release()

			next.ServeHTTP(w, r.WithContext(db.WithScope(r.Context(), scope)))
		})
	}
}
