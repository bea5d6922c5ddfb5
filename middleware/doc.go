// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware for the Gradebook server.

# Request Logging

Wrap a handler with request logging:

	handler = middleware.WithLogging(handler)

Logs request start (method, path, remote) and completion (duration_ms).

# Security Headers

SecurityHeaders attaches the fixed Content-Security-Policy header to
every response:

	default-src 'self' https://cdn.jsdelivr.net;
	script-src 'self';
	style-src 'self' https://cdn.jsdelivr.net 'unsafe-inline'

It wraps the whole router so 404s and error responses carry it too.

# Connection Scope

WithScope installs a db.Scope on the request context and guarantees its
release:

	r.Use(middleware.WithScope(database))

Handlers reach the scoped connection through db.ScopeFrom. The release
runs in a defer, so handler panics still return the connection.
*/
package middleware
