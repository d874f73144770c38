// Package web - Executor injection middleware
//
// EDUCATIONAL NOTES:
// ------------------
// Middleware in Go HTTP servers wraps handlers to add cross-cutting concerns.
// Context-based dependency injection is a common pattern:
//
// 1. Outer middleware injects dependencies into request context
// 2. Handlers retrieve dependencies from context when needed
// 3. Inner middleware can require dependencies and fail fast if missing
//
// This approach:
// - Keeps handlers decoupled from global state
// - Makes testing easier (inject test doubles)
// - Provides a clean way to pass request-scoped data

package web

import (
	"context"
	"net/http"

	"github.com/cabewaldrop/tinytable/internal/engine"
)

// contextKey is a custom type for context keys to avoid collisions.
// Using a custom type prevents other packages from accidentally
// overwriting our context values with the same string key.
type contextKey string

// executorKey is the context key for storing the executor.
const executorKey contextKey = "executor"

// WithExecutor returns middleware that injects the executor into the
// request context. Handlers can retrieve it using GetExecutor.
func WithExecutor(exec *engine.Executor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), executorKey, exec)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetExecutor retrieves the executor from the request context.
// Returns nil if the executor was not set (middleware not applied).
func GetExecutor(r *http.Request) *engine.Executor {
	exec, ok := r.Context().Value(executorKey).(*engine.Executor)
	if !ok {
		return nil
	}
	return exec
}

// RequireExecutor returns middleware that ensures an executor is present
// in the request context. If not found, it returns 500 Internal Server
// Error instead of letting a handler hit a nil pointer.
func RequireExecutor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetExecutor(r) == nil {
			http.Error(w, "Database not available", http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r)
	})
}
