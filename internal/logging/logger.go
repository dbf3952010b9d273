// Package logging defines the structured-logging interface used across the
// CLI. Logs go to stderr so they never interleave with prompts on stdout.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "api request", "path", "/shipments", "status", 200)
type Logger interface {
	// Debug logs request-level detail (API calls, timings).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning for recoverable failures, e.g. a failed command.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
