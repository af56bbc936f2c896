// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON
// or text logging with configurable log levels, and carries loggers through
// context.Context so that request-scoped attributes follow a call chain.
package logger
