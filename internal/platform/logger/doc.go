// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured
// logging with configurable log levels. The API server logs JSON to stdout; the
// study client logs text to stderr so the terminal UI stays readable. Request
// and operation scoped loggers travel in the context via WithLogger and are
// retrieved with FromContextOrDefault.
package logger
