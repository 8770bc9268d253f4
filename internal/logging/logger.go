// Package logging provides request-scoped log lines in the
// "[level] request_id=... operation=..." format used across the service.
package logging

import (
	"context"
	"log"
	"strings"
	"sync/atomic"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var minLevel atomic.Int32

func init() {
	minLevel.Store(int32(LevelInfo))
}

// SetLevel sets the minimum level from a LOG_LEVEL string. Unknown values mean info.
func SetLevel(s string) {
	lvl := LevelInfo
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		lvl = LevelDebug
	case "warn", "warning":
		lvl = LevelWarn
	case "error":
		lvl = LevelError
	}
	minLevel.Store(int32(lvl))
}

func enabled(l Level) bool {
	return int32(l) >= minLevel.Load()
}

type requestIDKey struct{}

// WithRequestID stores the request id on ctx.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request id from ctx, or "" when none was set.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides structured logging for services
type Logger struct {
	requestID string
}

// New creates a logger bound to the request id carried by ctx.
func New(ctx context.Context) *Logger {
	rid := RequestID(ctx)
	if rid == "" {
		rid = "-"
	}
	return &Logger{requestID: rid}
}

func (l *Logger) Debugf(operation, format string, args ...any) {
	l.printf(LevelDebug, "debug", operation, format, args...)
}

func (l *Logger) Infof(operation, format string, args ...any) {
	l.printf(LevelInfo, "info", operation, format, args...)
}

func (l *Logger) Warnf(operation, format string, args ...any) {
	l.printf(LevelWarn, "warn", operation, format, args...)
}

func (l *Logger) Errorf(operation, format string, args ...any) {
	l.printf(LevelError, "error", operation, format, args...)
}

// Error logs err under operation.
func (l *Logger) Error(operation string, err error) {
	l.printf(LevelError, "error", operation, "error=%v", err)
}

func (l *Logger) printf(lvl Level, tag, operation, format string, args ...any) {
	if !enabled(lvl) {
		return
	}
	log.Printf("[%s] request_id=%s operation=%s "+format, append([]any{tag, l.requestID, operation}, args...)...)
}
