package logger

import (
	"context"
	"fmt"
	"time"
)

// Logger is the logging contract used across the service with
// context-first methods so request-scoped metadata (trace id) can be
// picked up automatically. The zerolog adapter is the only production
// implementation; tests use Nop.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, err error, fields ...Field)
	Fatal(ctx context.Context, msg string, err error, fields ...Field)

	WithFields(fields ...Field) Logger
	WithComponent(component string) Logger
}

// Field represents a key-value pair in structured logging.
type Field struct {
	Key   string
	Value interface{}
}

func (f Field) String() string {
	return fmt.Sprintf("%s=%v", f.Key, f.Value)
}

func String(key, val string) Field {
	return Field{Key: key, Value: val}
}

func Int(key string, val int) Field {
	return Field{Key: key, Value: val}
}

func Int64(key string, val int64) Field {
	return Field{Key: key, Value: val}
}

func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Value: val}
}

func Bool(key string, val bool) Field {
	return Field{Key: key, Value: val}
}

type contextKey string

const (
	loggerContextKey contextKey = "logger"
	traceIDKey       contextKey = "trace-id"
)

// FromContext returns the Logger stored in ctx, or nil.
func FromContext(ctx context.Context) Logger {
	if ctx == nil {
		return nil
	}
	if l, ok := ctx.Value(loggerContextKey).(Logger); ok {
		return l
	}
	return nil
}

// ToContext stores l in ctx for later retrieval with FromContext.
func ToContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, l)
}

// WithTraceID stores a trace id in ctx. The zerolog adapter stamps it
// onto every event logged with that context.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey, id)
}

// TraceIDFromContext returns the trace id stored in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		return id
	}
	return ""
}

// Nop is a no-op logger that satisfies the Logger interface.
type Nop struct{}

func (Nop) Debug(ctx context.Context, msg string, fields ...Field)            {}
func (Nop) Info(ctx context.Context, msg string, fields ...Field)             {}
func (Nop) Warn(ctx context.Context, msg string, fields ...Field)             {}
func (Nop) Error(ctx context.Context, msg string, err error, fields ...Field) {}
func (Nop) Fatal(ctx context.Context, msg string, err error, fields ...Field) {}
func (n Nop) WithFields(fields ...Field) Logger                               { return n }
func (n Nop) WithComponent(component string) Logger                           { return n }
