package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config defines the logger configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error, none).
	Level string

	// Format determines the output format (json, pretty).
	Format string

	// Environment affects logging behavior (dev, test, prod).
	Environment string
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		Environment: "dev",
	}
}

// zeroLogger implements the Logger interface using zerolog.
type zeroLogger struct {
	log       zerolog.Logger
	component string
}

var _ Logger = (*zeroLogger)(nil)

// New creates a zerolog-backed Logger writing to stdout.
func New(cfg Config) Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a zerolog-backed Logger writing to w.
func NewWithWriter(cfg Config, w io.Writer) Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	var log zerolog.Logger
	if cfg.Format == "pretty" && cfg.Environment != "prod" {
		console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
		log = zerolog.New(console).With().Timestamp().Logger()
	} else {
		log = zerolog.New(w).With().Timestamp().Logger()
	}

	return &zeroLogger{log: log}
}

func (l *zeroLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, l.log.Debug(), nil, fields, msg)
}

func (l *zeroLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, l.log.Info(), nil, fields, msg)
}

func (l *zeroLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, l.log.Warn(), nil, fields, msg)
}

func (l *zeroLogger) Error(ctx context.Context, msg string, err error, fields ...Field) {
	l.emit(ctx, l.log.Error(), err, fields, msg)
}

func (l *zeroLogger) Fatal(ctx context.Context, msg string, err error, fields ...Field) {
	l.emit(ctx, l.log.Fatal(), err, fields, msg)
}

func (l *zeroLogger) WithFields(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	c := l.log.With()
	for _, f := range fields {
		c = c.Interface(f.Key, f.Value)
	}
	return &zeroLogger{log: c.Logger(), component: l.component}
}

func (l *zeroLogger) WithComponent(component string) Logger {
	if component == "" {
		return l
	}
	return &zeroLogger{
		log:       l.log.With().Str("component", component).Logger(),
		component: component,
	}
}

func (l *zeroLogger) emit(ctx context.Context, event *zerolog.Event, err error, fields []Field, msg string) {
	if traceID := TraceIDFromContext(ctx); traceID != "" {
		event = event.Str("trace_id", traceID)
	}
	if err != nil {
		event = event.Err(err)
	}
	for _, f := range fields {
		event = event.Interface(f.Key, f.Value)
	}
	event.Msg(msg)
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
