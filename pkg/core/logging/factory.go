// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers, with an optional
//              pluggable telemetry transport for shipped log entries
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"sync"
	"time"

	mdwlog "github.com/raxe-ce/raxe-go/foundation/core/log"
)

var (
	globalSinkWriter *SinkWriter
	sinkWriterOnce   sync.Once
	sinkWriterMu     sync.RWMutex
)

// LoggerConfig holds configuration for creating loggers.
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (debug, info, warn, error)
	Level string

	// Transport for shipped log entries (optional; nil disables shipping)
	Transport Transport

	// Output format
	Format string // "json" or "text" (default: json)

	// Additional outputs (besides stdout and the sink)
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration.
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

// NewLogger creates a new Foundation logger with an optional telemetry sink.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level := parseLevel(cfg.Level)

	var output io.Writer = os.Stdout

	if cfg.Transport != nil {
		sink := getOrCreateSinkWriter(cfg.Transport, cfg.ServiceName)
		if sink != nil {
			output = sink
		}
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format := mdwlog.FormatJSON
	if cfg.Format == "text" {
		format = mdwlog.FormatText
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: true,
	})

	return logger
}

// NewServiceLogger creates a logger for a component with a telemetry transport.
func NewServiceLogger(serviceName string, transport Transport) *mdwlog.Logger {
	cfg := DefaultLoggerConfig(serviceName)
	cfg.Transport = transport
	return NewLogger(cfg)
}

// NewSimpleLogger creates a simple logger with no telemetry transport.
func NewSimpleLogger(serviceName string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// getOrCreateSinkWriter returns the global SinkWriter, creating it if necessary.
func getOrCreateSinkWriter(transport Transport, serviceName string) *SinkWriter {
	sinkWriterOnce.Do(func() {
		writer, err := NewSinkWriter(SinkWriterConfig{
			ServiceName: serviceName,
			BatchSize:   100,
			FlushPeriod: 5 * time.Second,
			Fallback:    os.Stdout,
			Transport:   transport,
		})
		if err != nil {
			return
		}
		globalSinkWriter = writer
	})

	return globalSinkWriter
}

// GetGlobalSinkWriter returns the global SinkWriter instance, if any.
func GetGlobalSinkWriter() *SinkWriter {
	sinkWriterMu.RLock()
	defer sinkWriterMu.RUnlock()
	return globalSinkWriter
}

// CloseGlobalSinkWriter closes the global SinkWriter.
func CloseGlobalSinkWriter() error {
	sinkWriterMu.Lock()
	defer sinkWriterMu.Unlock()

	if globalSinkWriter != nil {
		err := globalSinkWriter.Close()
		globalSinkWriter = nil
		return err
	}
	return nil
}

// parseLevel converts a string level to mdwlog.Level.
func parseLevel(level string) mdwlog.Level {
	switch level {
	case "trace":
		return mdwlog.LevelTrace
	case "debug":
		return mdwlog.LevelDebug
	case "info":
		return mdwlog.LevelInfo
	case "warn", "warning":
		return mdwlog.LevelWarn
	case "error":
		return mdwlog.LevelError
	case "fatal":
		return mdwlog.LevelFatal
	default:
		return mdwlog.LevelInfo
	}
}

// Compatibility layer for callers using the simple Logger API.

// Logger wraps the Foundation logger for compatibility.
type Logger struct {
	*mdwlog.Logger
	name string
}

// New creates a new simple logger (compatibility with existing code).
func New(name string) *Logger {
	return &Logger{
		Logger: NewSimpleLogger(name),
		name:   name,
	}
}

// WithLevel returns a new logger with the specified level (compatibility).
func (l *Logger) WithLevel(level Level) *Logger {
	mdwLevel := mdwlog.LevelInfo
	switch level {
	case LevelDebug:
		mdwLevel = mdwlog.LevelDebug
	case LevelInfo:
		mdwLevel = mdwlog.LevelInfo
	case LevelWarn:
		mdwLevel = mdwlog.LevelWarn
	case LevelError:
		mdwLevel = mdwlog.LevelError
	}

	return &Logger{
		Logger: l.Logger.WithLevel(mdwLevel),
		name:   l.name,
	}
}

// Debug logs a debug message (compatibility with key-value pairs).
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message (compatibility with key-value pairs).
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message (compatibility with key-value pairs).
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message (compatibility with key-value pairs).
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to mdwlog.Fields.
func toFields(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
