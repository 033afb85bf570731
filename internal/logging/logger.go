// Package logging provides unified logging functionality for cafe-install.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides logging capabilities for cafe-install.
// Operator-facing status lines are not written through it.
type Logger interface {
	// Debug outputs debug information (only when debug is enabled)
	Debug(format string, args ...interface{})

	// Info writes an informational message (only when debug is enabled)
	Info(format string, args ...interface{})

	// Warn writes a warning
	Warn(format string, args ...interface{})

	// Error writes an error
	Error(format string, args ...interface{})

	// SetStep sets the current installation step for context
	SetStep(step string)

	// StartTimer starts a timer for measuring operation duration
	StartTimer(operation string) *Timer

	// Close flushes buffered entries
	Close() error
}

// Timer represents a timer for measuring operation duration
type Timer struct {
	operation string
	start     time.Time
	logger    *zapLogger
}

// Stop stops the timer and logs the elapsed time
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	if t.logger != nil {
		t.logger.logWithLevel(zapcore.DebugLevel, "%s completed in %v", t.operation, elapsed)
	}
	return elapsed
}

// StopWithResult stops the timer and logs the result
func (t *Timer) StopWithResult(success bool, detail string) time.Duration {
	elapsed := time.Since(t.start)
	if t.logger == nil {
		return elapsed
	}
	status := "completed"
	level := zapcore.DebugLevel
	if !success {
		status = "failed"
		level = zapcore.WarnLevel
	}
	if detail != "" {
		t.logger.logWithLevel(level, "%s %s in %v: %s", t.operation, status, elapsed, detail)
	} else {
		t.logger.logWithLevel(level, "%s %s in %v", t.operation, status, elapsed)
	}
	return elapsed
}

type zapLogger struct {
	base *zap.Logger
	step string
	mu   sync.Mutex
}

// New creates a Logger writing console-encoded entries to w.
// Without debug only warnings and errors are written.
func New(w io.Writer, debug bool) Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("06-01-02 15:04:05.0")
	encCfg.CallerKey = ""

	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return &zapLogger{base: zap.New(core)}
}

// NewNop creates a logger that discards everything.
func NewNop() Logger {
	return &zapLogger{base: zap.NewNop()}
}

func (l *zapLogger) SetStep(step string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.step = step
}

// logWithLevel writes a log entry with the specified level
func (l *zapLogger) logWithLevel(level zapcore.Level, format string, args ...interface{}) {
	l.mu.Lock()
	step := l.step
	l.mu.Unlock()

	sugar := l.base.Sugar()
	if step != "" {
		sugar = sugar.With("step", step)
	}

	switch level {
	case zapcore.DebugLevel:
		sugar.Debugf(format, args...)
	case zapcore.InfoLevel:
		sugar.Infof(format, args...)
	case zapcore.WarnLevel:
		sugar.Warnf(format, args...)
	default:
		sugar.Errorf(format, args...)
	}
}

func (l *zapLogger) Debug(format string, args ...interface{}) {
	l.logWithLevel(zapcore.DebugLevel, format, args...)
}

func (l *zapLogger) Info(format string, args ...interface{}) {
	l.logWithLevel(zapcore.InfoLevel, format, args...)
}

func (l *zapLogger) Warn(format string, args ...interface{}) {
	l.logWithLevel(zapcore.WarnLevel, format, args...)
}

func (l *zapLogger) Error(format string, args ...interface{}) {
	l.logWithLevel(zapcore.ErrorLevel, format, args...)
}

func (l *zapLogger) StartTimer(operation string) *Timer {
	l.logWithLevel(zapcore.DebugLevel, "%s started", operation)
	return &Timer{
		operation: operation,
		start:     time.Now(),
		logger:    l,
	}
}

func (l *zapLogger) Close() error {
	return l.base.Sync()
}

// Global logger instance
var globalLogger Logger = New(os.Stderr, false)

// SetGlobal sets the global logger instance.
func SetGlobal(l Logger) {
	globalLogger = l
}

// Global returns the global logger instance.
func Global() Logger {
	return globalLogger
}

// Debug logs debug information using the global logger.
func Debug(format string, args ...interface{}) {
	globalLogger.Debug(format, args...)
}

// Info logs informational message using the global logger.
func Info(format string, args ...interface{}) {
	globalLogger.Info(format, args...)
}

// Warn logs a warning using the global logger.
func Warn(format string, args ...interface{}) {
	globalLogger.Warn(format, args...)
}

// Error logs an error using the global logger.
func Error(format string, args ...interface{}) {
	globalLogger.Error(format, args...)
}
