package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "cascade-menu.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	rotator      *lumberjack.Logger
	logger       *slog.Logger
)

// Logger returns the shared JSON logger, opening the log file on first use.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return loggerLocked()
}

func loggerLocked() *slog.Logger {
	if logger == nil {
		rotator = &lumberjack.Logger{Filename: logPath, MaxSize: 10, MaxBackups: 3, MaxAge: 28}
		logger = newLogger(rotator)
	}
	return logger
}

func newLogger(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler).With(slog.String("app", "cascade-menu"))
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	Logger().Error(err.Error())
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	if !traceEnabled {
		mu.Unlock()
		return
	}
	l := loggerLocked()
	mu.Unlock()

	attrs := []any{slog.String("event", event)}
	if payload != nil {
		attrs = append(attrs, slog.Any("payload", payload))
	}
	l.Debug("trace", attrs...)
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	resetLocked()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// SetOutput sends log entries to w instead of the rotating file. A nil w
// restores file output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	resetLocked()
	if w != nil {
		logger = newLogger(w)
	}
}

// Close flushes and closes the rotating log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return resetLocked()
}

func resetLocked() error {
	var err error
	if rotator != nil {
		err = rotator.Close()
	}
	rotator = nil
	logger = nil
	return err
}
