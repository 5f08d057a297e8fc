package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger = zap.NewNop()
	closer func() error
	mu     sync.Mutex
)

// Enable turns on debug logging to the specified file.
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)

	// Release the previous file before switching.
	closeLocked()
	logger = zap.New(core)
	closer = f.Close

	logger.Debug("Debug logging enabled", zap.String("path", path))
	return nil
}

// Close flushes and closes the debug log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
}

// closeLocked syncs and closes the current log file. mu must be held.
func closeLocked() {
	_ = logger.Sync()
	if closer != nil {
		_ = closer()
		closer = nil
	}
	logger = zap.NewNop()
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return closer != nil
}

// Logger returns the current logger. It is a no-op logger while disabled.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Log writes a debug message if debugging is enabled.
func Log(format string, args ...interface{}) {
	Logger().Debug(fmt.Sprintf(format, args...))
}

// Info writes a structured message if debugging is enabled.
func Info(msg string, fields ...zap.Field) {
	Logger().Info(msg, fields...)
}

// Timed logs the duration of an operation. Usage:
//
//	defer debug.Timed("operation name")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	l := Logger().With(zap.String("op", name))
	l.Debug("started")

	return func() {
		l.Debug("completed", zap.Duration("elapsed", time.Since(start)))
	}
}
