// Package log provides structured logging for protokolo.
// It writes zerolog events to a file under the data directory, tagged with a
// category field, and is enabled via the --debug flag or PROTOKOLO_DEBUG env.
package log

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Category groups related log messages.
type Category string

const (
	CatDB      Category = "db"      // Database operations and migrations
	CatConfig  Category = "config"  // Configuration loading/saving
	CatWatcher Category = "watcher" // File watcher events
	CatCLI     Category = "cli"     // Command handling
)

var (
	mu      sync.Mutex
	file    *os.File
	logger  zerolog.Logger
	enabled bool
)

// Init opens the log file and enables logging. Returns a cleanup function
// that closes the file.
func Init(path string) (func(), error) {
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	file = f
	logger = zerolog.New(f).With().Timestamp().Logger()
	enabled = true

	return func() {
		mu.Lock()
		defer mu.Unlock()
		enabled = false
		_ = f.Close()
	}, nil
}

// SetEnabled toggles logging on/off without closing the file.
func SetEnabled(on bool) {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		enabled = on
	}
}

// Debug logs at debug level with key=value field pairs.
func Debug(cat Category, msg string, fields ...any) {
	write(zerolog.DebugLevel, cat, msg, fields...)
}

// Info logs at info level with key=value field pairs.
func Info(cat Category, msg string, fields ...any) {
	write(zerolog.InfoLevel, cat, msg, fields...)
}

// Warn logs at warning level with key=value field pairs.
func Warn(cat Category, msg string, fields ...any) {
	write(zerolog.WarnLevel, cat, msg, fields...)
}

// Error logs at error level with key=value field pairs.
func Error(cat Category, msg string, fields ...any) {
	write(zerolog.ErrorLevel, cat, msg, fields...)
}

// ErrorErr logs an error value at error level.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	fields = append(fields, "error", err)
	write(zerolog.ErrorLevel, cat, msg, fields...)
}

func write(level zerolog.Level, cat Category, msg string, fields ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}

	event := logger.WithLevel(level).Str("category", string(cat))
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, fields[i+1])
	}
	event.Msg(msg)
}
