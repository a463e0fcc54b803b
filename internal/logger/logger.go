// Package logger is the process-wide leveled logger. The core
// extraction and resolution paths stay quiet; only the CLI and the
// dataset fetcher log.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var (
	mu      sync.Mutex
	current = levelInfo
	loggers = map[level]*log.Logger{
		levelDebug: log.New(os.Stdout, "[DEBUG] ", log.LstdFlags),
		levelInfo:  log.New(os.Stdout, "[INFO] ", log.LstdFlags),
		levelWarn:  log.New(os.Stdout, "[WARN] ", log.LstdFlags),
		levelError: log.New(os.Stderr, "[ERROR] ", log.LstdFlags),
	}
)

// SetOutput redirects all levels to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	for _, l := range loggers {
		l.SetOutput(w)
	}
}

// SetLevel sets the minimum level from its string name. Unknown
// names fall back to info.
func SetLevel(name string) {
	mu.Lock()
	defer mu.Unlock()

	switch strings.ToLower(name) {
	case "debug":
		current = levelDebug
	case "warn", "warning":
		current = levelWarn
	case "error":
		current = levelError
	default:
		current = levelInfo
	}
}

func logf(lvl level, format string, v ...interface{}) {
	mu.Lock()
	enabled := current <= lvl
	l := loggers[lvl]
	mu.Unlock()

	if enabled {
		l.Output(3, fmt.Sprintf(format, v...))
	}
}

func Debug(format string, v ...interface{}) { logf(levelDebug, format, v...) }
func Info(format string, v ...interface{})  { logf(levelInfo, format, v...) }
func Warn(format string, v ...interface{})  { logf(levelWarn, format, v...) }
func Error(format string, v ...interface{}) { logf(levelError, format, v...) }
