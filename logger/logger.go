// Package logger wraps logrus with a plain single-line format and file output.
//
// The terminal owns stdout while frames are drawn, so the root logger discards
// everything until SetupFile points it at a file.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger/Entry/Fields expose the underlying types so callers need not import logrus
type Logger = logrus.Logger
type Entry = logrus.Entry
type Fields = logrus.Fields

const (
	// DefaultLogPath is used when SetupFile gets an empty path
	DefaultLogPath = "logs/kiloc.log"
	// MaxLogSize triggers rotation of an existing log file on setup
	MaxLogSize = 10 * 1024 * 1024
)

var rootLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(PlainFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Root returns the shared logger
func Root() *Logger {
	if rootLogger == nil {
		rootLogger = newDiscardLogger()
	}
	return rootLogger
}

// SetRoot replaces the shared logger; nil resets to the discarding default
func SetRoot(l *Logger) {
	if l == nil {
		l = newDiscardLogger()
	}
	rootLogger = l
}

// Named returns an entry tagged with a component field
func Named(component string) *Entry {
	entry := logrus.NewEntry(Root())
	if component != "" {
		entry = entry.WithField("component", component)
	}
	return entry
}

// SetupFile redirects the root logger to logPath at the given level
// An existing file over MaxLogSize is moved to logPath+".old" first
// Returns the file closer and the resolved path
func SetupFile(logPath, level string) (io.Closer, string, error) {
	if logPath == "" {
		logPath = DefaultLogPath
	}
	lvl := logrus.InfoLevel
	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, "", fmt.Errorf("log level: %w", err)
		}
		lvl = parsed
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, "", err
	}
	if info, err := os.Stat(logPath); err == nil && info.Size() > MaxLogSize {
		if err := os.Rename(logPath, logPath+".old"); err != nil {
			return nil, "", fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, "", err
	}

	l := Root()
	l.SetOutput(f)
	l.SetLevel(lvl)
	l.SetReportCaller(true)
	return f, logPath, nil
}

// PlainFormatter writes: caller [timestamp] [LEVEL] [component] message k=v...
type PlainFormatter struct{}

// Format implements logrus.Formatter
func (PlainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry == nil {
		return []byte{}, nil
	}
	parts := make([]string, 0, 6)
	if entry.HasCaller() && entry.Caller != nil {
		parts = append(parts, fmt.Sprintf("%s:%d", shortenFilePath(entry.Caller.File), entry.Caller.Line))
	}
	parts = append(parts, fmt.Sprintf("[%s]", entry.Time.UTC().Format(time.RFC3339Nano)))
	parts = append(parts, fmt.Sprintf("[%s]", strings.ToUpper(entry.Level.String())))
	if c, ok := entry.Data["component"].(string); ok && c != "" {
		parts = append(parts, fmt.Sprintf("[%s]", c))
	}
	parts = append(parts, entry.Message)
	if fields := formatFields(entry.Data); fields != "" {
		parts = append(parts, fields)
	}
	return []byte(strings.Join(parts, " ") + "\n"), nil
}

func formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "component" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(parts, " ")
}

func shortenFilePath(file string) string {
	file = filepath.ToSlash(file)
	if idx := strings.Index(file, "/kiloc/"); idx != -1 {
		return file[idx+len("/kiloc/"):]
	}
	return filepath.Base(file)
}
