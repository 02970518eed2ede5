// Package logging configures the process-wide logrus logger.
package logging

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// LogConfig represents logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text, or simple
}

// CompactFormatter renders "[LEVEL][component] message (k=v, ...)" lines
// for interactive runs.
type CompactFormatter struct{}

// Format renders a single log entry.
func (f *CompactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}
	if entry.Buffer != nil {
		b = entry.Buffer
	}

	fmt.Fprintf(b, "[%s]", strings.ToUpper(entry.Level.String()))
	if component, ok := entry.Data["component"]; ok {
		fmt.Fprintf(b, "[%s]", component)
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "component" {
			keys = append(keys, k)
		}
	}
	if len(keys) > 0 {
		sort.Strings(keys)
		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s=%v", k, entry.Data[k])
		}
		b.WriteString(")")
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// InitLogger initializes the global logger with the provided configuration.
func InitLogger(config LogConfig) {
	Logger = logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
		Logger.Warnf("Invalid log level '%s', defaulting to 'info'", config.Level)
	}
	Logger.SetLevel(level)

	switch strings.ToLower(config.Format) {
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	case "simple", "":
		Logger.SetFormatter(&CompactFormatter{})
	case "text":
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		Logger.SetFormatter(&CompactFormatter{})
		Logger.Warnf("Invalid log format '%s', defaulting to 'simple'", config.Format)
	}

	// Logs go to stderr so stdout stays clean for prompts and summaries.
	Logger.SetOutput(os.Stderr)
}

// GetLogger returns the global logger instance.
func GetLogger() *logrus.Logger {
	if Logger == nil {
		InitLogger(LogConfig{Level: "info", Format: "simple"})
	}
	return Logger
}

// WithComponent tags entries with the emitting component.
func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField("component", component)
}

// WithError wraps an error into a log entry.
func WithError(err error) *logrus.Entry {
	return GetLogger().WithError(err)
}
