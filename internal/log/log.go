// Package log provides structured, colored logging for s33d.
//
// All log output goes to stderr; stdout is reserved for the phrase and the
// artifacts the user asked for. Never attach entropy, words, seeds or
// passphrases to a log event.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps the console quiet unless something needs attention.
const DefaultLevel = "warn"

// Logger is the global logger instance.
var Logger zerolog.Logger

// Component loggers for different parts of the system.
var (
	Entropy  zerolog.Logger
	Wordlist zerolog.Logger
	Mnemonic zerolog.Logger
	CLI      zerolog.Logger
)

// output is where console logs go. Tests swap it.
var output io.Writer = os.Stderr

// logFile is the file opened by the last Init, if any.
var logFile *os.File

func init() {
	Logger = NewConsoleLogger(output, DefaultLevel)
	initComponentLoggers()
}

// Init rebuilds the loggers. Console events are colored unless jsonOutput
// is set. A non-empty file receives a JSON copy of every event; the file
// from a previous Init is closed.
func Init(level string, jsonOutput bool, file string) error {
	var f *os.File
	if file != "" {
		var err error
		f, err = os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return err
		}
	}

	var w io.Writer = output
	if !jsonOutput {
		w = consoleWriter(output)
	}
	if f != nil {
		w = zerolog.MultiLevelWriter(w, f)
	}
	Logger = newLogger(w, level)
	initComponentLoggers()

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	return nil
}

// SetOutput redirects console logging to w and rebuilds the loggers at the
// given level. Any open log file is closed.
func SetOutput(w io.Writer, level string, jsonOutput bool) {
	output = w
	_ = Init(level, jsonOutput, "")
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
}

// NewConsoleLogger creates a colored console logger.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	return newLogger(consoleWriter(w), level)
}

// NewJSONLogger creates a structured JSON logger.
func NewJSONLogger(w io.Writer, level string) zerolog.Logger {
	return newLogger(w, level)
}

// ValidLevel reports whether level is a level name Init understands.
func ValidLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

func initComponentLoggers() {
	Entropy = WithComponent("entropy")
	Wordlist = WithComponent("wordlist")
	Mnemonic = WithComponent("mnemonic")
	CLI = WithComponent("cli")
}

// WithComponent returns a logger with a component field.
func WithComponent(name string) zerolog.Logger {
	return Logger.With().Str("component", name).Logger()
}

// Benchmark helper for timing operations.
func Benchmark(name string) func() {
	start := time.Now()
	return func() {
		Logger.Debug().
			Str("operation", name).
			Dur("duration", time.Since(start)).
			Msg("benchmark")
	}
}
