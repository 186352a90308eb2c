// Package logger configures the process-wide zap logger used by the CLI.
//
// Library packages log through zap.S(), which stays a no-op until
// Initialize replaces the globals.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is a textual log level such as "DEBUG" or "info".
type Level string

// Format selects the log encoder.
type Format string

const (
	DebugLevel Level = "DEBUG"
	InfoLevel  Level = "INFO"
	WarnLevel  Level = "WARN"
	ErrorLevel Level = "ERROR"

	FormatConsole Format = "CONSOLE"
	FormatJSON    Format = "JSON"
)

// Component names passed to For.
const (
	ComponentCLI    = "cli"
	ComponentConfig = "config"
	ComponentBatch  = "batch"
)

var (
	initOnce sync.Once
	output   io.Writer = os.Stderr
)

// ParseLevel maps a level name to its zapcore level. Unknown names are an error.
func ParseLevel(level Level) (zapcore.Level, error) {
	switch strings.ToUpper(string(level)) {
	case string(DebugLevel):
		return zapcore.DebugLevel, nil
	case string(InfoLevel), "":
		return zapcore.InfoLevel, nil
	case string(WarnLevel), "WARNING":
		return zapcore.WarnLevel, nil
	case string(ErrorLevel):
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// ParseFormat normalizes a format name. Empty means console.
func ParseFormat(format Format) (Format, error) {
	switch Format(strings.ToUpper(string(format))) {
	case FormatConsole, "":
		return FormatConsole, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q", format)
	}
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05 MST"))
}

func encoderConfig(format Format) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "component",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if format == FormatConsole {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeTime = timeEncoder
		cfg.ConsoleSeparator = " | "
	} else {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	return cfg
}

// New builds a logger writing to w with the given level and format.
func New(w io.Writer, level Level, format Format) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	var encoder zapcore.Encoder
	if f == FormatJSON {
		encoder = zapcore.NewJSONEncoder(encoderConfig(f))
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig(f))
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))

	return zap.New(core, zap.AddCaller()), nil
}

// Initialize replaces the global loggers once. Later calls are no-ops and
// return nil.
func Initialize(level Level, format Format) error {
	var err error

	initOnce.Do(func() {
		var l *zap.Logger

		l, err = New(output, level, format)
		if err != nil {
			return
		}

		zap.ReplaceGlobals(l)
		l.Debug("Logger initialized",
			zap.String("level", string(level)),
			zap.String("format", string(format)))
	})

	return err
}

// For returns a sugared logger named after a component.
func For(component string) *zap.SugaredLogger {
	return zap.S().Named(component)
}

// Sync flushes buffered entries of the global logger.
func Sync() error {
	return zap.L().Sync()
}
