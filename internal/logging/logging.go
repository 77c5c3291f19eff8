package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mitchelldurbincs/ConquestRules/internal/config"
)

// ParseLevel maps a config level name to a zerolog level. Unknown names
// fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Setup builds the root logger. Console output goes to out, formatted as
// configured. When a file path is set, records are also written as JSON to
// a rotating file. The returned close func releases the file.
func Setup(cfg config.LoggingConfig, out io.Writer) (zerolog.Logger, func() error) {
	var console io.Writer = out
	if cfg.Format != "json" {
		console = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	closer := func() error { return nil }
	writer := console
	if cfg.File.Path != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    max(1, cfg.File.MaxSizeMB),
			MaxBackups: max(0, cfg.File.MaxBackups),
			MaxAge:     max(0, cfg.File.MaxAgeDays),
			Compress:   cfg.File.Compress,
		}
		writer = zerolog.MultiLevelWriter(console, file)
		closer = file.Close
	}

	logger := zerolog.New(writer).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
	return logger, closer
}
