package utils

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// LoggerConfig describes how the application logger writes.
type LoggerConfig struct {
	// json or text
	Format string
	// debug, info, warn, error
	Level string
	// Defaults to os.Stdout.
	Output io.Writer
}

// InitLogger builds the application logger.
func InitLogger(config ...LoggerConfig) zerolog.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	writer := cfg.Output
	if cfg.Format != "json" {
		writer = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}

	return zerolog.New(writer).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "course-reviews").
		Logger()
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// GormLogLevel maps the application level onto GORM's SQL logger.
func GormLogLevel(level string) gormlogger.LogLevel {
	switch parseLevel(level) {
	case zerolog.DebugLevel, zerolog.TraceLevel:
		return gormlogger.Info
	case zerolog.InfoLevel, zerolog.WarnLevel:
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}
