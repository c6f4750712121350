package utils

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestInitLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LoggerConfig{Format: "json", Level: "warn", Output: &buf})

	logger.Info().Msg("hidden")
	logger.Warn().Str("code", "COMP201").Msg("shown")

	var line map[string]interface{}
	require.NoError(t, decodeJSON(&buf, &line))
	assert.Equal(t, "shown", line["message"])
	assert.Equal(t, "COMP201", line["code"])
	assert.Equal(t, "warn", line["level"])
}

func TestInitLoggerDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LoggerConfig{Format: "json", Level: "loud", Output: &buf})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, GormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, GormLogLevel("info"))
	assert.Equal(t, gormlogger.Error, GormLogLevel("error"))
}
