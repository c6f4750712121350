package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.CoursesPerPage)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "admin", cfg.AdminUsername)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "db_name: from_file\ncourses_per_page: 12\ntoken_ttl: 2h\nserver_port: \"9000\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.DBName)
	assert.Equal(t, 12, cfg.CoursesPerPage)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "9100", cfg.ServerPort)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	t.Run("ttl", func(t *testing.T) {
		t.Setenv("TOKEN_TTL", "soon")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("page size", func(t *testing.T) {
		t.Setenv("COURSES_PER_PAGE", "0")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestDSN(t *testing.T) {
	cfg := Default()
	assert.Equal(t,
		"host=localhost user=postgres password=postgres dbname=course_reviews port=5432 sslmode=disable",
		cfg.DSN(),
	)
}
