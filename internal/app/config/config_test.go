package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.False(t, cfg.LogConsole)
	assert.Empty(t, cfg.Lessons)
	assert.True(t, cfg.MetricsEnabled)
	assert.Empty(t, cfg.MetricsTextfile)
}

func TestLoadConfig_File(t *testing.T) {
	dir := writeConfig(t, `
environment: production
log_dir: /tmp/lesson-logs
lessons:
  - closures
  - data-privacy
metrics_enabled: false
metrics_textfile: /tmp/lessons.prom
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "/tmp/lesson-logs", cfg.LogDir)
	assert.Equal(t, []string{"closures", "data-privacy"}, cfg.Lessons)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "/tmp/lessons.prom", cfg.MetricsTextfile)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := writeConfig(t, "environment: production\n")
	t.Setenv("LESSONS_ENVIRONMENT", "test")
	t.Setenv("LESSONS_LOG_DIR", "elsewhere")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "elsewhere", cfg.LogDir)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown environment", body: "environment: staging\n"},
		{name: "empty lesson name", body: "lessons:\n  - closures\n  - \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "environment: [unterminated\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}
