package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	settings, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, 1200, settings.MaxSchedulePeriods)
	assert.Equal(t, "monthly", settings.DefaultFrequency)
	assert.Equal(t, "info", settings.Logging.Level)
	assert.Equal(t, "console", settings.Logging.Format)
	assert.Equal(t, "json", settings.Output.Format)
}

func TestLoadSettings_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	document := []byte(`
max_schedule_periods: 360
default_frequency: bi-weekly
logging:
  level: debug
  format: json
output:
  format: table
`)
	require.NoError(t, os.WriteFile(path, document, 0o600))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, 360, settings.MaxSchedulePeriods)
	assert.Equal(t, "bi-weekly", settings.DefaultFrequency)
	assert.Equal(t, "debug", settings.Logging.Level)
	assert.Equal(t, "json", settings.Logging.Format)
	assert.Equal(t, "table", settings.Output.Format)
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
