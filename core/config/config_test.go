package config_test

import (
	"testing"

	"timetable-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "kiosk", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "main", cfg.Liss.Structure)
	assert.Equal(t, 10002, cfg.Liss.Version)
	assert.Equal(t, 3306, cfg.Database.Port)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("LISS_ENDPOINT", "https://liss.example/api")
	t.Setenv("SERVER_PORT", "9000")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://liss.example/api", cfg.Liss.Endpoint)
	assert.Equal(t, "9000", cfg.Server.Port)
}
