package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "ticket-booking", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.False(t, config.App.Debug)
	assert.Equal(t, 10*time.Second, config.App.ShutdownTimeout)
	assert.True(t, config.Catalog.Seed)
	assert.False(t, config.Audit.Enabled)
	assert.Equal(t, int32(10), config.Database.MaxConns)
}

func TestLoadConfig_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nSEED_CATALOG=false\nDB_NAME=tickets\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("DB_NAME", "tickets_test")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.False(t, config.Catalog.Seed)
	assert.Equal(t, "tickets_test", config.Database.Name)
}
