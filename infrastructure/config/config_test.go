package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "New Model", cfg.ModelName)
	assert.Equal(t, 40, cfg.HistoryLimit)
	assert.Equal(t, "data/model.db", cfg.DatabasePath)
	assert.Equal(t, "archimate-ingester", cfg.JWTIssuer)
	assert.True(t, cfg.EnableCORS)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.AuthEnabled())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("HISTORY_LIMIT", "5")
	t.Setenv("ENABLE_CORS", "false")
	t.Setenv("JWT_SECRET", "sekret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ServerAddress)
	assert.Equal(t, 5, cfg.HistoryLimit)
	assert.False(t, cfg.EnableCORS)
	assert.True(t, cfg.AuthEnabled())
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{Environment: "development", HistoryLimit: 1}
	assert.NoError(t, cfg.Validate())

	cfg.HistoryLimit = 0
	assert.Error(t, cfg.Validate())

	prod := &Config{Environment: "production", HistoryLimit: 10, DatabasePath: "data/model.db"}
	assert.Error(t, prod.Validate(), "production requires a JWT secret")

	prod.JWTSecret = "sekret"
	assert.NoError(t, prod.Validate())

	prod.DatabasePath = ""
	assert.Error(t, prod.Validate())
}
