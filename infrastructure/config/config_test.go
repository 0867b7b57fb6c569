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
	assert.Equal(t, "http://localhost:8000", cfg.GraphServiceURL)
	assert.Equal(t, 30, cfg.GraphServiceTimeout)
	assert.Equal(t, "data/constraints", cfg.DataDir)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.CORSOrigins)
	assert.True(t, cfg.EnableMetrics)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("GRAPH_SERVICE_URL", "http://graph:8000")
	t.Setenv("GRAPH_SERVICE_TIMEOUT", "5")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ENABLE_METRICS", "false")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "http://graph:8000", cfg.GraphServiceURL)
	assert.Equal(t, 5, cfg.GraphServiceTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.EnableMetrics)
	assert.True(t, cfg.IsProduction())
}

func TestValidate_RejectsMissingGraphServiceURL(t *testing.T) {
	cfg := &Config{GraphServiceTimeout: 30, DataDir: "data"}

	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveTimeout(t *testing.T) {
	cfg := &Config{GraphServiceURL: "http://localhost:8000", GraphServiceTimeout: 0, DataDir: "data"}

	assert.Error(t, cfg.Validate())
}

func TestLoadConfig_InvalidTimeoutFallsBackToDefault(t *testing.T) {
	t.Setenv("GRAPH_SERVICE_TIMEOUT", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.GraphServiceTimeout)
}
