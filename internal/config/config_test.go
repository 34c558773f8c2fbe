package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://data.ny.gov/resource/5xaw-6ayf.json", cfg.Results.BaseURL)
	assert.False(t, cfg.Results.Mock)
	assert.Equal(t, "localhost", cfg.Mail.Server)
	assert.Equal(t, "25", cfg.Mail.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}
