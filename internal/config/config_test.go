package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, 1.0, cfg.Limits.VMax)
	assert.Equal(t, 1.0, cfg.Limits.AMax)
	assert.Equal(t, 1000, cfg.Sampling.Count)
	assert.Equal(t, 0, cfg.Sampling.Workers)
	assert.False(t, cfg.Sampling.Strict)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motion.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logger:
  level: debug
  format: json
limits:
  v_max: 3
  a_max: 0.5
sampling:
  count: 250
  strict: true
`), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, 3.0, cfg.Limits.VMax)
	assert.Equal(t, 0.5, cfg.Limits.AMax)
	assert.Equal(t, 250, cfg.Sampling.Count)
	assert.True(t, cfg.Sampling.Strict)
	assert.Equal(t, "robot-planning", cfg.Logger.ServiceName, "unset keys keep defaults")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MOTION_LIMITS_V_MAX", "4.5")
	t.Setenv("MOTION_SAMPLING_WORKERS", "2")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 4.5, cfg.Limits.VMax)
	assert.Equal(t, 2, cfg.Sampling.Workers)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad format", func(c *Config) { c.Logger.Format = "xml" }},
		{"zero v_max", func(c *Config) { c.Limits.VMax = 0 }},
		{"negative a_max", func(c *Config) { c.Limits.AMax = -1 }},
		{"zero count", func(c *Config) { c.Sampling.Count = 0 }},
		{"negative workers", func(c *Config) { c.Sampling.Workers = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
