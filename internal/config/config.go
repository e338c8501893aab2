// Package config loads runtime settings for the planner and CLI from defaults,
// an optional YAML file and MOTION_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. MOTION_LIMITS_V_MAX.
const EnvPrefix = "MOTION"

// Config holds the entire application configuration.
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Limits   LimitsConfig   `mapstructure:"limits" yaml:"limits"`
	Sampling SamplingConfig `mapstructure:"sampling" yaml:"sampling"`
}

// LoggerConfig controls the zap logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"` // "console" or "json"
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"` // megabytes
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"` // days
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// LimitsConfig are the default limits for moves that do not set their own.
type LimitsConfig struct {
	VMax float64 `mapstructure:"v_max" yaml:"v_max"`
	AMax float64 `mapstructure:"a_max" yaml:"a_max"`
}

// SamplingConfig controls bulk evaluation.
type SamplingConfig struct {
	Count   int  `mapstructure:"count" yaml:"count"`     // points per move
	Workers int  `mapstructure:"workers" yaml:"workers"` // 0 means GOMAXPROCS
	Strict  bool `mapstructure:"strict" yaml:"strict"`   // reject query times outside the profile
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "robot-planning")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Limits --
	v.SetDefault("limits.v_max", 1.0)
	v.SetDefault("limits.a_max", 1.0)

	// -- Sampling --
	v.SetDefault("sampling.count", 1000)
	v.SetDefault("sampling.workers", 0)
	v.SetDefault("sampling.strict", false)
}

// NewDefaultConfig returns the configuration with only defaults applied.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load reads configuration into v. An empty cfgFile searches ./config.yaml and
// tolerates its absence; an explicit path must exist.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return NewConfigFromViper(v)
}

// NewConfigFromViper decodes and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	if !(c.Limits.VMax > 0) {
		return fmt.Errorf("limits.v_max must be positive, got %v", c.Limits.VMax)
	}
	if !(c.Limits.AMax > 0) {
		return fmt.Errorf("limits.a_max must be positive, got %v", c.Limits.AMax)
	}
	if c.Sampling.Count < 1 {
		return fmt.Errorf("sampling.count must be at least 1, got %d", c.Sampling.Count)
	}
	if c.Sampling.Workers < 0 {
		return fmt.Errorf("sampling.workers must not be negative, got %d", c.Sampling.Workers)
	}
	return nil
}
