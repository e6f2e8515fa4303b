// Package config loads tool configuration from an optional YAML file with
// STRIX_-prefixed environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"firestige.xyz/strix/internal/log"
)

// Config is the full tool configuration.
type Config struct {
	Log     log.Config    `mapstructure:"log"`
	Capture CaptureConfig `mapstructure:"capture"`
	Report  ReportConfig  `mapstructure:"report"`
}

// CaptureConfig tunes capture-file reading.
type CaptureConfig struct {
	// MaxCapturedLen bounds a single record's declared captured length;
	// larger values are treated as file corruption. Zero means the
	// built-in default.
	MaxCapturedLen uint32 `mapstructure:"max_captured_len"`
}

// ReportConfig controls analyze output rendering.
type ReportConfig struct {
	// Format is one of "text", "json", "yaml".
	Format string `mapstructure:"format"`
}

// Load reads configuration from path. An empty path, or a missing file at
// the default location, yields the defaults with env overrides applied.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("STRIX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}

		dir := filepath.Dir(path)
		filename := filepath.Base(path)
		fileExt := filepath.Ext(filename)

		v.SetConfigName(strings.TrimSuffix(filename, fileExt))
		v.SetConfigType(strings.TrimPrefix(fileExt, "."))
		v.AddConfigPath(dir)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := log.DefaultConfig()
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Level
	}
	if cfg.Log.Pattern == "" {
		cfg.Log.Pattern = def.Pattern
	}
	if cfg.Log.Time == "" {
		cfg.Log.Time = def.Time
	}
	if cfg.Report.Format == "" {
		cfg.Report.Format = "text"
	}
}
