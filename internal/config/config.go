package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration. Source and
// output paths are deliberately optional here: each processing step checks
// presence itself and skips with a notice instead of failing the run.
type Config struct {
	Sources SourcesConfig `yaml:"sources" envconfig:"SOURCES"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// SourcesConfig contains the input directories for the supported exports
type SourcesConfig struct {
	// SpotifyDir holds a multi-file Spotify extended streaming history
	// export (Streaming_History_Audio*.json parts)
	SpotifyDir string `yaml:"spotify_dir" envconfig:"SPOTIFY_DIR"`
	// ScreenshotsDir holds arbitrary files selected by modification time
	ScreenshotsDir string `yaml:"screenshots_dir" envconfig:"SCREENSHOTS_DIR"`
}

// OutputConfig contains the shared output location
type OutputConfig struct {
	Dir string `yaml:"dir" envconfig:"DIR"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/pdxcli.log"`
}

// EnvPrefix is the prefix for all environment variables (PDX_SOURCES_SPOTIFY_DIR, ...)
const EnvPrefix = "PDX"

// Load loads configuration from environment variables and an optional YAML
// file. Environment defaults are applied first; non-empty file values then
// override them. An absent file is not an error.
func Load(configFile string) (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileCfg, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = mergeConfigs(cfg, *fileCfg)
		}
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs overlays non-empty file values on top of the base config
func mergeConfigs(base, file Config) Config {
	merged := base

	if file.Sources.SpotifyDir != "" {
		merged.Sources.SpotifyDir = file.Sources.SpotifyDir
	}
	if file.Sources.ScreenshotsDir != "" {
		merged.Sources.ScreenshotsDir = file.Sources.ScreenshotsDir
	}
	if file.Output.Dir != "" {
		merged.Output.Dir = file.Output.Dir
	}
	if file.Logging.Level != "" {
		merged.Logging.Level = file.Logging.Level
	}
	if file.Logging.Format != "" {
		merged.Logging.Format = file.Logging.Format
	}
	if file.Logging.Output != "" {
		merged.Logging.Output = file.Logging.Output
	}
	if file.Logging.FilePath != "" {
		merged.Logging.FilePath = file.Logging.FilePath
	}

	return merged
}

// validate checks enum-valued fields with the struct validator
func (c *Config) validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}
