package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"tripstats/core"
	"tripstats/logger"
)

const (
	DefaultService = "tripstats"
	DefaultLevel   = logger.LevelInfo
)

// Default returns the configuration used when no file overrides a field.
func Default() *Config {
	cacheEnabled := true
	return &Config{
		Analyzer: AnalyzerConfig{TopK: core.DefaultTopK},
		Store: StoreConfig{
			Engine:       core.EngineMemory,
			CacheEnabled: &cacheEnabled,
		},
		Log: LogConfig{Service: DefaultService, Level: DefaultLevel},
	}
}

// Load reads the YAML file at path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Store.CacheEnabled == nil {
		cacheEnabled := true
		cfg.Store.CacheEnabled = &cacheEnabled
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// StoreConfig converts the store section for core.New.
func (cfg *Config) StoreConfig() *core.StoreConfig {
	return &core.StoreConfig{
		Engine:       cfg.Store.Engine,
		Path:         cfg.Store.Path,
		InMemory:     cfg.Store.InMemory,
		CacheEnabled: cfg.Store.CacheEnabled == nil || *cfg.Store.CacheEnabled,
	}
}

// Logger builds the logger described by the log section.
func (cfg *Config) Logger() logger.Logger {
	return logger.InitLogger(cfg.Log.Service, cfg.Log.Level)
}
