package config

// AnalyzerConfig controls the ranked reports.
type AnalyzerConfig struct {
	TopK int `yaml:"topK" validate:"gte=0"`
}

// StoreConfig selects where analysis snapshots are kept.
type StoreConfig struct {
	Engine       string `yaml:"engine" validate:"oneof=badger memory"`
	Path         string `yaml:"path" validate:"required_if=Engine badger InMemory false"`
	InMemory     bool   `yaml:"inMemory"`
	CacheEnabled *bool  `yaml:"cacheEnabled"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Service string `yaml:"service" validate:"required"`
	Level   string `yaml:"level" validate:"oneof=DEBUG INFO WARN ERROR"`
}

// Config is the root configuration structure
type Config struct {
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Store    StoreConfig    `yaml:"store"`
	Log      LogConfig      `yaml:"log"`
}
