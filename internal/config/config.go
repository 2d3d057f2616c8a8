package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"
)

type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

var (
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrUnknownFormat  = errors.New("unknown log format")
)

// Config is read from the environment first; command-line flags override
// individual fields afterwards.
type Config struct {
	StateDir    string  `env:"GCART_STATE_DIR"`
	CatalogPath string  `env:"GCART_CATALOG"`
	Backend     Backend `env:"GCART_BACKEND" envDefault:"file"`
	LogLevel    string  `env:"GCART_LOG_LEVEL" envDefault:"warn"`
	LogFormat   string  `env:"GCART_LOG_FORMAT" envDefault:"text"`
}

// Load parses the environment and fills path defaults. It does not
// validate: callers apply their overrides first and then call Validate.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.StateDir == "" {
		c.StateDir = DefaultStateDir()
	}
	if c.CatalogPath == "" {
		c.CatalogPath = DefaultCatalogPath()
	}
}

func (c Config) Validate() error {
	if !slices.Contains([]Backend{BackendFile, BackendSQLite, BackendMemory}, c.Backend) {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.LogFormat)
	}
	return nil
}
