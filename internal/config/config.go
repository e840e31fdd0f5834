package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Kharcha"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Storage struct {
		// Path to the sqlite database file. Parent directories are
		// created on open.
		Path string `envconfig:"STORAGE_PATH" default:"kharcha.db"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
