package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	OverviewWidth  float64 `envconfig:"OVERVIEW_WIDTH" default:"200"`
	OverviewHeight float64 `envconfig:"OVERVIEW_HEIGHT" default:"140"`
	WorldPadding   float64 `envconfig:"WORLD_PADDING" default:"40"`
	FallbackWidth  float64 `envconfig:"FALLBACK_WIDTH" default:"1000"`
	FallbackHeight float64 `envconfig:"FALLBACK_HEIGHT" default:"700"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("DRAWDECK", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
