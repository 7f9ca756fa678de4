package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr      string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath        string     `env:"DB_PATH" envDefault:"data/wordwheel.db"`
	LogLevel      slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	AdminEmail    string     `env:"ADMIN_EMAIL"`
	AdminPassword string     `env:"ADMIN_PASSWORD"`
	TopPlayers    int        `env:"TOP_PLAYERS" envDefault:"10"`
	RecentRounds  int        `env:"RECENT_ROUNDS" envDefault:"10"`
	SPADir        string     `env:"SPA_DIR"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
