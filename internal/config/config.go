package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage        string `env:"STAGE,required"`
	Port         int    `env:"PORT" envDefault:"9191"`
	DatabaseUrl  string `env:"DATABASE_URL"`
	MigrationDir string `env:"MIGRATION_DIR" envDefault:"file://db/migration"`
	GridSize     int    `env:"GRID_SIZE" envDefault:"10"`

	// Checked against the Origin header in prod only
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Load reads the .env file outside of prod and
// then parses the environment into a Config.
func Load(envFiles ...string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if len(envFiles) == 0 {
			envFiles = []string{".env"}
		}
		// Missing .env files are fine, the variables may come from the shell.
		for _, f := range envFiles {
			if _, err := os.Stat(f); err != nil {
				continue
			}
			if err := godotenv.Load(f); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", f, err)
			}
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Stage != StageProd && c.Stage != StageDev {
		return cerr.ErrInvalidStage(c.Stage)
	}
	if c.GridSize <= 0 {
		return cerr.ErrInvalidGridSize(c.GridSize)
	}
	return nil
}

func (c Config) AnalyticsEnabled() bool {
	return c.DatabaseUrl != ""
}
