package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"machikoro/internal/engine"
)

// Config holds process settings read from the environment.
type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	RulesFile string `env:"RULES_FILE"`
	Dev       bool   `env:"DEV"`

	MaxPlayers int `env:"MAX_PLAYERS" envDefault:"4"`
	MinPlayers int `env:"MIN_PLAYERS" envDefault:"2"`

	// LeaveGrace is how long a disconnected player keeps their seat.
	LeaveGrace time.Duration `env:"LEAVE_GRACE" envDefault:"30s"`
}

// Load reads Config from the environment and checks the table size against
// what the engine supports.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MinPlayers < engine.MinPlayers || cfg.MaxPlayers > engine.MaxPlayers || cfg.MinPlayers > cfg.MaxPlayers {
		return Config{}, fmt.Errorf("players must be within %d..%d, got %d..%d",
			engine.MinPlayers, engine.MaxPlayers, cfg.MinPlayers, cfg.MaxPlayers)
	}
	return cfg, nil
}

// LoadRules returns the default rules overlaid with the YAML file at path.
// Keys missing from the file keep their default. An empty path means no file.
func LoadRules(path string) (engine.Rules, error) {
	r := engine.DefaultRules()
	if path == "" {
		return r, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return engine.Rules{}, fmt.Errorf("read rules: %w", err)
	}
	if err := yaml.Unmarshal(b, &r); err != nil {
		return engine.Rules{}, fmt.Errorf("parse rules %s: %w", path, err)
	}
	if r.StartingMoney < 0 || r.EstablishmentCopies < 1 || r.LandmarkCopies < 1 {
		return engine.Rules{}, fmt.Errorf("rules %s: starting money and copy counts must be positive", path)
	}
	return r, nil
}
