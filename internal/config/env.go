package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotEnvFile is read from the working directory before the environment is parsed.
const DotEnvFile = ".env"

// Env is the process configuration read from environment variables.
type Env struct {
	DatabaseURL string `env:"DATABASE_URL"`
	Reset       Switch `env:"DB_RESET"`
	RosterPath  string `env:"FLEETSIM_ROSTER"`
	Preset      string `env:"FLEETSIM_PRESET"`
	Policy      string `env:"FLEETSIM_POLICY" envDefault:"self"`
	Seed        int64  `env:"FLEETSIM_SEED"`
	LogLevel    string `env:"FLEETSIM_LOG_LEVEL" envDefault:"info"`
}

// Switch is an on/off setting. Boolean spellings are honoured; any other
// non-empty value turns it on, so DB_RESET=yes resets.
type Switch bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Switch) UnmarshalText(text []byte) error {
	if b, err := strconv.ParseBool(string(text)); err == nil {
		*s = Switch(b)
		return nil
	}
	*s = Switch(len(text) > 0)
	return nil
}

// LoadDotEnv exports the variables in path that are not already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseEnv loads configuration from .env and then from environment variables.
// Variables already present in the environment win over .env entries.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := LoadDotEnv(DotEnvFile); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings that have no usable default.
// Call it after command-line overrides have been applied.
func (e Env) Validate() error {
	if e.DatabaseURL == "" {
		return errors.New("config: DATABASE_URL is not set")
	}
	return nil
}
