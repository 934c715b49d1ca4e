// Package config reads server and game settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/dezgeg/shenzen-solitaire/game"
)

const DefaultEnvFile = ".env"

type Config struct {
	Port string `env:"SOLITAIRE_PORT,default=8000"`
	// AllowedOrigins is a comma separated list for CORS
	AllowedOrigins string        `env:"SOLITAIRE_ALLOWED_ORIGINS,default=*"`
	LogLevel       string        `env:"SOLITAIRE_LOG_LEVEL,default=info"`
	ReadTimeout    time.Duration `env:"SOLITAIRE_READ_TIMEOUT,default=10s"`
	WriteTimeout   time.Duration `env:"SOLITAIRE_WRITE_TIMEOUT,default=10s"`

	EmptyPileAnyRank bool `env:"SOLITAIRE_EMPTY_PILE_ANY_RANK,default=false"`
	MaxGames         int  `env:"SOLITAIRE_MAX_GAMES,default=1000"`
	// Seed fixes the shuffle. Zero seeds from the clock.
	Seed int64 `env:"SOLITAIRE_SEED,default=0"`
}

// Load reads the given env files (DefaultEnvFile if none) and then the
// environment. Variables already set win over the files, and a missing file
// is skipped.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// StrictDecode refuses values that do not parse instead of leaving the
	// field at its zero value.
	cfg := &Config{}
	if err := envdecode.StrictDecode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, err
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Rules is the rule set games are played under
func (c *Config) Rules() game.Rules {
	return game.Rules{EmptyPileAnyRank: c.EmptyPileAnyRank}
}

func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// Level is the parsed LogLevel. Load has already checked it.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// NewLogger builds the process logger at the configured level
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(c.Level())
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}
