package server

import (
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvConfig is the part of the web configuration read from the environment.
type EnvConfig struct {
	Host            string        `env:"SERVER_HOST" envDefault:"localhost"`
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ScenariosPath   string        `env:"GROWTH_SCENARIOS"`
}

func (c EnvConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
