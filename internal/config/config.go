package config

import (
	"net"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8000"`
	Host string `env:"HOST" envDefault:"0.0.0.0"`
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// DatabaseConfig carries the document store connection settings. An empty URL
// is valid: the service starts without a store and degrades per endpoint.
type DatabaseConfig struct {
	URL  string `env:"DATABASE_URL"`
	Name string `env:"DATABASE_NAME" envDefault:"imagine"`
}

func Load() (*Config, error) {
	// best effort; absent .env files are the normal case in deployment
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
